/*
 * pqr.go, part of dipolar-fibrils.
 *
 * Copyright 2020 Mikael Lund
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package fibril

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// PQRWrite writes the point charges to out in the PQR format: PDB-like ATOM
// records where the occupancy and b-factor columns hold the charge (in
// elementary charges) and the radius (in Angstrom) instead. Atom serial
// numbers are assigned sequentially from 1 on each call, regardless of any
// numbering the records carry.
func PQRWrite(out io.Writer, charges []PointCharge) error {
	if _, err := fmt.Fprint(out, "REMARK   generated by dipolar-fibrils\n"); err != nil {
		return Error{err.Error(), "", Format, []string{"PQRWrite"}, true}
	}
	for i, c := range charges {
		chain := c.Chain
		if chain == 0 {
			chain = 'A'
		}
		_, err := fmt.Fprintf(out, "ATOM  %5d  %-3s %3s %1c%4d    %8.3f%8.3f%8.3f %6.2f %6.2f\n",
			i+1, c.Name, c.Molname, chain, c.Molid, c.Position.X, c.Position.Y, c.Position.Z, c.Charge, c.Radius)
		if err != nil {
			return Error{err.Error(), "", Format, []string{"PQRWrite"}, true}
		}
	}
	if _, err := fmt.Fprint(out, "END\n"); err != nil {
		return Error{err.Error(), "", Format, []string{"PQRWrite"}, true}
	}
	return nil
}

// PQRWriteFile writes the point charges to the file pqrname, which is
// created, or truncated if it exists.
func PQRWriteFile(pqrname string, charges []PointCharge) error {
	out, err := os.Create(pqrname)
	if err != nil {
		return Error{err.Error(), pqrname, Format, []string{"PQRWriteFile"}, true}
	}
	defer out.Close()
	if err := PQRWrite(out, charges); err != nil {
		return errDecorate(err, "PQRWriteFile")
	}
	return nil
}

// PQRRead reads ATOM records from a PQR stream and returns the point charges
// they describe. Lines other than ATOM records are skipped. The fields are
// taken by whitespace splitting rather than by column, which accepts both
// this package's output and the whitespace-separated PQR dialect.
func PQRRead(in io.Reader) ([]PointCharge, error) {
	var ret []PointCharge
	scanner := bufio.NewScanner(in)
	nline := 0
	for scanner.Scan() {
		nline++
		line := scanner.Text()
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		c, err := readPQRLine(line)
		if err != nil {
			return nil, Error{fmt.Sprintf("line %d: %s", nline, err.Error()), "", Format, []string{"PQRRead"}, true}
		}
		ret = append(ret, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), "", Format, []string{"PQRRead"}, true}
	}
	return ret, nil
}

// PQRReadFile reads the PQR file pqrname.
func PQRReadFile(pqrname string) ([]PointCharge, error) {
	in, err := os.Open(pqrname)
	if err != nil {
		return nil, Error{err.Error(), pqrname, Format, []string{"PQRReadFile"}, true}
	}
	defer in.Close()
	ret, err2 := PQRRead(in)
	if err2 != nil {
		ferr := err2.(Error)
		ferr.filename = pqrname
		ferr.Decorate("PQRReadFile")
		return nil, ferr
	}
	return ret, nil
}

// parses one whitespace-separated ATOM/HETATM record:
// tag serial name resname chain resid x y z charge radius
func readPQRLine(line string) (PointCharge, error) {
	var c PointCharge
	fields := strings.Fields(line)
	if len(fields) < 11 {
		return c, fmt.Errorf("expected 11 fields in ATOM record, got %d", len(fields))
	}
	c.Name = fields[2]
	c.Molname = fields[3]
	c.Chain = fields[4][0]
	molid, err := strconv.Atoi(fields[5])
	if err != nil {
		return c, fmt.Errorf("bad residue number %q", fields[5])
	}
	c.Molid = molid
	var xyz [3]float64
	for i := 0; i < 3; i++ {
		xyz[i], err = strconv.ParseFloat(fields[6+i], 64)
		if err != nil {
			return c, fmt.Errorf("bad coordinate %q", fields[6+i])
		}
	}
	c.Position = r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	if c.Charge, err = strconv.ParseFloat(fields[9], 64); err != nil {
		return c, fmt.Errorf("bad charge %q", fields[9])
	}
	if c.Radius, err = strconv.ParseFloat(fields[10], 64); err != nil {
		return c, fmt.Errorf("bad radius %q", fields[10])
	}
	return c, nil
}
