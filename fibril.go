/*
 * fibril.go, part of dipolar-fibrils.
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

// Package fibril builds point-charge representations of linear protein
// fibrils, where each spherical bead may carry a net charge and an explicit
// two-point dipole, and evaluates the electrostatic potential such charge
// collections produce. The structures produced here are meant as input for
// Monte Carlo simulation engines and are serialized in the PQR format.
package fibril

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Debye is the conversion factor between the Debye unit of electric dipole
// moment and the internal unit of elementary charge times Angstrom.
// It is used bidirectionally for every dipole conversion in this module.
const Debye = 0.2081943

// dipoleTol is the maximum relative deviation accepted between the requested
// bead dipole moment and the one recovered from the two auxiliary charges.
const dipoleTol = 1e-9

// PointCharge is a fixed point charge with an excluded-volume radius, plus
// the labels needed to serialize it as a PQR record. Records are never
// mutated after construction; builders return fresh slices which callers
// concatenate explicitly.
type PointCharge struct {
	Position r3.Vec
	Charge   float64 //in elementary charges
	Radius   float64 //in Angstrom
	Name     string  //atom name for the PQR record
	Molname  string  //residue name for the PQR record
	Chain    byte
	Molid    int //residue number, i.e. the bead this record belongs to
}

// PQR labels given to generated records. The central bead is distinguished
// from the two auxiliary dipole charges so the structures are easy to select
// in visualization programs.
const (
	BeadName      = "MP" //the macroparticle itself
	PosAuxName    = "DP" //auxiliary charge on the positive side of the dipole
	NegAuxName    = "DN"
	FibrilResidue = "FIB"
)

// Mode selects how a bead is represented: either as a single net point
// charge, or additionally carrying an explicit point dipole.
type Mode int

const (
	Monopole Mode = iota
	Dipole
)

func (m Mode) String() string {
	if m == Dipole {
		return "dipole"
	}
	return "monopole"
}

// MonopoleBead returns the single-record representation of a spherical bead
// with net charge charge and radius radius, centered at position.
func MonopoleBead(position r3.Vec, charge, radius float64) PointCharge {
	return PointCharge{
		Position: position,
		Charge:   charge,
		Radius:   radius,
		Name:     BeadName,
		Molname:  FibrilResidue,
		Chain:    'A',
		Molid:    1,
	}
}

// DipoleBead returns the three-record representation of a spherical bead
// centered at position: the bead itself carrying the net charge, plus two
// auxiliary unit-radius charges of +fict and -fict elementary charges,
// displaced symmetrically from the center along direction (normalized
// internally) so that they reproduce a point dipole of dipole Debye.
// It fails with a configuration error when the displacement needed would
// place the auxiliary charges outside the bead volume, i.e. when fict is too
// small for the requested dipole/radius combination. No record is emitted in
// that case.
func DipoleBead(position, direction r3.Vec, charge, radius, dipole, fict float64) ([]PointCharge, error) {
	if fict <= 0 {
		return nil, Error{fmt.Sprintf("fictitious charge must be positive, got %g", fict), "", Configuration, []string{"DipoleBead"}, true}
	}
	if r3.Norm(direction) == 0 {
		return nil, Error{"dipole direction is the zero vector", "", Configuration, []string{"DipoleBead"}, true}
	}
	// mu [D] -> mu [e*A], then |d| from mu = 2*q_fict*|d|
	displen := Debye * dipole / (2 * fict)
	if displen >= radius {
		return nil, Error{fmt.Sprintf("fictitious charge %g too small for dipole %g D and radius %g: displacement %g would leave the bead", fict, dipole, radius, displen), "", Configuration, []string{"DipoleBead"}, true}
	}
	disp := r3.Scale(displen, r3.Unit(direction))
	bead := MonopoleBead(position, charge, radius)
	ret := []PointCharge{
		bead,
		{Position: r3.Add(position, disp), Charge: fict, Radius: 1.0, Name: PosAuxName, Molname: FibrilResidue, Chain: 'A', Molid: 1},
		{Position: r3.Sub(position, disp), Charge: -fict, Radius: 1.0, Name: NegAuxName, Molname: FibrilResidue, Chain: 'A', Molid: 1},
	}
	//The recovered moment depends only on arithmetic already done, so a
	//failure here means the parameters were extreme enough to lose precision.
	got := r3.Norm(NetDipole(ret, position))
	want := dipole * Debye
	if want != 0 && math.Abs(got-want)/want > dipoleTol {
		return nil, Error{fmt.Sprintf("recovered dipole %g e*A differs from requested %g e*A", got, want), "", Validation, []string{"DipoleBead"}, true}
	}
	return ret, nil
}

// Chain lays n beads collinearly, starting at start and advancing by twice
// the bead radius along direction for each successive bead, so consecutive
// beads are tangent. In Dipole mode every bead carries a dipole of dipole
// Debye pointing along the chain axis, approximated with auxiliary charges of
// magnitude fict; in Monopole mode dipole and fict are ignored. Beads are
// numbered sequentially from 1 on each call. n=0 yields an empty, valid
// chain.
func Chain(n int, start, direction r3.Vec, mode Mode, charge, radius, dipole, fict float64) ([]PointCharge, error) {
	if n < 0 {
		return nil, Error{fmt.Sprintf("negative bead count %d", n), "", Configuration, []string{"Chain"}, true}
	}
	if n == 0 {
		return []PointCharge{}, nil
	}
	if r3.Norm(direction) == 0 {
		return nil, Error{"chain direction is the zero vector", "", Configuration, []string{"Chain"}, true}
	}
	axis := r3.Unit(direction)
	ret := make([]PointCharge, 0, 3*n)
	for i := 0; i < n; i++ {
		center := r3.Add(start, r3.Scale(2*radius*float64(i), axis))
		switch mode {
		case Monopole:
			b := MonopoleBead(center, charge, radius)
			b.Molid = i + 1
			ret = append(ret, b)
		case Dipole:
			//every bead's dipole points along the chain axis
			recs, err := DipoleBead(center, axis, charge, radius, dipole, fict)
			if err != nil {
				return nil, errDecorate(err, "Chain")
			}
			for j := range recs {
				recs[j].Molid = i + 1
			}
			ret = append(ret, recs...)
		default:
			return nil, Error{fmt.Sprintf("unknown bead mode %d", mode), "", Configuration, []string{"Chain"}, true}
		}
	}
	return ret, nil
}

// NetCharge returns the total charge of the collection.
func NetCharge(charges []PointCharge) float64 {
	var q float64
	for _, c := range charges {
		q += c.Charge
	}
	return q
}

// NetDipole returns the dipole moment of the collection about center, in
// elementary charges times Angstrom. Divide by the Debye constant to obtain
// the moment in Debye.
func NetDipole(charges []PointCharge, center r3.Vec) r3.Vec {
	var mu r3.Vec
	for _, c := range charges {
		mu = r3.Add(mu, r3.Scale(c.Charge, r3.Sub(c.Position, center)))
	}
	return mu
}
