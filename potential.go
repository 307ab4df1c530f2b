/*
 * potential.go, part of dipolar-fibrils.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// BjerrumVacuum is the default Bjerrum length, in Angstrom, corresponding to
// a vacuum dielectric at room temperature. Pass a different value to
// Potential for other dielectric environments (e.g. ~7.1 for water).
const BjerrumVacuum = 560.0

// Potential computes the electrostatic potential, in units of kT/e, at the
// target point due to the given point charges, by direct summation. The
// optional last argument overrides the Bjerrum length; BjerrumVacuum is used
// if none is given. An empty charge collection yields zero.
//
// The sum is O(N) per call with no spatial acceleration or caching, which is
// adequate for the structure sizes produced by this module (a few thousand
// charges at most).
//
// A target coinciding exactly with a source position is a genuine
// singularity: the function returns a domain error rather than an infinity.
func Potential(charges []PointCharge, target r3.Vec, bjerrum ...float64) (float64, error) {
	lB := BjerrumVacuum
	if len(bjerrum) > 0 {
		lB = bjerrum[0]
	}
	var pot float64
	for i, c := range charges {
		r := r3.Norm(r3.Sub(target, c.Position))
		if r == 0 {
			return 0, Error{fmt.Sprintf("target (%.3f %.3f %.3f) coincides with source charge %d", target.X, target.Y, target.Z, i), "", Domain, []string{"Potential"}, true}
		}
		pot += lB * c.Charge / r
	}
	return pot, nil
}
