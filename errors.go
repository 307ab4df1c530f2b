/*
 * errors.go, part of dipolar-fibrils.
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
	"errors"
	"fmt"
)

// Kind classifies the errors produced by this package. Analysis code
// downstream halts on any of them, but the kind tells the user whether to fix
// the input parameters, the target point, or the file given.
type Kind int

const (
	//Configuration means a physically inconsistent parameter combination.
	Configuration Kind = iota + 1
	//Domain means a request for a quantity at a singular point.
	Domain
	//Format means an ill-formed structure file or record.
	Format
	//Validation means a postcondition check on a produced structure failed.
	Validation
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case Domain:
		return "domain"
	case Format:
		return "format"
	case Validation:
		return "validation"
	}
	return "unknown"
}

// Error is the general structure for errors in the fibril package.
type Error struct {
	message  string
	filename string //the structure file involved, or an empty string if none.
	kind     Kind
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("fibril: %s error: %s", err.kind, err.message)
	}
	return fmt.Sprintf("fibril: %s error in file %s: %s", err.kind, err.filename, err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver and tries to alter
	//the receiver, it works, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Kind returns the error classification.
func (err Error) Kind() Kind { return err.kind }

// FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// errDecorate asserts that err is an Error and decorates it with the caller's
// name before returning it. It panics when used on any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// IsConfiguration returns whether err is a configuration error produced by
// this package.
func IsConfiguration(err error) bool { return isKind(err, Configuration) }

// IsDomain returns whether err is a domain error produced by this package.
func IsDomain(err error) bool { return isKind(err, Domain) }

// IsFormat returns whether err is a format error produced by this package.
func IsFormat(err error) bool { return isKind(err, Format) }

// IsValidation returns whether err is a validation error produced by this
// package.
func IsValidation(err error) bool { return isKind(err, Validation) }

func isKind(err error, k Kind) bool {
	var ferr Error
	if errors.As(err, &ferr) {
		return ferr.kind == k
	}
	return false
}
