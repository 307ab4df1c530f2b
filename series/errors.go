package series

import (
	"errors"
	"fmt"
)

// Kind classifies errors from this package: unreadable files, ill-formed
// tables or documents, and mathematically singular reductions.
type Kind int

const (
	IO Kind = iota + 1
	Format
	Domain
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "io"
	case Format:
		return "format"
	case Domain:
		return "domain"
	}
	return "unknown"
}

// Error is the general structure for simulation-output reading and
// reduction errors. It identifies the offending file when there is one.
type Error struct {
	message  string
	filename string
	kind     Kind
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("series: %s error: %s", err.kind, err.message)
	}
	return fmt.Sprintf("series: %s error in file %s: %s", err.kind, err.filename, err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//err.deco is a slice, hence a pointer, so the value receiver still works.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Kind returns the error classification.
func (err Error) Kind() Kind { return err.kind }

// FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

// IsIO returns whether err is an io error produced by this package.
func IsIO(err error) bool { return isKind(err, IO) }

// IsFormat returns whether err is a format error produced by this package.
func IsFormat(err error) bool { return isKind(err, Format) }

// IsDomain returns whether err is a domain error produced by this package.
func IsDomain(err error) bool { return isKind(err, Domain) }

func isKind(err error, k Kind) bool {
	var serr Error
	if errors.As(err, &serr) {
		return serr.kind == k
	}
	return false
}
