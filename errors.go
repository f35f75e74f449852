/*
 * errors.go, part of xyzchem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"fmt"
	"strings"
)

// ErrKind classifies the ways in which an XYZ file can be malformed.
// An ErrKind is itself an error, so errors.Is(err, chem.InvalidCoordinate)
// tells whether err is a ParseError of that kind.
type ErrKind int

const (
	EmptyFile          ErrKind = iota + 1 //no non-blank content at all
	InvalidAtomCount                      //header is not a non-negative integer
	MissingCommentLine                    //fewer than 2 lines
	InvalidAtomLine                       //blank line, missing label or too few fields
	InvalidCoordinate                     //non-numeric or non-finite coordinate
	AtomCountMismatch                     //well formed lines, wrong number of them
)

var kindNames = map[ErrKind]string{
	EmptyFile:          "empty file",
	InvalidAtomCount:   "invalid atom count",
	MissingCommentLine: "missing comment line",
	InvalidAtomLine:    "invalid atom line",
	InvalidCoordinate:  "invalid coordinate",
	AtomCountMismatch:  "atom count mismatch",
}

func (k ErrKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

func (k ErrKind) Error() string { return k.String() }

// ParseError is returned by the XYZ reading functions when the input is not
// a valid XYZ file. It fulfills chem.Error and chem.FileError.
type ParseError struct {
	kind     ErrKind
	line     int    //1-based, 0 if it doesn't apply
	detail   string //the offending text, or a description of the problem
	expected int
	actual   int
	filename string //empty if the text didn't come from a file
	deco     []string
}

func newParseError(kind ErrKind, line int, detail string) *ParseError {
	return &ParseError{kind: kind, line: line, detail: detail, deco: []string{"XYZParse"}}
}

func newMismatchError(expected, actual int) *ParseError {
	return &ParseError{kind: AtomCountMismatch, expected: expected, actual: actual, deco: []string{"XYZParse"}}
}

func (E *ParseError) Error() string {
	var msg string
	switch E.kind {
	case InvalidAtomCount:
		msg = fmt.Sprintf("%s: %s", E.kind, E.detail)
	case InvalidAtomLine, InvalidCoordinate:
		msg = fmt.Sprintf("%s at line %d: %s", E.kind, E.line, E.detail)
	case AtomCountMismatch:
		msg = fmt.Sprintf("%s: expected %d atoms, found %d", E.kind, E.expected, E.actual)
	default:
		msg = E.kind.String()
	}
	if E.filename != "" {
		return fmt.Sprintf("xyz file %s: %s", E.filename, msg)
	}
	return msg
}

// Kind returns the category of the error.
func (E *ParseError) Kind() ErrKind { return E.kind }

// Line returns the 1-based number of the offending line, or 0
// if the error is not about a particular line.
func (E *ParseError) Line() int { return E.line }

// Detail returns the offending text or a short description of the problem.
func (E *ParseError) Detail() string { return E.detail }

// Counts returns the declared and the found number of atoms. Only
// meaningful for AtomCountMismatch errors.
func (E *ParseError) Counts() (expected, actual int) { return E.expected, E.actual }

// FileName returns the file that failed to parse, or an empty string.
func (E *ParseError) FileName() string { return E.filename }

// Format returns the format of the file associated to the error (always "xyz")
func (E *ParseError) Format() string { return "xyz" }

// Decorate adds new information to the error
func (E *ParseError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Trace returns the decoration trail of the error in calling order,
// outermost caller first.
func (E *ParseError) Trace() string {
	rev := make([]string, 0, len(E.deco))
	for i := len(E.deco) - 1; i >= 0; i-- {
		rev = append(rev, E.deco[i])
	}
	return strings.Join(rev, " > ")
}

// Is reports whether target is the ErrKind of E.
func (E *ParseError) Is(target error) bool {
	k, ok := target.(ErrKind)
	return ok && k == E.kind
}

// errDecorate decorates err with the caller's name if it implements chem.Error,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
