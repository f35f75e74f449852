/*
 * parse.go, part of xyzchem.
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
	"math"
	"strconv"
	"strings"
	"unicode"
)

// XYZParse parses the whole content of an XYZ file and returns the molecule
// it describes. On failure it returns a nil molecule and a *ParseError, which
// tells which rule the text broke. The checks are applied in a fixed order and
// the first failing one is reported: empty file, atom count, comment line,
// atom line shape, coordinate values, and finally the number of atom lines.
//
// The comment line is accepted whatever its content and is not kept.
// XYZParse has no side effects and can be called concurrently.
func XYZParse(text string) (*Molecule, error) {
	lines := splitLines(text)
	if isBlank(lines) {
		return nil, newParseError(EmptyFile, 0, "")
	}
	natoms, err := parseAtomCount(lines[0])
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, newParseError(MissingCommentLine, 2, "")
	}
	atomlines := lines[2:]
	//The declared number can be anything, so we don't trust it for allocation.
	atoms := make([]*Atom, 0, min(natoms, len(atomlines)))
	for i := 0; i < natoms; i++ {
		if i >= len(atomlines) {
			return nil, newMismatchError(natoms, i)
		}
		at, err := parseAtomLine(atomlines[i], i+3)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, at)
	}
	if extra := nonBlank(atomlines[natoms:]); extra > 0 {
		return nil, newMismatchError(natoms, natoms+extra)
	}
	return &Molecule{Atoms: atoms}, nil
}

// splitLines splits text in lines, accepting "\n", "\r\n" and "\r" as
// terminators. A terminator at the very end doesn't start a new line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func isBlank(lines []string) bool {
	return nonBlank(lines) == 0
}

// nonBlank returns the number of lines with something other than whitespace.
func nonBlank(lines []string) int {
	n := 0
	for _, v := range lines {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

func parseAtomCount(line string) (int, error) {
	str := strings.TrimSpace(line)
	if str == "" {
		return 0, newParseError(InvalidAtomCount, 1, "'' is not a valid integer")
	}
	if strings.Contains(str, ".") {
		return 0, newParseError(InvalidAtomCount, 1, fmt.Sprintf("'%s' is not an integer", str))
	}
	n, err := strconv.ParseInt(str, 10, 0)
	if err != nil {
		return 0, newParseError(InvalidAtomCount, 1, fmt.Sprintf("'%s' is not a valid integer", str))
	}
	if n < 0 {
		return 0, newParseError(InvalidAtomCount, 1, fmt.Sprintf("'%s' is negative", str))
	}
	return int(n), nil
}

// parseAtomLine reads a "symbol x y z [anything else]" line. linenum is
// 1-based and only used for error reporting.
func parseAtomLine(line string, linenum int) (*Atom, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, newParseError(InvalidAtomLine, linenum, "empty line in atom section")
	}
	if len(fields) < 4 {
		return nil, newParseError(InvalidAtomLine, linenum, fmt.Sprintf("expected at least 4 fields, found %d", len(fields)))
	}
	if msg := checkSymbol(fields[0]); msg != "" {
		return nil, newParseError(InvalidAtomLine, linenum, msg)
	}
	var c [3]float64
	for i := range c {
		v, err := parseCoordinate(fields[i+1], linenum)
		if err != nil {
			return nil, err
		}
		c[i] = v
	}
	return &Atom{Symbol: fields[0], X: c[0], Y: c[1], Z: c[2]}, nil
}

// checkSymbol returns an empty string if s is a valid element label, and
// the reason why it isn't otherwise. A label starting with a digit means the
// line starts with a number, i.e. the label is missing.
func checkSymbol(s string) string {
	if s == "" {
		return "missing element symbol"
	}
	if r := []rune(s)[0]; unicode.IsDigit(r) || r == '-' || r == '+' || r == '.' {
		return fmt.Sprintf("element symbol '%s' appears to be a number", s)
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Sprintf("element symbol '%s' is not alphanumeric", s)
		}
	}
	return ""
}

// parseCoordinate parses a decimal floating point number, optionally in
// scientific notation. NaN and infinities are rejected in any spelling,
// as are hexadecimal floats and digit separators, which strconv accepts.
func parseCoordinate(s string, linenum int) (float64, error) {
	special := strings.ToLower(strings.TrimLeft(s, "+-"))
	if special == "nan" || special == "inf" || special == "infinity" {
		return 0, newParseError(InvalidCoordinate, linenum, fmt.Sprintf("'%s' is not a valid coordinate (NaN/Inf not allowed)", s))
	}
	if strings.IndexFunc(s, notDecimal) >= 0 {
		return 0, newParseError(InvalidCoordinate, linenum, fmt.Sprintf("'%s' is not a valid number", s))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(v, 0) {
		return 0, newParseError(InvalidCoordinate, linenum, fmt.Sprintf("'%s' is not a valid number", s))
	}
	//overflows come back as +-Inf with a range error.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newParseError(InvalidCoordinate, linenum, fmt.Sprintf("'%s' is not a finite number", s))
	}
	return v, nil
}

func notDecimal(r rune) bool {
	return !(r >= '0' && r <= '9') && r != '.' && r != '-' && r != '+' && r != 'e' && r != 'E'
}
