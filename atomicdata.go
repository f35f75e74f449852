/*
 * atomicdata.go, part of xyzchem.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package chem

import (
	"fmt"
	"math"
	"strings"
)

// DefaultVdwRadius is the van der Waals radius, in A, given to labels not in the table.
const DefaultVdwRadius = 1.50

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.20,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 1.39,
	"Co": 1.95,
	"Fe": 2.00,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.85,
	"I":  1.98,
}

// Color is an RGB color with components between 0 and 1.
type Color [3]float64

// Hex returns the color in #rrggbb notation.
func (C Color) Hex() string {
	var b [3]int
	for i, v := range C {
		b[i] = int(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", b[0], b[1], b[2])
}

// DefaultCPKColor (pink) is used for labels not in the table.
var DefaultCPKColor = Color{1.0, 0.5, 1.0}

//CPK colors for the common elements. C is dark gray rather than black.
var symbolCPK = map[string]Color{
	"H":  {1.0, 1.0, 1.0},
	"C":  {0.3, 0.3, 0.3},
	"N":  {0.2, 0.2, 1.0},
	"O":  {1.0, 0.2, 0.2},
	"S":  {1.0, 1.0, 0.2},
	"P":  {1.0, 0.5, 0.0},
	"F":  {0.2, 1.0, 0.2},
	"Cl": {0.2, 1.0, 0.2},
	"Br": {0.6, 0.1, 0.1},
	"I":  {0.4, 0.0, 0.7},
	"Fe": {0.9, 0.5, 0.0},
	"Ca": {0.2, 0.8, 0.2},
	"Mg": {0.0, 0.5, 0.0},
	"Zn": {0.5, 0.5, 0.6},
}

// tableSymbol puts a label in the capitalization used by the tables ("CL" -> "Cl").
func tableSymbol(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// VdwRadius returns the van der Waals radius of the atom's element, in A, or
// DefaultVdwRadius if the label is not a known element. Labels are case-insensitive.
func (A *Atom) VdwRadius() float64 {
	if r, ok := symbolVdwrad[tableSymbol(A.Symbol)]; ok {
		return r
	}
	return DefaultVdwRadius
}

// CPKColor returns the CPK color of the atom's element, or DefaultCPKColor.
func (A *Atom) CPKColor() Color {
	if c, ok := symbolCPK[tableSymbol(A.Symbol)]; ok {
		return c
	}
	return DefaultCPKColor
}
