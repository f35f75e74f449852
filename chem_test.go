/*
 * chem_test.go
 *
 * Copyright 2013  <rmera@Holmes>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 *
 */

package chem

import (
	"math"
	"testing"
)

func TestMolecule(Te *testing.T) {
	mol, err := NewMolecule([]*Atom{
		{Symbol: "O", X: 0, Y: 0, Z: 0.117},
		{Symbol: "H", X: 0, Y: 0.757, Z: -0.469},
		{Symbol: "H", X: 0, Y: -0.757, Z: -0.469},
	})
	if err != nil {
		Te.Fatal(err)
	}
	coords := mol.Coords()
	if coords.NVecs() != 3 || coords.At(1, 1) != 0.757 {
		Te.Errorf("unexpected coordinates\n%v", coords)
	}
	coords.Set(0, 0, 10) //a copy, must not affect the molecule
	if mol.Atom(0).X != 0 {
		Te.Error("changing Coords() changed the molecule")
	}
	c := mol.Centroid()
	expected := []float64{0, 0, (0.117 - 2*0.469) / 3}
	for j := range expected {
		if math.Abs(c[j]-expected[j]) > 1e-12 {
			Te.Errorf("centroid: expected %v, got %v", expected, c)
		}
	}
	cp := mol.Copy()
	cp.Atom(1).Symbol = "D"
	if mol.Atom(1).Symbol != "H" {
		Te.Error("Copy is not a deep copy")
	}
	if _, err := NewMolecule([]*Atom{{Symbol: "O", Y: math.NaN()}}); err == nil {
		Te.Error("expected an error for a NaN coordinate")
	}
}

func TestEmptyMolecule(Te *testing.T) {
	mol, err := NewMolecule(nil)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 0 || mol.Coords().NVecs() != 0 {
		Te.Error("expected an empty molecule")
	}
	for _, v := range mol.Centroid() {
		if v != 0 {
			Te.Errorf("centroid of an empty molecule should be zero, got %v", mol.Centroid())
		}
	}
	text, err := XYZString(mol, "")
	if err != nil {
		Te.Fatal(err)
	}
	if text != "0\n\n" {
		Te.Errorf("unexpected text for empty molecule %q", text)
	}
}

func TestAtomOutOfRange(Te *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			Te.Error("expected a panic")
		}
	}()
	mol, _ := NewMolecule(nil)
	mol.Atom(0)
}

func TestDecorate(Te *testing.T) {
	_, err := XYZParse("")
	perr := err.(*ParseError)
	if d := perr.Decorate(""); len(d) != 1 || d[0] != "XYZParse" {
		Te.Errorf("unexpected decoration %v", d)
	}
	perr.Decorate("TestDecorate")
	if perr.Trace() != "TestDecorate > XYZParse" {
		Te.Errorf("unexpected trace %q", perr.Trace())
	}
	if ErrKind(99).String() != "ErrKind(99)" {
		Te.Errorf("unexpected name for unknown kind: %s", ErrKind(99))
	}
}

func TestAtomicData(Te *testing.T) {
	mol, err := XYZParse("4\n\nCL 0 0 0\nzn 1 0 0\nX1 2 0 0\nO 3 0 0\n")
	if err != nil {
		Te.Fatal(err)
	}
	radii := []float64{1.75, 1.39, DefaultVdwRadius, 1.52}
	colors := []string{"#33ff33", "#808099", DefaultCPKColor.Hex(), "#ff3333"}
	for i, at := range mol.Atoms {
		if r := at.VdwRadius(); r != radii[i] {
			Te.Errorf("%s: expected radius %v, got %v", at.Symbol, radii[i], r)
		}
		if c := at.CPKColor().Hex(); c != colors[i] {
			Te.Errorf("%s: expected color %s, got %s", at.Symbol, colors[i], c)
		}
	}
	if h := DefaultCPKColor.Hex(); h != "#ff80ff" {
		Te.Errorf("unexpected default color %s", h)
	}
	if h := (Color{-1, 2, 0.5}).Hex(); h != "#00ff80" {
		Te.Errorf("out of range components not clamped: %s", h)
	}
}
