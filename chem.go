/*
 * chem.go, part of xyzchem.
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

	v3 "github.com/rmera/xyzchem/v3"
)

/**Note: A few functions here panic instead of returning errors. If something goes wrong there,
 * the program is most likely wrong and should crash. Those panics are related to using the
 * function on a nil object or trying to access out-of-bounds fields**/

// Atom is one line of an XYZ file: an element label and its cartesian coordinates.
type Atom struct {
	Symbol string
	X      float64
	Y      float64
	Z      float64
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

// Coords returns the coordinates of the atom as a slice of 3 floats.
func (A *Atom) Coords() []float64 {
	return []float64{A.X, A.Y, A.Z}
}

/**Type Molecule**/

// Molecule is an ordered set of atoms, in the same order they appear in the file
// they were read from.
type Molecule struct {
	Atoms []*Atom
}

// NewMolecule returns a Molecule holding the given atoms. The slice is not copied.
// It returns an error if the resulting molecule is corrupted.
func NewMolecule(ats []*Atom) (*Molecule, error) {
	mol := &Molecule{Atoms: ats}
	if mol.Atoms == nil {
		mol.Atoms = []*Atom{}
	}
	if err := mol.Corrupted(); err != nil {
		return nil, err
	}
	return mol, nil
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Atom returns the Atom corresponding to the index i
// of the molecule. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

// Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	mol := &Molecule{Atoms: make([]*Atom, 0, M.Len())}
	for _, v := range M.Atoms {
		mol.Atoms = append(mol.Atoms, v.Copy())
	}
	return mol
}

// Coords returns the coordinates of the molecule as a v3.Matrix, one atom per row.
// The matrix is a copy, changes to it don't affect the molecule.
func (M *Molecule) Coords() *v3.Matrix {
	data := make([]float64, 0, 3*M.Len())
	for _, v := range M.Atoms {
		data = append(data, v.X, v.Y, v.Z)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		panic(err.Error()) //data always has 3*N elements
	}
	return coords
}

// Centroid returns the geometric center of the molecule. The zero
// vector is returned for a molecule without atoms.
func (M *Molecule) Centroid() []float64 {
	return M.Coords().Centroid().Vec(0)
}

// Symbols returns the element labels of the molecule, in order.
func (M *Molecule) Symbols() []string {
	ret := make([]string, 0, M.Len())
	for _, v := range M.Atoms {
		ret = append(ret, v.Symbol)
	}
	return ret
}

// Corrupted checks whether the molecule could be written as a valid XYZ file,
// i.e. that there are no nil atoms, that every label is valid, and that
// every coordinate is a finite number.
func (M *Molecule) Corrupted() error {
	if M == nil {
		return fmt.Errorf("nil molecule")
	}
	for i, v := range M.Atoms {
		if v == nil {
			return fmt.Errorf("atom %d is nil", i)
		}
		if msg := checkSymbol(v.Symbol); msg != "" {
			return fmt.Errorf("atom %d: %s", i, msg)
		}
		for j, c := range v.Coords() {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("atom %d (%s): coordinate %d is not finite: %v", i, v.Symbol, j, c)
			}
		}
	}
	return nil
}
