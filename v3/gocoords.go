/*
 * gocoords.go, part of xyzchem.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs == 0 {
		return &Matrix{new(mat.Dense)}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//METHODS

// NVecs returns the number of vectors (rows) in F. An empty
// Matrix has 0 vectors.
func (F *Matrix) NVecs() int {
	if F.Dense == nil || F.Dense.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Vec returns a copy of the ith vector as a slice of 3 floats.
func (F *Matrix) Vec(i int) []float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return mat.Row(nil, i, F.Dense)
}

// Centroid returns the geometric center of the vectors in F, i.e. the
// mean of each column. The zero vector is returned for an empty Matrix.
func (F *Matrix) Centroid() *Matrix {
	ret := Zeros(1)
	n := F.NVecs()
	if n == 0 {
		return ret
	}
	col := make([]float64, n)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F.Dense)
		ret.Set(0, j, stat.Mean(col, nil))
	}
	return ret
}

// String returns a neatly formatted string representation of the Matrix,
// one vector per line.
func (F *Matrix) String() string {
	n := F.NVecs()
	if n == 0 {
		return "[]"
	}
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, fmt.Sprintf("[%8.3f %8.3f %8.3f]", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return strings.Join(lines, "\n")
}
