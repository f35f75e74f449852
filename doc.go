/*
 * doc.go, part of xyzchem.
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

/*
Package chem reads, validates and writes molecules in the XYZ format.

An XYZ file has the number of atoms in its first line, a free comment in
the second one, and then one line per atom with the element label and the
x, y and z coordinates:

	2
	Water molecule
	O 0.0 0.0 0.0
	H 0.96 0.0 0.0

Fields can be separated by any amount of spaces or tabs, coordinates can be
written in scientific notation, and anything after the z coordinate is
ignored. NaN and infinite coordinates are rejected.

	**Capabilities**

	Parses XYZ text (XYZParse), readers (XYZReader) and files (XYZRead).
	gzip and zstd compressed files are handled transparently, based on the
	file extension.

	Writes XYZ files (XYZWrite, XYZFmtWrite) in a way that reads back to an
	equal molecule.

	Errors are classified: every parsing failure is a *ParseError of one
	ErrKind (EmptyFile, InvalidAtomCount, MissingCommentLine, InvalidAtomLine,
	InvalidCoordinate or AtomCountMismatch), so errors.Is(err, chem.EmptyFile)
	and friends work.

	Coordinates can be obtained as a v3.Matrix (a gonum mat.Dense with one
	atom per row) for further geometric work.

	Atoms report a van der Waals radius (VdwRadius) and a CPK color
	(CPKColor) for display. Unknown labels get default values.

Element labels are not checked against the periodic table, and multi-frame
XYZ files are not supported.
*/
package chem
