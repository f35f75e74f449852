/*
 * files_test.go
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
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestXYZIO tests that XYZ files are opened and read correctly, and that what
// is written can be read back.
func TestXYZIO(Te *testing.T) {
	mol, err := XYZRead("test/sample.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 12 {
		Te.Fatalf("expected 12 atoms, got %d", mol.Len())
	}
	if s := mol.Symbols(); s[0] != "C" || s[11] != "H" {
		Te.Errorf("unexpected symbols %v", s)
	}
	for j, v := range mol.Centroid() {
		if math.Abs(v) > 1e-8 {
			Te.Errorf("benzene should be centered, component %d is %f", j, v)
		}
	}
	out := filepath.Join(Te.TempDir(), "sampleFirst.xyz")
	if err := XYZWrite(out, mol, "benzene again"); err != nil {
		Te.Fatal(err)
	}
	mol2, err := XYZRead(out)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(mol, mol2) {
		Te.Error("the written molecule differs from the read one")
	}
	data, err := os.ReadFile(out)
	if err != nil {
		Te.Fatal(err)
	}
	if lines := strings.Split(string(data), "\n"); lines[0] != "12" || lines[1] != "benzene again" {
		Te.Errorf("unexpected header in written file: %q", lines[:2])
	}
}

func TestXYZReadVariants(Te *testing.T) {
	water, err := XYZRead("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	gz, err := XYZRead("test/water.xyz.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(water, gz) {
		Te.Error("the gzipped file doesn't match the plain one")
	}
	crlf, err := XYZRead("test/water_crlf.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if crlf.Len() != 3 || crlf.Atom(2).Y != -0.757 {
		Te.Errorf("unexpected molecule from CRLF file: %v", crlf.Coords())
	}
}

func TestXYZReadErrors(Te *testing.T) {
	_, err := XYZRead("test/nan.xyz")
	var perr *ParseError
	if !errors.As(err, &perr) {
		Te.Fatalf("expected a *ParseError, got %v", err)
	}
	if perr.Kind() != InvalidCoordinate || perr.Line() != 4 {
		Te.Errorf("expected InvalidCoordinate at line 4, got %s at %d", perr.Kind(), perr.Line())
	}
	if perr.FileName() != "test/nan.xyz" || perr.Format() != "xyz" {
		Te.Errorf("unexpected file info %q %q", perr.FileName(), perr.Format())
	}
	if !strings.HasPrefix(err.Error(), "xyz file test/nan.xyz: invalid coordinate at line 4") {
		Te.Errorf("unexpected message %q", err.Error())
	}
	if tr := perr.Trace(); tr != "XYZRead > XYZReader > XYZParse" {
		Te.Errorf("unexpected trace %q", tr)
	}

	_, err = XYZRead("test/doesnotexist.xyz")
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("expected a not-exist error, got %v", err)
	}
	if errors.As(err, &perr) {
		Te.Error("I/O errors should not be ParseErrors")
	}

	//not gzip data behind a .gz name
	bad := filepath.Join(Te.TempDir(), "fake.xyz.gz")
	if err := os.WriteFile(bad, []byte("1\ncomment\nO 0 0 0\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if _, err := XYZRead(bad); err == nil {
		Te.Error("expected an error reading non-gzip data as gzip")
	}
}

func TestCompressedRoundTrip(Te *testing.T) {
	mol, err := XYZRead("test/sample.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"out.xyz", "out.xyz.gz", "out.xyz.zst", "OUT.XYZ.ZSTD"} {
		path := filepath.Join(dir, name)
		if err := XYZWrite(path, mol, "multi\nline comment"); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		mol2, err := XYZRead(path)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(mol, mol2) {
			Te.Errorf("%s: round trip changed the molecule", name)
		}
	}
}

func TestCompressionFor(Te *testing.T) {
	tests := map[string]Compression{
		"a.xyz":      NoCompression,
		"a.xyz.gz":   Gzip,
		"a.XYZ.GZ":   Gzip,
		"a.xyz.zst":  Zstd,
		"a.xyz.zstd": Zstd,
		"gz":         NoCompression,
	}
	for name, expected := range tests {
		if got := CompressionFor(name); got != expected {
			Te.Errorf("%s: expected %d, got %d", name, expected, got)
		}
	}
}

func TestWriteCorrupted(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "bad.xyz")
	bad := []*Molecule{
		{Atoms: []*Atom{{Symbol: "O", X: math.NaN()}}},
		{Atoms: []*Atom{{Symbol: "O", Z: math.Inf(-1)}}},
		{Atoms: []*Atom{{Symbol: "", X: 1}}},
		{Atoms: []*Atom{{Symbol: "C 1", X: 1}}},
		{Atoms: []*Atom{nil}},
	}
	for i, mol := range bad {
		if err := XYZWrite(path, mol, ""); err == nil {
			Te.Errorf("molecule %d: expected an error", i)
		}
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		Te.Error("a file was created for a corrupted molecule")
	}
}

func TestXYZReader(Te *testing.T) {
	mol, err := XYZReader(strings.NewReader("1\ncomment\nHe 0 0 0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).Symbol != "He" {
		Te.Errorf("unexpected atom %v", mol.Atom(0))
	}
	_, err = XYZReader(strings.NewReader(""))
	if !errors.Is(err, EmptyFile) {
		Te.Errorf("expected EmptyFile, got %v", err)
	}
}
