/*
 * files.go, part of xyzchem.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 *
*/
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies the compression applied to an XYZ file, which
// is decided from the file name.
type Compression int

const (
	NoCompression Compression = iota
	Gzip                      // .gz
	Zstd                      // .zst or .zstd
)

// CompressionFor returns the compression used for a file with the given name.
func CompressionFor(name string) Compression {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		return Gzip
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		return Zstd
	default:
		return NoCompression
	}
}

// zstd.Decoder doesn't implement io.ReadCloser, its Close has no return value.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newDecompressor(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdCloser{d}, nil
	default:
		return io.NopCloser(r), nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newCompressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return nopWriteCloser{w}, nil
	}
}

// XYZReader reads all the content from r and parses it as an XYZ file.
// See XYZParse for the rules.
func XYZReader(r io.Reader) (*Molecule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading XYZ data: %w", err)
	}
	mol, err := XYZParse(string(data))
	if err != nil {
		return nil, errDecorate(err, "XYZReader")
	}
	return mol, nil
}

// XYZRead reads the XYZ file xyzname and returns the molecule in it. Files
// ending in .gz or .zst/.zstd are decompressed on the fly. Parse errors are
// *ParseError with the file name set.
func XYZRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, fmt.Errorf("opening XYZ file: %w", err)
	}
	defer xyzfile.Close()
	dec, err := newDecompressor(bufio.NewReader(xyzfile), CompressionFor(xyzname))
	if err != nil {
		return nil, fmt.Errorf("decompressing XYZ file %s: %w", xyzname, err)
	}
	defer dec.Close()
	mol, err := XYZReader(dec)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.filename = xyzname
			perr.Decorate("XYZRead")
			return nil, perr
		}
		return nil, fmt.Errorf("XYZ file %s: %w", xyzname, err)
	}
	return mol, nil
}

// XYZWrite writes mol to a new XYZ file named xyzname, with comment as the
// comment line. If the file exists it will be overwritten. Files ending in
// .gz or .zst/.zstd are compressed accordingly.
func XYZWrite(xyzname string, mol *Molecule, comment string) (err error) {
	if err := mol.Corrupted(); err != nil {
		return fmt.Errorf("won't write %s: %w", xyzname, err)
	}
	out, err := os.Create(xyzname)
	if err != nil {
		return fmt.Errorf("creating XYZ file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	comp, err := newCompressor(out, CompressionFor(xyzname))
	if err != nil {
		return fmt.Errorf("compressing XYZ file %s: %w", xyzname, err)
	}
	if err = XYZFmtWrite(comp, mol, comment); err != nil {
		comp.Close()
		return err
	}
	return comp.Close()
}

// XYZFmtWrite writes mol in XYZ format to out. Line breaks in comment are
// replaced by spaces. Coordinates are written with the shortest representation
// that reads back to the same number, so reading the output with XYZParse
// gives back an equal molecule.
func XYZFmtWrite(out io.Writer, mol *Molecule, comment string) error {
	if err := mol.Corrupted(); err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	comment = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(comment)
	fmt.Fprintf(w, "%d\n%s\n", mol.Len(), comment)
	for _, at := range mol.Atoms {
		_, err := fmt.Fprintf(w, "%-3s %15s %15s %15s\n", at.Symbol, fmtCoord(at.X), fmtCoord(at.Y), fmtCoord(at.Z))
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

// XYZString returns mol as the text of an XYZ file.
func XYZString(mol *Molecule, comment string) (string, error) {
	var b strings.Builder
	if err := XYZFmtWrite(&b, mol, comment); err != nil {
		return "", err
	}
	return b.String(), nil
}

func fmtCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
