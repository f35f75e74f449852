/*
 * commands.go, part of xyzchem.
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
 */

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"golang.org/x/sync/errgroup"

	chem "github.com/rmera/xyzchem"
)

// ErrInvalidFiles is returned when at least one of the given files is not valid XYZ.
var ErrInvalidFiles = errors.New("invalid XYZ input")

var (
	okFmt     = color.New(color.FgGreen, color.Bold).SprintFunc()
	failFmt   = color.New(color.FgRed, color.Bold).SprintFunc()
	detailFmt = color.New(color.FgYellow).SprintfFunc()
)

// invalid marks err as a problem with the input file rather than with the program
// or the file system.
func invalid(err error) error {
	var perr *chem.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%w: %w", ErrInvalidFiles, err)
	}
	return err
}

// CheckCmd represents the check command
type CheckCmd struct {
	Files []string `arg:"" name:"file" help:"XYZ files to validate (.gz and .zst are decompressed)"`
	Jobs  int      `help:"Number of files checked in parallel (default from config or CPU count)" short:"j"`
}

type checkResult struct {
	mol *chem.Molecule
	err error
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	jobs := cmd.Jobs
	if jobs <= 0 {
		jobs = ctx.Config.Jobs
	}
	ctx.Logf("checking %d files with %d workers", len(cmd.Files), jobs)
	results := make([]checkResult, len(cmd.Files))
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, name := range cmd.Files {
		i, name := i, name
		g.Go(func() error {
			mol, err := chem.XYZRead(name)
			results[i] = checkResult{mol, err}
			return nil
		})
	}
	g.Wait() //the workers never fail, errors are per file.

	failed := 0
	for i, name := range cmd.Files {
		r := results[i]
		if r.err != nil {
			failed++
			fmt.Fprintf(ctx.Out, "%s %s: %v\n", failFmt("FAIL"), name, r.err)
			var perr *chem.ParseError
			if ctx.Verbose && errors.As(r.err, &perr) {
				fmt.Fprintln(ctx.Out, detailFmt("     kind=%q line=%d detail=%q trace=%q", perr.Kind().String(), perr.Line(), perr.Detail(), perr.Trace()))
			}
			continue
		}
		fmt.Fprintf(ctx.Out, "%s %s (%d atoms)\n", okFmt("OK"), name, r.mol.Len())
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files failed", ErrInvalidFiles, failed, len(cmd.Files))
	}
	return nil
}

// ShowCmd represents the show command
type ShowCmd struct {
	File    string `arg:"" help:"XYZ file to print"`
	Format  string `help:"Output format (xyz, yaml, json), default from config" short:"f"`
	Comment string `help:"Comment line for xyz output"`
}

type atomDoc struct {
	Symbol string  `yaml:"symbol" json:"symbol"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Z      float64 `yaml:"z" json:"z"`
	Radius float64 `yaml:"radius" json:"radius"`
	Color  string  `yaml:"color" json:"color"`
}

type moleculeDoc struct {
	File     string    `yaml:"file" json:"file"`
	NAtoms   int       `yaml:"natoms" json:"natoms"`
	Centroid []float64 `yaml:"centroid" json:"centroid"`
	Atoms    []atomDoc `yaml:"atoms" json:"atoms"`
}

func newMoleculeDoc(name string, mol *chem.Molecule) *moleculeDoc {
	doc := &moleculeDoc{
		File:     name,
		NAtoms:   mol.Len(),
		Centroid: mol.Centroid(),
		Atoms:    make([]atomDoc, 0, mol.Len()),
	}
	for _, at := range mol.Atoms {
		doc.Atoms = append(doc.Atoms, atomDoc{
			Symbol: at.Symbol,
			X:      at.X,
			Y:      at.Y,
			Z:      at.Z,
			Radius: at.VdwRadius(),
			Color:  at.CPKColor().Hex(),
		})
	}
	return doc
}

// Run executes the show command
func (cmd *ShowCmd) Run(ctx *Context) error {
	format := cmd.Format
	if format == "" {
		format = ctx.Config.Format
	}
	if !validFormats[format] {
		return fmt.Errorf("unknown format %q", format)
	}
	mol, err := chem.XYZRead(cmd.File)
	if err != nil {
		return invalid(err)
	}
	ctx.Logf("read %d atoms from %s", mol.Len(), cmd.File)
	switch format {
	case "yaml":
		out, err := yaml.Marshal(newMoleculeDoc(cmd.File, mol))
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = ctx.Out.Write(out)
		return err
	case "json":
		out, err := json.MarshalIndent(newMoleculeDoc(cmd.File, mol), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintf(ctx.Out, "%s\n", out)
		return err
	default:
		comment := cmd.Comment
		if comment == "" {
			comment = ctx.Config.Comment
		}
		return chem.XYZFmtWrite(ctx.Out, mol, comment)
	}
}

// NormalizeCmd represents the normalize command
type NormalizeCmd struct {
	Input   string `arg:"" help:"XYZ file to read"`
	Output  string `arg:"" help:"XYZ file to write; compressed if it ends in .gz or .zst"`
	Comment string `help:"Comment line for the output file (default from config, or the input name)"`
}

// Run executes the normalize command
func (cmd *NormalizeCmd) Run(ctx *Context) error {
	mol, err := chem.XYZRead(cmd.Input)
	if err != nil {
		return invalid(err)
	}
	comment := cmd.Comment
	if comment == "" {
		comment = ctx.Config.Comment
	}
	if comment == "" {
		comment = "normalized from " + cmd.Input
	}
	if err := chem.XYZWrite(cmd.Output, mol, comment); err != nil {
		return err
	}
	ctx.Logf("wrote %d atoms to %s", mol.Len(), cmd.Output)
	return nil
}
