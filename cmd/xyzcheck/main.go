/*
 * main.go, part of xyzchem.
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

// Command xyzcheck validates, prints and rewrites XYZ files.
//
//	xyzcheck check water.xyz benzene.xyz.gz
//	xyzcheck show --format yaml water.xyz
//	xyzcheck normalize messy.xyz clean.xyz.zst
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// Context is passed to the Run method of every command.
type Context struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool
	Config  *Config
	Log     *log.Logger
}

// Logf logs only in verbose mode.
func (c *Context) Logf(format string, v ...any) {
	if c.Verbose {
		c.Log.Printf(format, v...)
	}
}

// CLI is the command-line interface
type CLI struct {
	Config    string       `help:"Configuration file path" default:"xyzcheck.yaml" type:"path"`
	Verbose   bool         `help:"Enable verbose output" short:"v"`
	NoColor   bool         `help:"Disable colored output"`
	Check     CheckCmd     `cmd:"" help:"Validate XYZ files"`
	Show      ShowCmd      `cmd:"" help:"Print the molecule in an XYZ file"`
	Normalize NormalizeCmd `cmd:"" help:"Rewrite an XYZ file in canonical form"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) (status int) {
	var cli CLI
	exited := false
	parser, err := kong.New(&cli,
		kong.Name("xyzcheck"),
		kong.Description("Validate and convert XYZ molecular geometry files."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			exited = true
			status = code
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if exited {
		return status
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	config, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	switch {
	case cli.NoColor:
		color.NoColor = true
	case config.Color != nil:
		color.NoColor = !*config.Color
	}
	appCtx := &Context{
		Out:     stdout,
		Err:     stderr,
		Verbose: cli.Verbose,
		Config:  config,
		Log:     log.New(stderr, "xyzcheck: ", 0),
	}
	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, ErrInvalidFiles) {
			return 1
		}
		return 2
	}
	return 0
}
