/*
 * config.go, part of xyzchem.
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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/goccy/go-yaml"
)

// Config holds the defaults read from the configuration file. Command line
// flags take precedence over it.
type Config struct {
	Format  string `yaml:"format"`  // xyz, yaml or json, for show
	Jobs    int    `yaml:"jobs"`    // files checked in parallel
	Color   *bool  `yaml:"color"`   // nil means autodetect
	Comment string `yaml:"comment"` // comment line for normalize
}

var validFormats = map[string]bool{"xyz": true, "yaml": true, "json": true}

func defaultConfig() *Config {
	return &Config{
		Format: "xyz",
		Jobs:   runtime.NumCPU(),
	}
}

// LoadConfig reads the YAML configuration file at path. A missing file
// is not an error, the defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if !validFormats[config.Format] {
		return nil, fmt.Errorf("config file %s: unknown format %q", path, config.Format)
	}
	if config.Jobs <= 0 {
		config.Jobs = runtime.NumCPU()
	}
	return config, nil
}
