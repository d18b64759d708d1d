/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package config reads the TOML configuration file that drives a
// nestplace run and sets up the package-level logger every other
// package logs through (SPEC_FULL §4.10, §4.12).
package config

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Config holds a nestplace run's options. Fields mirror the CLI
// options table in spec.md §6; RouteFile and LogLevel are the
// ambient-layer additions from SPEC_FULL §4.10.
type Config struct {
	TargetDensity         float64
	MinAvgCut             float64
	MaxAvgCut             float64
	BinCntX               int
	BinCntY               int
	MinWireLengthForceBar float64

	// RouteFile is the path to a global-router capacity report in the
	// §4.8 grammar. Can include environment variables.
	RouteFile string

	// LogLevel is one of debug, info, warn, error. Default "info".
	LogLevel string
}

// Logger is the package-level logger every run/parse diagnostic goes
// through (SPEC_FULL §4.12), configured from Config.LogLevel.
var Logger = logrus.StandardLogger()

// ReadConfigFile reads and parses filename as TOML, defaulting any
// field left zero after decode and expanding environment variables in
// path fields, matching the dependency's own ReadConfigFile convention.
func ReadConfigFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("config: the configuration file %q does not appear to exist: %w", filename, err)
	}
	defer file.Close()

	bytes, err := ioutil.ReadAll(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("config: problem reading configuration file: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.Decode(string(bytes), cfg); err != nil {
		return nil, fmt.Errorf("config: error parsing configuration file: %w", err)
	}

	applyDefaults(cfg)
	cfg.RouteFile = os.ExpandEnv(cfg.RouteFile)

	if err := configureLogger(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.TargetDensity == 0 {
		cfg.TargetDensity = 1.0
	}
	if cfg.MinAvgCut == 0 {
		cfg.MinAvgCut = 0.1
	}
	if cfg.MaxAvgCut == 0 {
		cfg.MaxAvgCut = 0.9
	}
	if cfg.MinWireLengthForceBar == 0 {
		cfg.MinWireLengthForceBar = -300
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func configureLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid LogLevel %q: %w", level, err)
	}
	Logger.SetLevel(lvl)
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}
