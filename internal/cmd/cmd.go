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

// Package cmd builds the nestplace command tree (SPEC_FULL §4.11).
package cmd

import (
	"fmt"

	replace "github.com/enzoleo/RePlAce"
	"github.com/enzoleo/RePlAce/internal/config"
	"github.com/spf13/cobra"
)

var configFile string

// Root is the main command.
var Root = &cobra.Command{
	Use:   "nestplace",
	Short: "A Nesterov-base analytic placement core.",
	Long: `nestplace drives the Nesterov base layer of an ePlace/RePlAce-family
analytic placer: bin-grid density, weighted-average wirelength, and the
routing-congestion tile grid. Use the subcommands below.`,
	DisableAutoGenTag: true,
}

func init() {
	Root.PersistentFlags().StringVar(&configFile, "config", "./nestplace.toml", "configuration file location")
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(routeCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the module version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nestplace v%s\n", replace.Version)
	},
	DisableAutoGenTag: true,
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.ReadConfigFile(configFile)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
