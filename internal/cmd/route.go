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

package cmd

import (
	"fmt"
	"os"

	"github.com/enzoleo/RePlAce/internal/config"
	"github.com/enzoleo/RePlAce/route"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Routing-congestion tile grid tools",
}

var routeParseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a global-router capacity report and print a tile-grid summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return parseRouteFile(args[0])
	},
	DisableAutoGenTag: true,
}

func init() {
	routeCmd.AddCommand(routeParseCmd)
}

func parseRouteFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("route parse: %w", err)
	}
	defer f.Close()

	grid, err := route.Parse(f, path)
	if err != nil {
		config.Logger.WithFields(map[string]interface{}{
			"component": "route",
			"reason":    err.Error(),
		}).Error("failed to parse route file")
		return err
	}

	var totalH, totalV float64
	for _, t := range grid.Tiles() {
		totalH += t.SupplyH
		totalV += t.SupplyV
	}
	fmt.Printf("tiles: %dx%d  layers: %d\n", grid.Tx, grid.Ty, grid.Layers)
	fmt.Printf("total horizontal supply: %.4f\n", totalH)
	fmt.Printf("total vertical supply:   %.4f\n", totalV)
	return nil
}
