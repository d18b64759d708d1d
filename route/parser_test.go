package route

import (
	"strings"
	"testing"
)

// TestParseRouteFile is scenario S6: a 4x4, 6-layer grid with uniform
// capacity 5, MinWireWidth=MinWireSpacing=1 on every layer, a single
// edge adjustment 0 0 1 1 0 1 0 — tile (0,0)'s supplyHR and tile
// (1,0)'s supplyHL are each reduced by 5/2/tileSizeX.
func TestParseRouteFile(t *testing.T) {
	const file = `Grid : 4 4 6
VerticalCapacity 5 5 5 5 5 5
HorizontalCapacity 5 5 5 5 5 5
MinWireWidth 1 1 1 1 1 1
MinWireSpacing 1 1 1 1 1 1
GridOrigin : 0 0
TileSize : 10 10
BlockagePorosity : 0
NumNiTerminals
0
NumBlockageNodes
0
NumEdgeCapacityAdjustments
0 0 1 1 0 1 0
`
	grid, err := Parse(strings.NewReader(file), "test.route")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if grid.Tx != 4 || grid.Ty != 4 {
		t.Fatalf("want 4x4 tiles, got %dx%d", grid.Tx, grid.Ty)
	}
	if len(grid.Tiles()) != 16 {
		t.Fatalf("want 16 tiles, got %d", len(grid.Tiles()))
	}

	wantDelta := 5.0 / 2.0 / float64(grid.TileSizeX)
	baseHR, baseHL := tileBaseSupply(t, grid)

	t00 := grid.Tile(0, 0)
	t10 := grid.Tile(1, 0)
	if diff := (baseHR - t00.SupplyHR) - wantDelta; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("tile(0,0).SupplyHR reduced by %v, want %v", baseHR-t00.SupplyHR, wantDelta)
	}
	if diff := (baseHL - t10.SupplyHL) - wantDelta; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("tile(1,0).SupplyHL reduced by %v, want %v", baseHL-t10.SupplyHL, wantDelta)
	}
}

// tileBaseSupply returns the initial (pre-adjustment) HR/HL supply by
// reading an unaffected tile, since every tile starts from the same
// uniform value.
func tileBaseSupply(t *testing.T, grid *TileGrid) (hr, hl float64) {
	t.Helper()
	tile := grid.Tile(3, 3)
	return tile.SupplyHR, tile.SupplyHL
}

func TestParseIgnoresCommentsAndShortLines(t *testing.T) {
	const file = `# a comment line
x
Grid : 2 2 1
VerticalCapacity 2
HorizontalCapacity 2
MinWireWidth 1
MinWireSpacing 1
GridOrigin : 0 0
TileSize : 5 5
NumNiTerminals
NumBlockageNodes
NumEdgeCapacityAdjustments
`
	grid, err := Parse(strings.NewReader(file), "test.route")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if grid.Tx != 2 || grid.Ty != 2 || grid.Layers != 1 {
		t.Errorf("want 2x2x1 grid, got %dx%dx%d", grid.Tx, grid.Ty, grid.Layers)
	}
}

func TestParseRejectsUnrecognizedDirective(t *testing.T) {
	const file = `Grid : 2 2 1
NotARealDirective 1 2 3
`
	if _, err := Parse(strings.NewReader(file), "test.route"); err == nil {
		t.Errorf("want a ParseError for an unrecognized directive")
	} else if _, ok := err.(*ParseError); !ok {
		t.Errorf("want *ParseError, got %T", err)
	}
}
