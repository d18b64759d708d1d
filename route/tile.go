// Package route implements the routing-congestion tile grid and the
// global-router capacity-report parser that initializes it (spec §4.7,
// §4.8). It is independent of the placer package: nothing here depends
// on GCell/GPin/GNet or the bin grid.
package route

import (
	"github.com/ctessum/sparse"
	"github.com/enzoleo/RePlAce/geometry"
)

// gRoutePitchScale is the fixed fudge factor applied when deriving a
// tile's routing pitch from its track count (spec §4.7).
const gRoutePitchScale = 1.08

// Tile is one cell of the routing-congestion grid. Its per-layer
// capacity/route/blockage/usage series live on the owning TileGrid as
// dense arrays (one per layer); Tile itself only carries the scalar
// summary fields that are not layer-indexed.
type Tile struct {
	X, Y int
	Box  geometry.Rect

	SupplyH, SupplyV                       float64
	SupplyHL, SupplyHR, SupplyVL, SupplyVR float64
	SumUsageH, SumUsageV                   float64
	InflationRatioH, InflationRatioV       float64
	IsMacroIncluded                        bool
}

// TileGrid is the coarse routing grid, independent of BinGrid: integer
// origin, tile counts, tile size, per-layer technology parameters, and
// the edge-capacity adjustments read from the route file (spec §3,
// §4.7). Once built, Tx, Ty, layer count, and the technology arrays are
// immutable.
type TileGrid struct {
	OriginLx, OriginLy   int64
	Tx, Ty               int
	TileSizeX, TileSizeY int64
	Layers               int

	VerticalCapacity, HorizontalCapacity []float64
	MinWireWidth, MinWireSpacing         []float64

	EdgeCapacityStor []EdgeCapacityInfo

	tiles []Tile

	// Capacity, Route, Blockage, UsageHL/HR/VL/VR are per-layer dense
	// scalar fields shaped (Ty, Tx), one *sparse.DenseArray per layer,
	// mirroring BinGrid's per-bin scalar fields (spec SPEC_FULL §3).
	Capacity []*sparse.DenseArray
	Route    []*sparse.DenseArray
	Blockage []*sparse.DenseArray
	UsageHL  []*sparse.DenseArray
	UsageHR  []*sparse.DenseArray
	UsageVL  []*sparse.DenseArray
	UsageVR  []*sparse.DenseArray
}

// EdgeCapacityInfo is one adjustment line from the route file's
// NumEdgeCapacityAdjustments section (spec §4.8): lower tile
// (Lx, Ly) on layer Ll, upper tile (Ux, Uy) on layer Ul (Ll == Ul is
// asserted by the grammar), adjusted capacity Cap.
type EdgeCapacityInfo struct {
	Lx, Ly int
	Ll     int
	Ux, Uy int
	Ul     int
	Cap    float64
}

// tileIndex returns the row-major index of tile (x, y).
func (g *TileGrid) tileIndex(x, y int) int { return y*g.Tx + x }

// Tile returns a pointer to the tile at grid coordinates (x, y).
func (g *TileGrid) Tile(x, y int) *Tile { return &g.tiles[g.tileIndex(x, y)] }

// Tiles returns every tile, row-major.
func (g *TileGrid) Tiles() []Tile { return g.tiles }
