package replace

// Coord is an absolute integer position, used by the NesterovBase
// façade's per-iteration location-update calls (spec §4.6) where a full
// Rect would carry size information the caller isn't changing.
type Coord struct {
	X, Y int64
}
