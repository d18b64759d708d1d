package replace

// GPin is the placement-layer mirror of one netlist pin. Its eight
// cached exponential-sum scalars are scratch space valid only inside a
// single updateWireLengthForceWA pass (spec §4.4, §4.6); every pass
// must zero HasMinExpSumX etc. before writing, so no callable ever
// observes a stale flag from the previous pass.
type GPin struct {
	// Pin is the source netlist pin this GPin mirrors.
	Pin *Pin

	// CellIdx, NetIdx index into NesterovBase.gcells and
	// NesterovBase.gnets respectively.
	CellIdx, NetIdx int

	// Cx, Cy are the pin's current absolute position, recomputed from
	// the owning GCell's centre plus OffsetCx/OffsetCy whenever the
	// GCell moves.
	Cx, Cy float64

	// OffsetCx, OffsetCy are constant offsets from the owning GCell's
	// centre.
	OffsetCx, OffsetCy float64

	MinExpSumX, MaxExpSumX float64
	MinExpSumY, MaxExpSumY float64

	HasMinExpSumX, HasMaxExpSumX bool
	HasMinExpSumY, HasMaxExpSumY bool
}

// clearExpSums resets the scratch fields at the start of a wirelength
// pass. It does not touch Cx/Cy/OffsetCx/OffsetCy, which persist across
// passes.
func (p *GPin) clearExpSums() {
	p.MinExpSumX, p.MaxExpSumX = 0, 0
	p.MinExpSumY, p.MaxExpSumY = 0, 0
	p.HasMinExpSumX, p.HasMaxExpSumX = false, false
	p.HasMinExpSumY, p.HasMaxExpSumY = false, false
}

// updatePosition recomputes Cx/Cy from the given cell centre.
func (p *GPin) updatePosition(cellCx, cellCy int64) {
	p.Cx = float64(cellCx) + p.OffsetCx
	p.Cy = float64(cellCy) + p.OffsetCy
}
