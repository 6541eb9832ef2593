package reorder

// OffsetAt returns the vertical translation the row at index i should
// currently display. Exactly one contiguous band of rows between the dragged
// item's home index and its virtual index is displaced, all by the same
// frozen boundary gap; the dragged row itself is always zero because its
// position is driven directly by the pointer.
func (e *Engine) OffsetAt(i int) int {
	s := e.sess
	if s == nil || !s.hasVirtual {
		return 0
	}
	home, ok := e.index[s.draggingID]
	if !ok {
		return 0
	}

	target := s.virtual
	switch {
	case home < target:
		if s.hasDownGap && i > home && i <= target {
			return s.downGap
		}
	case home > target:
		if s.hasUpGap && i >= target && i < home {
			return s.upGap
		}
	}
	return 0
}

// Offsets returns the per-row offsets for the whole collection.
func (e *Engine) Offsets() []int {
	offsets := make([]int, len(e.items))
	for i := range offsets {
		offsets[i] = e.OffsetAt(i)
	}
	return offsets
}
