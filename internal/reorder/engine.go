package reorder

// session is the state of one in-progress drag. virtual is the index the
// dragged item would occupy if the drag ended now; hasVirtual is false until
// the first boundary crossing, which is equivalent to virtual == home.
//
// upGap and downGap are captured once at drag start and reused as the
// displacement applied to every row the drag pushes aside. Freezing them
// keeps the slide uniform; recomputing per frame would fight whatever
// transition the renderer is animating.
type session struct {
	draggingID string

	virtual    int
	hasVirtual bool

	upGap      int
	hasUpGap   bool
	downGap    int
	hasDownGap bool
}

// current returns the effective virtual index, defaulting to home before the
// first crossing.
func (s *session) current(home int) int {
	if s.hasVirtual {
		return s.virtual
	}
	return home
}

// Engine tracks a single drag across an ordered collection. All geometry is
// read through the configured Geometry source on demand; the engine holds no
// positions of its own beyond the frozen boundary gaps.
//
// The engine is not goroutine-safe. Every method must be called from the
// update loop that owns it, and each call runs to completion before the
// next is dispatched.
type Engine struct {
	geo       Geometry
	onReorder func([]Item)

	items []Item
	index map[string]int
	sess  *session
}

// New creates an engine reading row geometry from geo. onReorder is invoked
// exactly once per completed drag that changed the order, with a fresh copy
// of the collection; it may be nil.
func New(geo Geometry, onReorder func([]Item)) *Engine {
	return &Engine{
		geo:       geo,
		onReorder: onReorder,
	}
}

// SetItems replaces the collection and rebuilds the id index. A drag session
// that is still active is abandoned without committing: the geometry it
// captured at drag start no longer describes the new collection.
func (e *Engine) SetItems(items []Item) {
	e.items = items
	e.index = buildIndex(items)
	e.sess = nil
}

// Items returns the collection the engine currently tracks.
func (e *Engine) Items() []Item {
	return e.items
}

// Dragging reports whether a drag session is active.
func (e *Engine) Dragging() bool {
	return e.sess != nil
}

// DraggingID returns the id of the item being dragged, or "" when idle.
func (e *Engine) DraggingID() string {
	if e.sess == nil {
		return ""
	}
	return e.sess.draggingID
}

// VirtualIndex returns the index the dragged item would occupy if the drag
// ended now. ok is false when no drag is active.
func (e *Engine) VirtualIndex() (index int, ok bool) {
	if e.sess == nil {
		return 0, false
	}
	home, found := e.index[e.sess.draggingID]
	if !found {
		return 0, false
	}
	return e.sess.current(home), true
}

// StartDrag opens a drag session for it. The two boundary gaps are captured
// here, from the dragged row's edges to its immediate neighbors' matching
// edges, and stay frozen for the life of the drag. Missing rows or missing
// neighbors leave the corresponding gap absent.
func (e *Engine) StartDrag(it Item) {
	home, ok := e.index[it.Key()]
	if !ok {
		return
	}

	s := &session{draggingID: it.Key()}

	if drag, ok := e.geo.RowRect(home); ok {
		if up, ok := e.geo.RowRect(home - 1); ok && home > 0 {
			s.upGap = drag.Bottom - up.Bottom
			s.hasUpGap = true
		}
		if down, ok := e.geo.RowRect(home + 1); ok {
			s.downGap = drag.Top - down.Top
			s.hasDownGap = true
		}
	}

	e.sess = s
}

// Drag processes one move sample for the dragged item. It compares the
// dragged row's live edges against the rows flanking the current virtual
// position, so the boundary under test always sits at the leading edge of
// the deflection: the drag must fully cross the row it currently overlaps
// before the virtual index advances again.
//
// Both directions are checked every sample, so a single sample moves the
// virtual index by at most one step up and one step down. Coarse pointer
// jumps need several samples to cover several rows; that trade keeps the
// visual reflow single-step and monotonic.
func (e *Engine) Drag(it Item) {
	s := e.sess
	if s == nil || s.draggingID != it.Key() {
		return
	}
	home, ok := e.index[s.draggingID]
	if !ok {
		return
	}

	upIdx, downIdx := home-1, home+1
	if s.hasVirtual {
		switch {
		case s.virtual < home:
			upIdx, downIdx = s.virtual-1, s.virtual
		case s.virtual > home:
			upIdx, downIdx = s.virtual, s.virtual+1
		}
	}

	drag, ok := e.geo.RowRect(home)
	if !ok {
		return
	}

	if upIdx >= 0 {
		if up, ok := e.geo.RowRect(upIdx); ok && drag.Top < up.Top {
			s.virtual = s.current(home) - 1
			s.hasVirtual = true
		}
	}
	if down, ok := e.geo.RowRect(downIdx); ok && drag.Bottom > down.Bottom {
		s.virtual = s.current(home) + 1
		s.hasVirtual = true
	}
}

// FinishDrag closes the session and, when the virtual index differs from
// the dragged item's home index, emits the reordered collection through the
// onReorder callback. It reports whether a reorder was emitted. A dragged id
// that can no longer be located degrades to no reorder; the session is
// cleared regardless of outcome.
func (e *Engine) FinishDrag() bool {
	s := e.sess
	if s == nil {
		return false
	}
	e.sess = nil

	if !s.hasVirtual {
		return false
	}
	home, ok := e.index[s.draggingID]
	if !ok {
		return false
	}
	target := s.virtual
	if target == home || target < 0 || target >= len(e.items) {
		return false
	}

	next := Move(e.items, home, target)
	if e.onReorder != nil {
		e.onReorder(next)
	}
	return true
}

// CancelDrag abandons the active session without committing anything.
func (e *Engine) CancelDrag() {
	e.sess = nil
}
