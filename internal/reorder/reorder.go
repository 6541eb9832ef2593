// Package reorder implements drag-to-reorder position tracking for an
// ordered list of rows. It owns the decision of when a dragged row's target
// position shifts and what vertical offset every other row must display so
// the list appears to reflow while the drag is still in progress. Rendering
// and input capture belong to the caller.
package reorder

// Item is an element of the reorderable collection. The engine never
// inspects anything beyond the key, which must be stable and unique within
// the collection.
type Item interface {
	Key() string
}

// Rect is the vertical extent of a rendered row in screen coordinates.
type Rect struct {
	Top    int
	Bottom int
}

// Geometry reports the current vertical extent of the row rendered at a
// list index. The second return is false when no row is rendered there.
//
// Implementations must report the row's layout position plus whatever
// visual offset the row is currently displaying, derived from the row's own
// state. Measuring the screen mid-transition would lag the true position by
// a frame and corrupt boundary comparisons.
type Geometry interface {
	RowRect(index int) (Rect, bool)
}

// Move returns a copy of items with the element at from reinserted at to.
// All other elements keep their relative order.
func Move(items []Item, from, to int) []Item {
	next := make([]Item, 0, len(items))
	next = append(next, items[:from]...)
	next = append(next, items[from+1:]...)

	next = append(next, nil)
	copy(next[to+1:], next[to:])
	next[to] = items[from]
	return next
}
