package tui

import (
	"github.com/hay-kot/draglist/internal/core/task"
	"github.com/hay-kot/draglist/internal/reorder"
)

// Row is the renderer-owned handle for one rendered task row. layoutTop is
// the top of the row's home slot; offset is the vertical translation the
// row is currently displaying. Keeping the two separate is what lets the
// geometry reader report a row's true position while a slide is still being
// drawn.
type Row struct {
	key       string
	layoutTop int
	height    int
	offset    int
}

// Rect returns the row's current extent: layout position plus the applied
// offset. Bottom is exclusive.
func (r *Row) Rect() reorder.Rect {
	top := r.layoutTop + r.offset
	return reorder.Rect{Top: top, Bottom: top + r.height}
}

// rowSet owns one handle per rendered task, keyed by task id and recreated
// whenever the task list changes. Keying by id rather than render position
// keeps handles aligned when tasks are inserted or removed between drags.
type rowSet struct {
	pitch  int
	height int
	order  []string
	byKey  map[string]*Row
}

func newRowSet(pitch, height int) *rowSet {
	return &rowSet{
		pitch:  pitch,
		height: height,
		byKey:  map[string]*Row{},
	}
}

// Refresh rebuilds all handles for the given task order. Any offsets the
// previous handles were displaying are dropped.
func (rs *rowSet) Refresh(tasks []task.Task) {
	rs.order = make([]string, len(tasks))
	rs.byKey = make(map[string]*Row, len(tasks))
	for i, t := range tasks {
		rs.order[i] = t.ID
		rs.byKey[t.ID] = &Row{
			key:       t.ID,
			layoutTop: i * rs.pitch,
			height:    rs.height,
		}
	}
}

// ByKey returns the handle for a task id.
func (rs *rowSet) ByKey(key string) (*Row, bool) {
	r, ok := rs.byKey[key]
	return r, ok
}

// RowRect implements reorder.Geometry.
func (rs *rowSet) RowRect(index int) (reorder.Rect, bool) {
	if index < 0 || index >= len(rs.order) {
		return reorder.Rect{}, false
	}
	r, ok := rs.byKey[rs.order[index]]
	if !ok {
		return reorder.Rect{}, false
	}
	return r.Rect(), true
}

// hitTest returns the index of the row containing the given content-space
// Y coordinate, or -1. Rects are read through the handles so an in-flight
// slide cannot misattribute a press.
func (rs *rowSet) hitTest(y int) int {
	for i := range rs.order {
		rect, ok := rs.RowRect(i)
		if ok && y >= rect.Top && y < rect.Bottom {
			return i
		}
	}
	return -1
}
