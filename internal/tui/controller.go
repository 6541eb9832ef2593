package tui

import (
	"github.com/rs/zerolog"

	"github.com/hay-kot/draglist/internal/core/config"
	"github.com/hay-kot/draglist/internal/core/task"
	"github.com/hay-kot/draglist/internal/reorder"
)

// controller owns the authoritative task order and the drag lifecycle. Row
// components stay stateless: they render what the controller hands them and
// report pointer intents back through the three entry points below.
type controller struct {
	store *task.Store
	eng   *reorder.Engine
	rows  *rowSet
	tasks []task.Task
	log   zerolog.Logger

	grabY   int   // pointer Y captured at drag start
	saveErr error // last persistence failure, shown in the status bar
}

func newController(store *task.Store, cfg *config.Config, log zerolog.Logger) (*controller, error) {
	tasks, err := store.List()
	if err != nil {
		return nil, err
	}

	c := &controller{
		store: store,
		rows:  newRowSet(cfg.RowPitch(), cfg.RowHeight),
		log:   log,
	}
	c.eng = reorder.New(c.rows, c.commit)
	c.setTasks(tasks)
	return c, nil
}

// setTasks replaces the task order, recreates the row handles, and rebuilds
// the engine's index map.
func (c *controller) setTasks(tasks []task.Task) {
	c.tasks = tasks
	c.rows.Refresh(tasks)
	c.eng.SetItems(asItems(tasks))
}

// commit receives the reordered collection from the engine, exactly once
// per completed drag that changed the order. Persistence failures keep the
// new order in memory and surface in the UI; a half-applied order is worse
// than a write that can be retried on the next change.
func (c *controller) commit(items []reorder.Item) {
	tasks := make([]task.Task, len(items))
	for i, it := range items {
		tasks[i] = it.(task.Task)
	}

	c.saveErr = c.store.SetOrder(tasks)
	if c.saveErr != nil {
		c.log.Error().Err(c.saveErr).Msg("persist reorder")
	}
	c.setTasks(tasks)
	c.log.Debug().Strs("order", c.rows.order).Msg("order committed")
}

// startDrag opens a drag session for the row at index, grabbing it at
// pointer Y.
func (c *controller) startDrag(index, pointerY int) {
	if index < 0 || index >= len(c.tasks) {
		return
	}
	c.grabY = pointerY
	c.eng.StartDrag(c.tasks[index])
	c.log.Debug().Str("task", c.tasks[index].ID).Int("index", index).Msg("drag started")
}

// dragTo processes one pointer motion sample. The dragged row's offset
// follows the pointer directly; every other row gets whatever band offset
// the engine assigns it.
func (c *controller) dragTo(pointerY int) {
	key := c.eng.DraggingID()
	if key == "" {
		return
	}
	row, ok := c.rows.ByKey(key)
	if !ok {
		return
	}
	row.offset = pointerY - c.grabY

	home, ok := c.indexOf(key)
	if !ok {
		return
	}
	c.eng.Drag(c.tasks[home])
	c.applyOffsets(key)
}

// finishDrag ends the session. When the order changed the engine emits it
// through commit, which also rebuilds the row handles; otherwise the
// handles are refreshed here to drop any leftover offsets.
func (c *controller) finishDrag() {
	if !c.eng.Dragging() {
		return
	}
	if !c.eng.FinishDrag() {
		c.rows.Refresh(c.tasks)
	}
}

// cancelDrag abandons the session and snaps every row back to its slot.
func (c *controller) cancelDrag() {
	if !c.eng.Dragging() {
		return
	}
	c.eng.CancelDrag()
	c.rows.Refresh(c.tasks)
}

// applyOffsets pushes the engine's per-row offsets onto the handles of
// every row except the dragged one.
func (c *controller) applyOffsets(draggedKey string) {
	for i, t := range c.tasks {
		if t.ID == draggedKey {
			continue
		}
		if row, ok := c.rows.ByKey(t.ID); ok {
			row.offset = c.eng.OffsetAt(i)
		}
	}
}

// moveBy reorders the task at index by delta steps without a pointer,
// sharing the commit path with drags. Returns the task's new index.
func (c *controller) moveBy(index, delta int) int {
	to := index + delta
	if index < 0 || index >= len(c.tasks) || to < 0 || to >= len(c.tasks) || delta == 0 {
		return index
	}
	c.commit(reorder.Move(asItems(c.tasks), index, to))
	return to
}

func (c *controller) add(title string) {
	t := task.New(title)
	c.saveErr = c.store.Add(t)
	if c.saveErr != nil {
		c.log.Error().Err(c.saveErr).Msg("persist add")
	}
	c.setTasks(append(c.tasks, t))
}

func (c *controller) remove(index int) {
	if index < 0 || index >= len(c.tasks) {
		return
	}
	c.saveErr = c.store.Delete(c.tasks[index].ID)
	if c.saveErr != nil {
		c.log.Error().Err(c.saveErr).Msg("persist delete")
	}
	c.setTasks(append(c.tasks[:index:index], c.tasks[index+1:]...))
}

func (c *controller) toggle(index int) {
	if index < 0 || index >= len(c.tasks) {
		return
	}
	c.saveErr = c.store.Toggle(c.tasks[index].ID)
	if c.saveErr != nil {
		c.log.Error().Err(c.saveErr).Msg("persist toggle")
	}

	next := make([]task.Task, len(c.tasks))
	copy(next, c.tasks)
	next[index].Done = !next[index].Done
	c.setTasks(next)
}

func (c *controller) indexOf(key string) (int, bool) {
	for i, t := range c.tasks {
		if t.ID == key {
			return i, true
		}
	}
	return 0, false
}

func asItems(tasks []task.Task) []reorder.Item {
	items := make([]reorder.Item, len(tasks))
	for i, t := range tasks {
		items[i] = t
	}
	return items
}
