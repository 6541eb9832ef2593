package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/draglist/pkg/tuitest"
)

func TestView_List(t *testing.T) {
	m, _ := newTestModel(t, false, "x")
	m.ctrl.tasks[0].Title = "buy milk"
	m.ctrl.add("write report")
	m.ctrl.add("call mom")
	m.ctrl.toggle(1)

	// Stable ids for a stable render.
	m.ctrl.tasks[0].ID = "t1"
	m.ctrl.tasks[1].ID = "t2"
	m.ctrl.tasks[2].ID = "t3"
	m.ctrl.setTasks(m.ctrl.tasks)

	golden.RequireEqual(t, []byte(tuitest.StripANSI(m.View())))
}

func TestView_MidDrag(t *testing.T) {
	m, _ := newTestModel(t, false, "a", "b", "c")

	m.ctrl.startDrag(0, 10)
	m.ctrl.dragTo(12)

	golden.RequireEqual(t, []byte(tuitest.StripANSI(m.View())))
}

func TestView_EmptyList(t *testing.T) {
	m, _ := newTestModel(t, false)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "no tasks yet")
	assert.Contains(t, view, "0 tasks")
}

func TestView_DragSuppressesSelectionCursor(t *testing.T) {
	m, _ := newTestModel(t, false, "a", "b")

	assert.True(t, strings.Contains(tuitest.StripANSI(m.View()), "▍"))

	m.ctrl.startDrag(0, 10)
	assert.False(t, strings.Contains(tuitest.StripANSI(m.View()), "▍"))
}
