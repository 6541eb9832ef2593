package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/draglist/internal/core/config"
	"github.com/hay-kot/draglist/internal/core/task"
	"github.com/hay-kot/draglist/pkg/tuitest"
)

func newTestModel(t *testing.T, mouse bool, titles ...string) (Model, *task.Store) {
	t.Helper()

	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.yaml"))
	require.NoError(t, store.SetOrder(testTasks(titles...)))

	cfg := config.DefaultConfig()
	cfg.Mouse = mouse

	m, err := NewModel(&cfg, store, zerolog.Nop())
	require.NoError(t, err)
	return m, store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_SelectionMoves(t *testing.T) {
	m, _ := newTestModel(t, false, "a", "b", "c")

	m = send(t, m, tuitest.KeyDown(), tuitest.KeyDown())
	assert.Equal(t, 2, m.selected)

	// Clamped at the bottom.
	m = send(t, m, tuitest.KeyDown())
	assert.Equal(t, 2, m.selected)

	m = send(t, m, tuitest.KeyUp(), tuitest.KeyUp(), tuitest.KeyUp())
	assert.Equal(t, 0, m.selected)
}

func TestModel_ShiftMoveReordersAndFollows(t *testing.T) {
	m, store := newTestModel(t, false, "a", "b", "c")

	m = send(t, m, tuitest.KeyPress('J'), tuitest.KeyPress('J'))
	assert.Equal(t, 2, m.selected)
	assert.Equal(t, []string{"b", "c", "a"}, order(t, store))

	m = send(t, m, tuitest.KeyPress('K'))
	assert.Equal(t, 1, m.selected)
	assert.Equal(t, []string{"b", "a", "c"}, order(t, store))
}

func TestModel_AddFlow(t *testing.T) {
	m, store := newTestModel(t, false, "a")

	m = send(t, m, tuitest.KeyPress('a'))
	assert.Equal(t, stateAdding, m.state)

	m = send(t, m, tuitest.KeyPress('h'), tuitest.KeyPress('i'), tuitest.KeyEnter())
	assert.Equal(t, stateNormal, m.state)

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "hi", tasks[1].Title)
	assert.Equal(t, 1, m.selected)
}

func TestModel_AddCancelledByEsc(t *testing.T) {
	m, store := newTestModel(t, false, "a")

	m = send(t, m, tuitest.KeyPress('a'), tuitest.KeyPress('x'), tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestModel_DeleteMovesSelectionUp(t *testing.T) {
	m, store := newTestModel(t, false, "a", "b")

	m = send(t, m, tuitest.KeyDown(), tuitest.KeyPress('d'))
	assert.Equal(t, 0, m.selected)
	assert.Equal(t, []string{"a"}, order(t, store))
}

func TestModel_ToggleDone(t *testing.T) {
	m, store := newTestModel(t, false, "a")

	send(t, m, tuitest.KeyPress(' '))

	tasks, err := store.List()
	require.NoError(t, err)
	assert.True(t, tasks[0].Done)
}

func TestModel_HelpTogglesOpenAndClosed(t *testing.T) {
	m, _ := newTestModel(t, false, "a")

	m = send(t, m, tuitest.KeyPress('?'))
	assert.Equal(t, stateShowingHelp, m.state)
	assert.NotEmpty(t, m.View())

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)
}

func TestModel_MouseDragReorders(t *testing.T) {
	m, store := newTestModel(t, true, "a", "b", "c", "d")

	// Rows sit at screen Y headerHeight..headerHeight+3.
	m = send(t, m,
		tuitest.MousePress(1, headerHeight),
		tuitest.MouseMotion(1, headerHeight+2),
		tuitest.MouseMotion(1, headerHeight+3),
		tuitest.MouseRelease(1, headerHeight+3),
	)

	assert.Equal(t, []string{"b", "c", "a", "d"}, order(t, store))
	assert.Equal(t, 2, m.selected)
	assert.False(t, m.ctrl.eng.Dragging())
}

func TestModel_MousePressAndReleaseKeepsOrder(t *testing.T) {
	m, store := newTestModel(t, true, "a", "b", "c")

	m = send(t, m,
		tuitest.MousePress(1, headerHeight+1),
		tuitest.MouseRelease(1, headerHeight+1),
	)

	assert.Equal(t, []string{"a", "b", "c"}, order(t, store))
	assert.Equal(t, 1, m.selected)
}

func TestModel_MouseIgnoredWhenDisabled(t *testing.T) {
	m, store := newTestModel(t, false, "a", "b")

	m = send(t, m,
		tuitest.MousePress(1, headerHeight),
		tuitest.MouseMotion(1, headerHeight+2),
		tuitest.MouseRelease(1, headerHeight+2),
	)

	assert.Equal(t, []string{"a", "b"}, order(t, store))
	assert.False(t, m.ctrl.eng.Dragging())
}

func TestModel_EscCancelsDrag(t *testing.T) {
	m, store := newTestModel(t, true, "a", "b", "c")

	m = send(t, m,
		tuitest.MousePress(1, headerHeight),
		tuitest.MouseMotion(1, headerHeight+2),
		tuitest.KeyEsc(),
	)
	assert.False(t, m.ctrl.eng.Dragging())

	// The release that follows the cancel is a no-op.
	m = send(t, m, tuitest.MouseRelease(1, headerHeight+2))
	assert.Equal(t, []string{"a", "b", "c"}, order(t, store))
}

func TestModel_QuitSetsQuitting(t *testing.T) {
	m, _ := newTestModel(t, false, "a")

	next, cmd := m.Update(tuitest.KeyPress('q'))
	m = next.(Model)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
