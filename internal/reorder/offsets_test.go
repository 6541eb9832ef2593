package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsets_AllZeroWhenIdle(t *testing.T) {
	eng, _, _ := newHarness(t, 4, "A", "B", "C", "D")

	assert.Equal(t, []int{0, 0, 0, 0}, eng.Offsets())
}

func TestOffsets_AllZeroBeforeFirstCrossing(t *testing.T) {
	eng, rows, _ := newHarness(t, 4, "A", "B", "C", "D")

	rows.dragIdx = 1
	eng.StartDrag(testItem("B"))
	rows.delta = 1
	eng.Drag(testItem("B"))

	assert.Equal(t, []int{0, 0, 0, 0}, eng.Offsets())
}

func TestOffsets_BandBelowHomeWhenDraggedDown(t *testing.T) {
	eng, rows, _ := newHarness(t, 6, "A", "B", "C", "D", "E", "F")

	rows.dragIdx = 1
	eng.StartDrag(testItem("B"))

	// Three crossings: home 1 -> virtual 4.
	for _, d := range []int{3, 5, 7} {
		rows.delta = d
		eng.Drag(testItem("B"))
	}
	v, ok := eng.VirtualIndex()
	require.True(t, ok)
	require.Equal(t, 4, v)

	// Rows (home, virtual] slide up by the frozen down gap; the dragged row
	// and everything outside the band stay put.
	gap := -rows.pitch
	assert.Equal(t, []int{0, 0, gap, gap, gap, 0}, eng.Offsets())
}

func TestOffsets_BandAboveHomeWhenDraggedUp(t *testing.T) {
	eng, rows, _ := newHarness(t, 6, "A", "B", "C", "D", "E", "F")

	rows.dragIdx = 4
	eng.StartDrag(testItem("E"))

	for _, d := range []int{-3, -5, -7} {
		rows.delta = d
		eng.Drag(testItem("E"))
	}
	v, ok := eng.VirtualIndex()
	require.True(t, ok)
	require.Equal(t, 1, v)

	// Rows [virtual, home) slide down by the frozen up gap.
	gap := rows.pitch
	assert.Equal(t, []int{0, gap, gap, gap, 0, 0}, eng.Offsets())
}

func TestOffsets_DraggedRowAlwaysZero(t *testing.T) {
	eng, rows, _ := newHarness(t, 4, "A", "B", "C", "D")

	rows.dragIdx = 0
	eng.StartDrag(testItem("A"))
	rows.delta = 3
	eng.Drag(testItem("A"))

	assert.Zero(t, eng.OffsetAt(0))
}

func TestOffsets_ZeroWhenGapWasNeverCaptured(t *testing.T) {
	// Single-row geometry at drag start: no neighbors, no gaps.
	rows := &testRows{count: 1, pitch: 2}
	eng := New(rows, nil)
	eng.SetItems(items("A"))
	rows.eng = eng

	eng.StartDrag(testItem("A"))
	rows.delta = 5
	eng.Drag(testItem("A"))

	assert.Equal(t, []int{0}, eng.Offsets())
}
