package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/draglist/internal/core/styles"
	"github.com/hay-kot/draglist/internal/core/task"
)

// headerHeight is the number of lines above the row canvas: the title line
// and one blank. Content-space Y = screen Y - headerHeight.
const headerHeight = 2

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == stateShowingHelp {
		return m.helpDoc + "\n" + styles.SubtleStyle.Render("press ? or esc to close")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("draglist"))
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())
	b.WriteString("\n\n")

	if m.state == stateAdding {
		b.WriteString("add: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	out := b.String()
	if m.zone != nil {
		return m.zone.Scan(out)
	}
	return out
}

// renderRows paints every row onto a line canvas at its current position:
// home slot plus applied offset, the dragged row following the pointer and
// drawn last so it stays on top.
func (m Model) renderRows() string {
	tasks := m.ctrl.tasks
	if len(tasks) == 0 {
		return styles.SubtleStyle.Render("no tasks yet. press a to add one")
	}

	rs := m.ctrl.rows
	extent := len(tasks) * rs.pitch
	for _, t := range tasks {
		if r, ok := rs.ByKey(t.ID); ok {
			if bottom := r.Rect().Bottom; bottom > extent {
				extent = bottom
			}
		}
	}

	lines := make([]string, extent)
	draggedKey := m.ctrl.eng.DraggingID()

	draw := func(i int, t task.Task) {
		r, ok := rs.ByKey(t.ID)
		if !ok {
			return
		}
		rect := r.Rect()
		rowLines := strings.Split(m.rowView(i, t), "\n")
		for j := 0; j < r.height; j++ {
			y := rect.Top + j
			if y < 0 || y >= len(lines) {
				continue
			}
			if j < len(rowLines) {
				lines[y] = rowLines[j]
			} else {
				lines[y] = ""
			}
		}
	}

	for i, t := range tasks {
		if t.ID != draggedKey {
			draw(i, t)
		}
	}
	if draggedKey != "" {
		if i, ok := m.ctrl.indexOf(draggedKey); ok {
			draw(i, tasks[i])
		}
	}

	return strings.Join(lines, "\n")
}

// rowView renders one row's text. The selection cursor doubles as the hover
// affordance and is suppressed while any drag is in progress.
func (m Model) rowView(i int, t task.Task) string {
	dragging := m.ctrl.eng.Dragging()
	isDragged := dragging && t.ID == m.ctrl.eng.DraggingID()

	cursor := "  "
	if i == m.selected && !dragging {
		cursor = "▍ "
	}
	check := "[ ]"
	if t.Done {
		check = "[x]"
	}
	line := cursor + check + " " + t.Title

	var st lipgloss.Style
	switch {
	case isDragged:
		st = styles.DraggingStyle
	case t.Done:
		st = styles.DoneStyle
	case i == m.selected && !dragging:
		st = styles.SelectedStyle
	default:
		st = lipgloss.NewStyle()
	}

	out := st.Render(line)
	if m.zone != nil {
		out = m.zone.Mark(t.ID, out)
	}
	return out
}

func (m Model) statusBar() string {
	if m.ctrl.saveErr != nil {
		return styles.ErrorStyle.Render("save failed: " + m.ctrl.saveErr.Error())
	}

	msg := fmt.Sprintf("%d tasks", len(m.ctrl.tasks))
	if len(m.ctrl.tasks) == 1 {
		msg = "1 task"
	}
	if m.ctrl.eng.Dragging() {
		if v, ok := m.ctrl.eng.VirtualIndex(); ok {
			msg += fmt.Sprintf(" · dropping at %d", v+1)
		}
	}
	return styles.StatusBarStyle.Render(msg)
}
