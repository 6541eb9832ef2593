package tui

import "github.com/charmbracelet/glamour"

const helpDoc = `# draglist

Reorder the list by dragging rows with the mouse: press and hold a row,
move it up or down, and release to drop it. The other rows slide out of the
way as you go; the order is saved the moment you let go.

## Keys

| Key | Action |
| --- | ------ |
| ` + "`↑/k` `↓/j`" + ` | move the selection |
| ` + "`shift+↑/K` `shift+↓/J`" + ` | move the selected task |
| ` + "`space`" + ` | toggle done |
| ` + "`a`" + ` | add a task |
| ` + "`d`" + ` | delete the selected task |
| ` + "`esc`" + ` | cancel an in-progress drag |
| ` + "`q`" + ` | quit |

Mouse capture can be turned off with ` + "`mouse: false`" + ` in the config
file; the shift-move keys keep working without it.
`

// renderHelpDoc renders the help markdown for the current terminal width.
// Falls back to the raw markdown if rendering fails.
func renderHelpDoc(width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(min(width, 100)),
	)
	if err != nil {
		return helpDoc
	}
	out, err := r.Render(helpDoc)
	if err != nil {
		return helpDoc
	}
	return out
}
