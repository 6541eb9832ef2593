// Package tui implements the Bubble Tea interface for draglist.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/hay-kot/draglist/internal/core/config"
	"github.com/hay-kot/draglist/internal/core/styles"
	"github.com/hay-kot/draglist/internal/core/task"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateAdding
	stateShowingHelp
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg  *config.Config
	ctrl *controller
	zone *zone.Manager
	keys KeyMap
	help help.Model

	state    UIState
	input    textinput.Model
	selected int
	helpDoc  string

	width    int
	height   int
	quitting bool
}

// NewModel creates the TUI model. The zone manager is only created when
// mouse capture is enabled; hit testing falls back to row geometry without
// it.
func NewModel(cfg *config.Config, store *task.Store, log zerolog.Logger) (Model, error) {
	styles.SetTheme(cfg.Theme)

	ctrl, err := newController(store, cfg, log)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Placeholder = "task title"
	input.CharLimit = 120

	m := Model{
		cfg:   cfg,
		ctrl:  ctrl,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		input: input,
	}
	if cfg.Mouse {
		m.zone = zone.New()
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateAdding:
		return m.updateAdding(msg)

	case stateShowingHelp:
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Cancel) || key.Matches(msg, m.keys.Quit) {
			m.state = stateNormal
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.cancelDrag()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.ctrl.tasks)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		m.selected = m.ctrl.moveBy(m.selected, -1)
		return m, nil

	case key.Matches(msg, m.keys.MoveDown):
		m.selected = m.ctrl.moveBy(m.selected, 1)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.toggle(m.selected)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.ctrl.remove(m.selected)
		if m.selected >= len(m.ctrl.tasks) && m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.state = stateAdding
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Help):
		m.state = stateShowingHelp
		m.helpDoc = renderHelpDoc(m.width)
		return m, nil
	}

	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if title := m.input.Value(); title != "" {
			m.ctrl.add(title)
			m.selected = len(m.ctrl.tasks) - 1
		}
		m.state = stateNormal
		m.input.Blur()
		return m, nil

	case "esc":
		m.state = stateNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.cfg.Mouse || m.state != stateNormal {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if i := m.hitRow(msg); i >= 0 {
			m.selected = i
			m.ctrl.startDrag(i, msg.Y)
		}

	case msg.Action == tea.MouseActionMotion:
		m.ctrl.dragTo(msg.Y)

	case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
		dragged := m.ctrl.eng.DraggingID()
		m.ctrl.finishDrag()
		if i, ok := m.ctrl.indexOf(dragged); ok {
			m.selected = i
		}
	}

	return m, nil
}

// hitRow resolves a press to a row index: by zone when the last render has
// been scanned, otherwise by row geometry in content coordinates.
func (m Model) hitRow(msg tea.MouseMsg) int {
	if m.zone != nil {
		for i, t := range m.ctrl.tasks {
			if m.zone.Get(t.ID).InBounds(msg) {
				return i
			}
		}
	}
	return m.ctrl.rows.hitTest(msg.Y - headerHeight)
}
