// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Shared styles, rebuilt by SetTheme.
var (
	TitleStyle      lipgloss.Style
	SubtleStyle     lipgloss.Style
	SelectedStyle   lipgloss.Style
	DraggingStyle   lipgloss.Style
	DoneStyle       lipgloss.Style
	ErrorStyle      lipgloss.Style
	HelpKeyStyle    lipgloss.Style
	HelpDescStyle   lipgloss.Style
	StatusBarStyle  lipgloss.Style
	DropTargetStyle lipgloss.Style
)

func init() {
	SetTheme(DefaultTheme)
}

// SetTheme activates the named palette, falling back to the default for
// unknown names, and rebuilds the shared styles.
func SetTheme(name string) {
	p, ok := themes[name]
	if !ok {
		p = themes[DefaultTheme]
	}
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(p.Muted)
	SelectedStyle = lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Surface)
	DraggingStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	DoneStyle = lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	HelpDescStyle = lipgloss.NewStyle().Foreground(p.Muted)
	StatusBarStyle = lipgloss.NewStyle().Foreground(p.Muted)
	DropTargetStyle = lipgloss.NewStyle().Foreground(p.Warning)
}
