package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/draglist/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as the default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use 'draglist ls' for scripted output")
	}

	model, err := tui.NewModel(cmd.flags.Config, cmd.flags.Store, log.Logger)
	if err != nil {
		return fmt.Errorf("initialize tui: %w", err)
	}

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if cmd.flags.Config.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Debug().Bool("mouse", cmd.flags.Config.Mouse).Msg("starting tui")
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
