package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/draglist/internal/core/task"
)

type NewCmd struct {
	flags *Flags

	// flags
	title string
}

// NewNewCmd creates a new "new" command
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{flags: flags}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Add a task to the end of the list",
		UsageText: "draglist new [title]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "title",
				Destination: &cmd.title,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.title == "" {
		if err := cmd.promptTitle(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}
	if strings.TrimSpace(cmd.title) == "" {
		return fmt.Errorf("title is required")
	}

	t := task.New(strings.TrimSpace(cmd.title))
	if err := cmd.flags.Store.Add(t); err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	fmt.Printf("added %q\n", t.Title)
	return nil
}

func (cmd *NewCmd) promptTitle() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task title").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}).
				Value(&cmd.title),
		),
	).Run()
}
