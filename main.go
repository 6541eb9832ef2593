package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/draglist/internal/commands"
	"github.com/hay-kot/draglist/internal/core/config"
	"github.com/hay-kot/draglist/internal/core/task"
	"github.com/hay-kot/draglist/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	tuiCmd := commands.NewTuiCmd(flags)

	app := &cli.Command{
		Name:      "draglist",
		Usage:     "Reorder a task list by dragging rows in the terminal",
		UsageText: "draglist [global options] command [command options]",
		Description: `Draglist keeps an ordered task list and lets you rearrange it by grabbing
a row with the mouse and dragging it up or down; the other rows slide out
of the way as you go.

Run 'draglist' with no arguments to open the interactive list.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DRAGLIST_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <state-dir>/draglist.log)",
				Sources:     cli.EnvVars("DRAGLIST_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DRAGLIST_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "directory holding the task list",
				Sources:     cli.EnvVars("DRAGLIST_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logFile := flags.LogFile
			if logFile == "" {
				logFile = commands.DefaultLogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			logCloser = closer
			log.Logger = logger

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, err
			}
			flags.Config = cfg
			flags.Store = task.NewStore(flags.TasksFile())

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("tasks_file", flags.TasksFile()).
				Msg("initialized")
			return ctx, nil
		},
		Action: tuiCmd.Run,
	}

	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewNewCmd(flags).Register(app)

	err := app.Run(ctx, os.Args)
	if logCloser != nil {
		logCloser()
	}
	if err != nil {
		log.Error().Err(err).Msg("draglist exited with error")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
