// Package commands implements the CLI subcommands.
package commands

import (
	"os"
	"path/filepath"

	"github.com/hay-kot/draglist/internal/core/config"
	"github.com/hay-kot/draglist/internal/core/task"
)

// Flags holds the global flags and the state shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Store is the task store backing the list
	Store *task.Store
}

// TasksFile resolves the task list path: config override first, then the
// data directory default.
func (f *Flags) TasksFile() string {
	if f.Config != nil && f.Config.TasksFile != "" {
		return f.Config.TasksFile
	}
	return filepath.Join(f.DataDir, "tasks.yaml")
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "draglist", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "draglist")
}

// DefaultLogFile returns the default log file path using XDG_STATE_HOME.
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "draglist", "draglist.log")
}
