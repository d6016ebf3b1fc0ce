// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
// Only flags that were set on the command line override the config file.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  string
	Version         bool
	LogLevel        string
	LogFilePath     string
	HistoryCapacity int
	InitialIndex    float64
	EnableTags      string
	DisableTags     string
	EnablePkgs      string
	DisablePkgs     string
	SystemClipboard bool
}

// NewFlags defines the command-line flags on a new flag set.
func NewFlags(name string) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	f.fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error)")
	f.fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr)")
	f.fs.IntVar(&f.HistoryCapacity, "history", 0, "Maximum undo/redo steps kept")
	f.fs.Float64Var(&f.InitialIndex, "initial-index", 0, "Fractional index of the first block in an empty document")
	f.fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of log tags to enable")
	f.fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of log tags to disable")
	f.fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to enable")
	f.fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable")
	f.fs.BoolVar(&f.SystemClipboard, "system-clipboard", SystemClipboard, "Use the system clipboard for block copy/paste")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides copies every explicitly set flag into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "history":
			if f.HistoryCapacity > 0 {
				cfg.History.Capacity = f.HistoryCapacity
			}
		case "initial-index":
			if f.InitialIndex > 0 {
				cfg.Ordering.InitialIndex = f.InitialIndex
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
		}
	})
}

func splitCommaList(list string) []string {
	var result []string
	for _, item := range strings.Split(list, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
