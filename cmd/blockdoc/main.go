// cmd/blockdoc/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Used before the logger is ready
	"os"

	"github.com/bethropolis/blockdoc/internal/app"
	"github.com/bethropolis/blockdoc/internal/config"
	"github.com/bethropolis/blockdoc/internal/logger"
	"github.com/bethropolis/blockdoc/internal/session"
	"github.com/bethropolis/blockdoc/internal/tui"
	"github.com/bethropolis/blockdoc/internal/types"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		stlog.Printf("blockdoc: %v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.NewFlags("blockdoc")
	rest, err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return nil
	}

	cfg, undecoded, err := config.Load(flags.ConfigFilePath, flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath := cfg.Logger.LogFilePath
	if logPath == "" {
		logPath = config.DefaultLogFileName
	}
	out, closeLog, err := logger.OpenOutput(logPath)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Init(cfg.Logger, out)

	logger.Infof("Starting %s %s", config.AppName, version)
	if len(undecoded) > 0 {
		logger.Warnf("Config: unrecognized keys: %v", undecoded)
	}

	var filePath string
	if len(rest) > 0 {
		filePath = rest[0]
	}
	blocks, err := loadDocument(filePath)
	if err != nil {
		return err
	}

	sess := session.New(session.Options{
		HistoryCapacity: cfg.History.Capacity,
		InitialIndex:    cfg.Ordering.InitialIndex,
		SystemClipboard: cfg.Editor.SystemClipboard,
	}, blocks)

	tuiManager, err := tui.New()
	if err != nil {
		return fmt.Errorf("TUI initialization failed: %w", err)
	}

	if err := app.New(tuiManager, sess).Run(); err != nil {
		return err
	}
	logger.Infof("%s finished", config.AppName)
	return nil
}

// loadDocument reads paragraphs from path. A missing or empty path starts an empty document.
func loadDocument(path string) ([]types.Block, error) {
	if path == "" {
		logger.Debugf("No file specified, starting empty")
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("File %s does not exist, starting empty", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return session.FromParagraphs(string(data)), nil
}
