package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/logger"
)

// AppContext bundles the services a command needs.
type AppContext struct {
	Config *config.Config
	Log    *logger.Logger
}

func loadAppContext(cmd *cobra.Command, root *rootFlags) (*AppContext, error) {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if root.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &AppContext{
		Config: cfg,
		Log:    log.WithFields(map[string]any{"command": cmd.Name()}),
	}, nil
}
