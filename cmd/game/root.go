package main

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/edge/internal/infrastructure/config"
)

type options struct {
	configDir string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	play := &playOptions{options: opts}

	root := &cobra.Command{
		Use:          "edge",
		Short:        "Climb to the edge of the recursion",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, play)
		},
	}
	root.PersistentFlags().StringVar(&opts.configDir, "config", "", "directory holding game.yaml and assets (default: embedded)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	play.bindFlags(root)

	root.AddCommand(newPlayCmd(opts), newSimulateCmd(opts), newKeysCmd(opts))
	return root
}

// load builds the logger and loads the configuration.
func (o *options) load(w io.Writer) (*config.GameConfig, *config.Loader, *log.Logger, error) {
	logger, err := newLogger(o.logLevel, w)
	if err != nil {
		return nil, nil, nil, err
	}

	loader, err := o.loader()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("config loaded", "source", loader.BasePath())
	return cfg, loader, logger, nil
}

func (o *options) loader() (*config.Loader, error) {
	if o.configDir != "" {
		return config.NewLoader(o.configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func newLogger(level string, w io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "edge",
		ReportTimestamp: true,
	}), nil
}
