package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

// appContext carries what every command needs after flag parsing.
type appContext struct {
	flags    *rootFlags
	settings config.Settings
	cfg      *config.DemoConfig
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "widgetkit",
		Short:         "Widgetkit showcases terminal input, table and navigation widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the demo.
			return runDemo(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a demo configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newDemoCmd(app))
	cmd.AddCommand(newTableCmd(app))
	cmd.AddCommand(newSnapshotCmd(app))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *appContext) load() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if a.flags.verbose {
		settings.LogLevel = "debug"
	}
	a.settings = settings

	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if settings.Theme != "" {
		cfg.Theme = settings.Theme
	}
	a.cfg = cfg
	return nil
}

// logger builds the command logger. Without a log file, interactive runs
// discard and everything else writes to w.
func (a *appContext) logger(w io.Writer, interactive bool) (*logger.Logger, error) {
	if a.settings.LogFile == "" && interactive {
		return logger.Nop(), nil
	}
	return logger.New(logger.Options{
		Level:         a.settings.LogLevel,
		HumanReadable: a.settings.LogHuman,
		Writer:        w,
		File:          a.settings.LogFile,
	})
}
