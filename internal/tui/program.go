package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
)

// RunOptions controls how the interactive program is attached to the
// terminal.
type RunOptions struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

// Run starts the demo and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg *config.DemoConfig, log *logger.Logger, opts RunOptions) error {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	log.Info("starting demo")
	_, err := tea.NewProgram(NewModel(cfg, log), progOpts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run demo: %w", err)
	}
	log.Info("demo finished")
	return nil
}
