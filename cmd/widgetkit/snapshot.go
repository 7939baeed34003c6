package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetkit/internal/tui"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
	"github.com/alexisbeaulieu97/widgetkit/pkg/diff"
	widgeterrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

// errSnapshotDrift reports a rendered snapshot that no longer matches its
// golden file. The diff has already been printed.
var errSnapshotDrift = errors.New("snapshot differs from golden file")

type snapshotOptions struct {
	view   string
	width  int
	golden string
	update bool
}

func newSnapshotCmd(app *appContext) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a static snapshot of the demo",
		Long: `Render the demo shell without colour or key help. With --golden the
snapshot is compared against the file and a unified diff is printed when
they differ; --update rewrites the file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.view, "view", "", "View to render: input or table (default from config)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", snapshotWidth, "Terminal width to render at")
	cmd.Flags().StringVarP(&opts.golden, "golden", "g", "", "Golden file to compare against")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite the golden file with the current snapshot")

	return cmd
}

func runSnapshot(cmd *cobra.Command, app *appContext, opts *snapshotOptions) error {
	if opts.update && opts.golden == "" {
		return widgeterrors.NewUsageError("snapshot", "--update requires --golden")
	}
	if opts.width <= 0 {
		return widgeterrors.NewUsageError("snapshot", "--width must be positive")
	}

	cfg := *app.cfg
	if opts.view != "" {
		if _, ok := components.ParseNavView(opts.view); !ok {
			return widgeterrors.NewUsageError("snapshot", fmt.Sprintf("unknown view %q", opts.view))
		}
		cfg.View = opts.view
	}

	log, err := app.logger(cmd.ErrOrStderr(), false)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Close()

	rendered := ansi.Strip(tui.NewModel(&cfg, log).Snapshot(opts.width)) + "\n"

	if opts.golden == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	if opts.update {
		if err := os.WriteFile(opts.golden, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write golden file: %w", err)
		}
		log.With("path", opts.golden).Info("golden file updated")
		return nil
	}

	expected, err := os.ReadFile(opts.golden)
	if err != nil {
		return fmt.Errorf("read golden file: %w", err)
	}

	if d := diff.Unified(string(expected), rendered, opts.golden, "snapshot"); d != "" {
		fmt.Fprint(cmd.OutOrStdout(), d)
		return errSnapshotDrift
	}

	fmt.Fprintln(cmd.OutOrStdout(), "snapshot matches")
	return nil
}
