package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/widgetkit/internal/tui"
)

const snapshotWidth = 80

func newDemoCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive widget demo",
		Long: `Launch the interactive demo: a nav bar over the input fields and the
data table. When stdout is not a terminal a static snapshot is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, app)
		},
	}
}

func runDemo(cmd *cobra.Command, app *appContext) error {
	out := cmd.OutOrStdout()
	interactive := isTerminal(out)

	log, err := app.logger(cmd.ErrOrStderr(), interactive)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Close()

	if !interactive {
		log.Debug("stdout is not a terminal, printing snapshot")
		fmt.Fprintln(out, tui.NewModel(app.cfg, log).Snapshot(snapshotWidth))
		return nil
	}

	err = tui.Run(cmd.Context(), app.cfg, log, tui.RunOptions{
		Input:     cmd.InOrStdin(),
		Output:    out,
		AltScreen: true,
	})
	if err != nil {
		log.Error(err, "demo failed")
	}
	return err
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
