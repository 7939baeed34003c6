package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetkit/internal/validation"
	widgeterrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

// errValueRejected signals a failed validation whose message was already
// printed.
var errValueRejected = errors.New("value rejected")

func newValidateCmd() *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check a value against an input kind",
		Example: `  widgetkit validate --kind email user@example.com
  widgetkit validate --kind password hunter2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := validation.ParseKind(kindName)
			if err != nil {
				return widgeterrors.NewUsageError("validate", err.Error())
			}

			if err := validation.Validate(args[0], kind); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), validation.Message(err))
				return fmt.Errorf("%w: %w", errValueRejected, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "plain", "Input kind: plain, email or password")

	return cmd
}
