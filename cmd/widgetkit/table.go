package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
	widgeterrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

type tableOptions struct {
	sortKey    string
	descending bool
	jsonOutput bool
}

func newTableCmd(app *appContext) *cobra.Command {
	opts := &tableOptions{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the demo table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sortKey, "sort", "s", "", "Sort by the column with this key")
	cmd.Flags().BoolVar(&opts.descending, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runTable(cmd *cobra.Command, app *appContext, opts *tableOptions) error {
	log, err := app.logger(cmd.ErrOrStderr(), false)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Close()

	table := app.cfg.Table.NewTable().WithLoading(false)
	if err := applySort(table, opts); err != nil {
		return err
	}
	log.WithFields(map[string]any{
		"rows": len(table.Rows()),
		"sort": table.SortKey(),
	}).Debug("printing table")

	if opts.jsonOutput {
		return renderTableJSON(cmd, table)
	}
	return renderTableText(cmd, table)
}

// applySort drives the table through its header clicks: one for
// ascending, a second for descending.
func applySort(table *components.DataTable[components.Record], opts *tableOptions) error {
	if opts.sortKey == "" {
		if opts.descending {
			return widgeterrors.NewUsageError("table", "--desc requires --sort")
		}
		return nil
	}

	for i, col := range table.Columns() {
		if col.Key != opts.sortKey {
			continue
		}
		if !col.Sortable {
			return widgeterrors.NewUsageError("table", fmt.Sprintf("column %q is not sortable", col.Key))
		}
		table.ClickHeader(i)
		if opts.descending {
			table.ClickHeader(i)
		}
		return nil
	}

	keys := make([]string, 0, len(table.Columns()))
	for _, col := range table.Columns() {
		keys = append(keys, col.Key)
	}
	return widgeterrors.NewUsageError("table",
		fmt.Sprintf("unknown column %q (available: %s)", opts.sortKey, strings.Join(keys, ", ")))
}

func renderTableText(cmd *cobra.Command, table *components.DataTable[components.Record]) error {
	rows := table.SortedRows()
	columns := table.Columns()
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = strings.ToUpper(col.Title)
	}
	fmt.Fprintln(writer, strings.Join(headers, "\t"))

	cells := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			cells[i] = cellText(row, col)
		}
		fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}

	return writer.Flush()
}

type tableJSONPayload struct {
	Sort    *tableJSONSort      `json:"sort,omitempty"`
	Columns []tableJSONColumn   `json:"columns"`
	Count   int                 `json:"count"`
	Rows    []map[string]string `json:"rows"`
}

type tableJSONSort struct {
	Key       string `json:"key"`
	Ascending bool   `json:"ascending"`
}

type tableJSONColumn struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Sortable bool   `json:"sortable"`
}

func renderTableJSON(cmd *cobra.Command, table *components.DataTable[components.Record]) error {
	rows := table.SortedRows()
	columns := table.Columns()

	payload := tableJSONPayload{
		Columns: make([]tableJSONColumn, len(columns)),
		Count:   len(rows),
		Rows:    make([]map[string]string, len(rows)),
	}
	if key := table.SortKey(); key != "" {
		payload.Sort = &tableJSONSort{Key: key, Ascending: table.SortAscending()}
	}
	for i, col := range columns {
		payload.Columns[i] = tableJSONColumn{Key: col.Key, Title: col.Title, Sortable: col.Sortable}
	}
	for i, row := range rows {
		out := make(map[string]string, len(columns))
		for _, col := range columns {
			out[col.Key] = cellText(row, col)
		}
		payload.Rows[i] = out
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func cellText(row components.Record, col components.Column) string {
	v, ok := row.Field(col.DataIndex)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
