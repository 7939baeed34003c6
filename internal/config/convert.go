package config

import (
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
	"github.com/alexisbeaulieu97/widgetkit/internal/validation"
)

// ThemeMode returns the configured starting theme.
func (c *DemoConfig) ThemeMode() components.ThemeMode {
	mode, _ := components.ParseThemeMode(c.Theme)
	return mode
}

// StartView returns the configured starting view.
func (c *DemoConfig) StartView() components.NavView {
	view, _ := components.ParseNavView(c.View)
	return view
}

// NewField builds an InputField from the field settings. The change
// callback is left for the caller to wire.
func (f FieldSpec) NewField() *components.InputField {
	kind, _ := validation.ParseKind(f.Kind)
	variant, _ := components.ParseInputVariant(f.Variant)
	size, _ := components.ParseInputSize(f.Size)

	return components.NewInputField().
		WithLabel(f.Label).
		WithPlaceholder(f.Placeholder).
		WithHelperText(f.Helper).
		WithKind(kind).
		WithVariant(variant).
		WithSize(size).
		WithClearable(f.Clearable).
		WithPasswordToggle(f.PasswordToggle).
		WithDisabled(f.Disabled)
}

// Mode returns the configured selection mode.
func (t TableSpec) Mode() components.SelectionMode {
	mode, _ := components.ParseSelectionMode(t.Selectable)
	return mode
}

// ColumnList converts the column specs. Nil means the table should use its
// default columns.
func (t TableSpec) ColumnList() []components.Column {
	if len(t.Columns) == 0 {
		return nil
	}
	out := make([]components.Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, components.Column{
			Key:       c.Key,
			Title:     c.Title,
			DataIndex: c.DataIndex,
			Sortable:  c.Sortable,
		})
	}
	return out
}

// Records converts the configured rows. Nil means the table should use its
// default dataset.
func (t TableSpec) Records() []components.Record {
	if len(t.Rows) == 0 {
		return nil
	}
	out := make([]components.Record, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, components.Record(r))
	}
	return out
}

// NewTable builds the DataTable these settings describe.
func (t TableSpec) NewTable() *components.DataTable[components.Record] {
	return components.NewDataTable(t.Records(), t.ColumnList()).
		WithSelectable(t.Mode()).
		WithLoading(t.Loading)
}
