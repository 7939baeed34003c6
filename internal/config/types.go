package config

// DemoConfig describes what the demo shell shows: the starting theme and
// view, the input fields and the table.
type DemoConfig struct {
	Theme  string      `yaml:"theme" validate:"omitempty,theme_mode"`
	View   string      `yaml:"view" validate:"omitempty,nav_view"`
	Fields []FieldSpec `yaml:"fields" validate:"dive"`
	Table  TableSpec   `yaml:"table"`
}

// FieldSpec configures one InputField.
type FieldSpec struct {
	Label          string `yaml:"label" validate:"required"`
	Placeholder    string `yaml:"placeholder,omitempty"`
	Helper         string `yaml:"helper,omitempty"`
	Kind           string `yaml:"kind,omitempty" validate:"omitempty,input_kind"`
	Variant        string `yaml:"variant,omitempty" validate:"omitempty,input_variant"`
	Size           string `yaml:"size,omitempty" validate:"omitempty,input_size"`
	Clearable      bool   `yaml:"clearable,omitempty"`
	PasswordToggle bool   `yaml:"password_toggle,omitempty"`
	Disabled       bool   `yaml:"disabled,omitempty"`
}

// TableSpec configures the DataTable. Empty columns or rows fall back to the
// built-in dataset.
type TableSpec struct {
	Selectable string           `yaml:"selectable,omitempty" validate:"omitempty,selection_mode"`
	Loading    bool             `yaml:"loading,omitempty"`
	Columns    []ColumnSpec     `yaml:"columns,omitempty" validate:"dive"`
	Rows       []map[string]any `yaml:"rows,omitempty"`
}

// ColumnSpec configures one table column.
type ColumnSpec struct {
	Key       string `yaml:"key" validate:"required,column_key"`
	Title     string `yaml:"title" validate:"required"`
	DataIndex string `yaml:"data_index" validate:"required"`
	Sortable  bool   `yaml:"sortable,omitempty"`
}

// Default returns the configuration of the stock demo: Name, Email and
// Password fields over the built-in table.
func Default() *DemoConfig {
	return &DemoConfig{
		Theme: "light",
		View:  "input",
		Fields: []FieldSpec{
			{
				Label:       "Name",
				Placeholder: "Enter your name",
				Helper:      "This is a demo input",
				Kind:        "plain",
				Size:        "md",
				Clearable:   true,
			},
			{
				Label:       "Email",
				Placeholder: "Enter your email",
				Helper:      "Please enter a valid email address",
				Kind:        "email",
				Size:        "md",
				Clearable:   true,
			},
			{
				Label:          "Password",
				Placeholder:    "Enter your password",
				Helper:         "Password must be at least 6 characters and contain a number",
				Kind:           "password",
				Size:           "md",
				Clearable:      true,
				PasswordToggle: true,
			},
		},
		Table: TableSpec{
			Selectable: "multiple",
		},
	}
}
