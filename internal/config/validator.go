package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	widgeterrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *DemoConfig) error {
	if cfg == nil {
		return widgeterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Table.Columns))
	for i, col := range cfg.Table.Columns {
		if first, exists := seen[col.Key]; exists {
			return widgeterrors.NewValidationError(
				fieldForColumn(i, "key"),
				fmt.Sprintf("duplicate column key %q (first used by table.columns[%d])", col.Key, first),
				nil,
			)
		}
		seen[col.Key] = i
	}

	labels := make(map[string]int, len(cfg.Fields))
	for i, field := range cfg.Fields {
		if first, exists := labels[field.Label]; exists {
			return widgeterrors.NewValidationError(
				fmt.Sprintf("fields[%d].label", i),
				fmt.Sprintf("duplicate field label %q (first used by fields[%d])", field.Label, first),
				nil,
			)
		}
		labels[field.Label] = i

		if field.PasswordToggle && field.Kind != "password" {
			return widgeterrors.NewValidationError(
				fmt.Sprintf("fields[%d].password_toggle", i),
				"password_toggle requires kind password",
				nil,
			)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return widgeterrors.NewValidationError(field, msg, err)
	}

	return widgeterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, leaving the path
// as written in the file.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForColumn(index int, field string) string {
	return fmt.Sprintf("table.columns[%d].%s", index, field)
}
