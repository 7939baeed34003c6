package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
	"github.com/alexisbeaulieu97/widgetkit/internal/validation"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	columnKeyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "" {
				name, _, _ = strings.Cut(fld.Tag.Get("env"), ",")
			}
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("column_key", func(fl validator.FieldLevel) bool {
			return columnKeyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("input_kind", func(fl validator.FieldLevel) bool {
			_, err := validation.ParseKind(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("input_variant", func(fl validator.FieldLevel) bool {
			_, ok := components.ParseInputVariant(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("input_size", func(fl validator.FieldLevel) bool {
			_, ok := components.ParseInputSize(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("selection_mode", func(fl validator.FieldLevel) bool {
			_, ok := components.ParseSelectionMode(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, ok := components.ParseThemeMode(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("nav_view", func(fl validator.FieldLevel) bool {
			_, ok := components.ParseNavView(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
