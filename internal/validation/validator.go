package validation

import (
	stderrors "errors"
	"regexp"
	"unicode/utf8"

	widgeterrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

const (
	// MsgInvalidEmail is shown for values that do not look like an address.
	MsgInvalidEmail = "Invalid email address"
	// MsgWeakPassword is shown for passwords that are too short or lack a digit.
	MsgWeakPassword = "Password must be at least 6 characters and contain a number"

	minPasswordLength = 6
)

var (
	// Whitespace includes Unicode separators and the BOM, not only ASCII.
	emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)
	digitPattern = regexp.MustCompile(`\d`)
)

// Validate checks value against the rules for kind and returns nil when it
// is acceptable. Empty values are always acceptable. The returned error is
// a *errors.ValidationError whose Message is suitable for display.
func Validate(value string, kind Kind) error {
	if value == "" {
		return nil
	}

	switch kind {
	case KindEmail:
		if !emailPattern.MatchString(value) {
			return widgeterrors.NewValidationError(kind.String(), MsgInvalidEmail, nil)
		}
	case KindPassword:
		// Length is measured in runes, so one emoji counts once.
		if utf8.RuneCountInString(value) < minPasswordLength || !digitPattern.MatchString(value) {
			return widgeterrors.NewValidationError(kind.String(), MsgWeakPassword, nil)
		}
	}

	return nil
}

// Message extracts the display text from a validation failure. It returns
// an empty string for nil and falls back to Error() for foreign errors.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *widgeterrors.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.Message
	}
	return err.Error()
}
