package validation

import (
	"fmt"
	"strings"
)

// Kind selects the rule set applied to an input value.
type Kind int

const (
	KindPlain Kind = iota
	KindEmail
	KindPassword
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindPassword:
		return "password"
	default:
		return "plain"
	}
}

// ParseKind maps a configuration name onto a Kind. "text" is accepted as
// an alias for plain input.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain", "text":
		return KindPlain, nil
	case "email":
		return KindEmail, nil
	case "password":
		return KindPassword, nil
	default:
		return KindPlain, fmt.Errorf("unknown input kind %q", name)
	}
}
