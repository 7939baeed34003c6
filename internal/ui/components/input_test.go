package components

import (
	"testing"

	"github.com/alexisbeaulieu97/widgetkit/internal/validation"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// controlled wires a field to a caller-owned value the way the shell does.
func controlled(f *InputField) (*InputField, *[]string) {
	var changes []string
	f.WithOnChange(func(v string) {
		changes = append(changes, v)
		f.SetValue(v)
	})
	return f, &changes
}

func typeRunes(f *InputField, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestInputFieldDefaults(t *testing.T) {
	f := NewInputField()

	assert.Equal(t, InputVariantOutlined, f.Variant())
	assert.Equal(t, InputSizeMedium, f.Size())
	assert.Equal(t, validation.KindPlain, f.Kind())
	assert.Empty(t, f.Value())
	assert.Empty(t, f.DisplayedError())
	assert.False(t, f.Invalid())
	assert.False(t, f.Disabled())
	assert.False(t, f.Loading())

	f.WithDisabled(true).WithLoading(true)
	assert.True(t, f.Disabled())
	assert.True(t, f.Loading())
}

func TestInputFieldFluentReturnsSameInstance(t *testing.T) {
	f := NewInputField()

	assert.Same(t, f, f.WithLabel("Name"))
	assert.Same(t, f, f.WithPlaceholder("Enter your name"))
	assert.Same(t, f, f.WithHelperText("helper"))
	assert.Same(t, f, f.WithClearable(true))
	assert.Same(t, f, f.SetValue("x"))
}

func TestInputFieldTypingReportsChanges(t *testing.T) {
	f, changes := controlled(NewInputField())
	f.Focus()

	typeRunes(f, "ab")

	assert.Equal(t, []string{"a", "ab"}, *changes)
	assert.Equal(t, "ab", f.Value())
}

func TestInputFieldIsControlled(t *testing.T) {
	var reported []string
	f := NewInputField().WithOnChange(func(v string) {
		reported = append(reported, v)
	})
	f.Focus()

	typeRunes(f, "a")
	typeRunes(f, "b")

	// The caller never echoed, so each edit starts from the empty value.
	assert.Equal(t, []string{"a", "b"}, reported)
	assert.Empty(t, f.Value())
}

func TestInputFieldIgnoresKeysWhenUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*InputField)
	}{
		{
			name: "disabled",
			setup: func(f *InputField) {
				f.WithDisabled(true)
				f.Focus()
			},
		},
		{
			name: "loading",
			setup: func(f *InputField) {
				f.WithLoading(true)
				f.Focus()
			},
		},
		{
			name:  "unfocused",
			setup: func(*InputField) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, changes := controlled(NewInputField())
			tt.setup(f)

			typeRunes(f, "a")

			assert.Empty(t, *changes)
			assert.Empty(t, f.Value())
		})
	}
}

func TestInputFieldEmailValidation(t *testing.T) {
	f, _ := controlled(NewInputField().WithKind(validation.KindEmail))
	f.Focus()

	typeRunes(f, "a@b")
	assert.Equal(t, validation.MsgInvalidEmail, f.DisplayedError())
	assert.True(t, f.Invalid())
	assert.Equal(t, "a@b", f.Value(), "invalid values still propagate")

	typeRunes(f, ".co")
	assert.Empty(t, f.DisplayedError())
	assert.Nil(t, f.LocalError())
}

func TestInputFieldPasswordValidation(t *testing.T) {
	f, _ := controlled(NewInputField().WithKind(validation.KindPassword))
	f.Focus()

	typeRunes(f, "abcdef")
	assert.Equal(t, validation.MsgWeakPassword, f.DisplayedError())

	typeRunes(f, "1")
	assert.Empty(t, f.DisplayedError())
}

func TestInputFieldDisplayedErrorPrecedence(t *testing.T) {
	t.Run("external message needs invalid", func(t *testing.T) {
		f := NewInputField().WithErrorMessage("taken")
		assert.Empty(t, f.DisplayedError())

		f.WithInvalid(true)
		assert.Equal(t, "taken", f.DisplayedError())
	})

	t.Run("local error shadows external", func(t *testing.T) {
		f, _ := controlled(NewInputField().
			WithKind(validation.KindEmail).
			WithInvalid(true).
			WithErrorMessage("taken"))
		f.Focus()

		typeRunes(f, "x")
		assert.Equal(t, validation.MsgInvalidEmail, f.DisplayedError())
	})
}

func TestInputFieldClear(t *testing.T) {
	f, changes := controlled(NewInputField().WithClearable(true).WithKind(validation.KindEmail))
	f.SetValue("abc")
	f.Focus()
	typeRunes(f, "d")
	require.NotEmpty(t, f.DisplayedError())
	require.True(t, f.ClearVisible())

	f.Clear()

	assert.Equal(t, "", (*changes)[len(*changes)-1])
	assert.Empty(t, f.Value())
	assert.Empty(t, f.DisplayedError())
	assert.False(t, f.ClearVisible())
}

func TestInputFieldClearVisibility(t *testing.T) {
	tests := []struct {
		name  string
		field *InputField
		want  bool
	}{
		{name: "clearable with value", field: NewInputField().WithClearable(true).SetValue("abc"), want: true},
		{name: "not clearable", field: NewInputField().SetValue("abc"), want: false},
		{name: "empty value", field: NewInputField().WithClearable(true), want: false},
		{name: "disabled", field: NewInputField().WithClearable(true).WithDisabled(true).SetValue("abc"), want: false},
		{name: "loading", field: NewInputField().WithClearable(true).WithLoading(true).SetValue("abc"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.ClearVisible())
		})
	}
}

func TestInputFieldClearIsNoopWhenHidden(t *testing.T) {
	f, changes := controlled(NewInputField().WithClearable(true).WithDisabled(true))
	f.SetValue("abc")

	f.Clear()

	assert.Empty(t, *changes)
	assert.Equal(t, "abc", f.Value())
}

func TestInputFieldPasswordToggle(t *testing.T) {
	f := NewInputField().WithKind(validation.KindPassword).WithPasswordToggle(true)
	require.True(t, f.ToggleVisible())
	assert.Equal(t, textinput.EchoPassword, f.EchoMode())

	f.TogglePassword()
	assert.True(t, f.Revealed())
	assert.Equal(t, textinput.EchoNormal, f.EchoMode())

	f.TogglePassword()
	assert.False(t, f.Revealed())
	assert.Equal(t, textinput.EchoPassword, f.EchoMode())
}

func TestInputFieldPasswordToggleGuards(t *testing.T) {
	plain := NewInputField().WithPasswordToggle(true)
	assert.False(t, plain.ToggleVisible())
	plain.TogglePassword()
	assert.False(t, plain.Revealed())

	disabled := NewInputField().
		WithKind(validation.KindPassword).
		WithPasswordToggle(true).
		WithDisabled(true)
	assert.True(t, disabled.ToggleVisible())
	disabled.TogglePassword()
	assert.False(t, disabled.Revealed())
}

func TestInputFieldRevealDoesNotAffectValidation(t *testing.T) {
	f, _ := controlled(NewInputField().WithKind(validation.KindPassword).WithPasswordToggle(true))
	f.Focus()
	typeRunes(f, "abc")
	before := f.DisplayedError()

	f.TogglePassword()

	assert.Equal(t, before, f.DisplayedError())
}

func TestInputFieldInitStartsSpinnerOnlyWhenLoading(t *testing.T) {
	assert.Nil(t, NewInputField().Init())
	assert.NotNil(t, NewInputField().WithLoading(true).Init())
}

func TestInputFieldView(t *testing.T) {
	f := NewInputField().
		WithLabel("Email").
		WithHelperText("We never share it").
		WithKind(validation.KindEmail).
		WithClearable(true).
		SetValue("someone@example.com")

	view := f.View()

	assert.Contains(t, view, "Email")
	assert.Contains(t, view, "We never share it")
	assert.Contains(t, view, "×")
}

func TestInputFieldViewShowsAffordances(t *testing.T) {
	f := NewInputField().WithKind(validation.KindPassword).WithPasswordToggle(true)
	assert.Contains(t, f.View(), "Show")

	f.TogglePassword()
	assert.Contains(t, f.View(), "Hide")
}

func TestInputFieldViewShowsError(t *testing.T) {
	f := NewInputField().WithInvalid(true).WithErrorMessage("Required")
	assert.Contains(t, f.ViewWithContext(ContextFor(ThemeDark)), "Required")
}

func TestParseInputVariantAndSize(t *testing.T) {
	v, ok := ParseInputVariant("filled")
	assert.True(t, ok)
	assert.Equal(t, InputVariantFilled, v)

	_, ok = ParseInputVariant("dashed")
	assert.False(t, ok)

	s, ok := ParseInputSize("lg")
	assert.True(t, ok)
	assert.Equal(t, InputSizeLarge, s)
	assert.Equal(t, "lg", s.String())

	_, ok = ParseInputSize("xl")
	assert.False(t, ok)
}
