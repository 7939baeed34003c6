package components

import (
	"strings"

	"github.com/alexisbeaulieu97/widgetkit/internal/validation"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputVariant selects the box treatment of an InputField.
type InputVariant int

const (
	InputVariantOutlined InputVariant = iota
	InputVariantFilled
	InputVariantGhost
)

// String returns the configuration name of the variant.
func (v InputVariant) String() string {
	switch v {
	case InputVariantFilled:
		return "filled"
	case InputVariantGhost:
		return "ghost"
	default:
		return "outlined"
	}
}

// ParseInputVariant maps filled, outlined or ghost onto an InputVariant. The
// empty string yields the outlined default.
func ParseInputVariant(name string) (InputVariant, bool) {
	switch name {
	case "", "outlined":
		return InputVariantOutlined, true
	case "filled":
		return InputVariantFilled, true
	case "ghost":
		return InputVariantGhost, true
	default:
		return InputVariantOutlined, false
	}
}

// InputSize selects the padding and width of an InputField.
type InputSize int

const (
	InputSizeMedium InputSize = iota
	InputSizeSmall
	InputSizeLarge
)

// String returns the configuration name of the size.
func (s InputSize) String() string {
	switch s {
	case InputSizeSmall:
		return "sm"
	case InputSizeLarge:
		return "lg"
	default:
		return "md"
	}
}

// ParseInputSize maps sm, md or lg onto an InputSize. The empty string
// yields the medium default.
func ParseInputSize(name string) (InputSize, bool) {
	switch name {
	case "", "md":
		return InputSizeMedium, true
	case "sm":
		return InputSizeSmall, true
	case "lg":
		return InputSizeLarge, true
	default:
		return InputSizeMedium, false
	}
}

func (s InputSize) metrics() (width, padY, padX int) {
	switch s {
	case InputSizeSmall:
		return 24, 0, 1
	case InputSizeLarge:
		return 40, 1, 2
	default:
		return 32, 0, 1
	}
}

const passwordMask = '•'

// InputField is a controlled single-line text input. The caller owns the
// value: edits are reported through the change callback and only show up
// once the caller echoes them back with SetValue.
type InputField struct {
	BaseComponent

	input   textinput.Model
	spinner spinner.Model

	value        string
	label        string
	helperText   string
	errorMessage string

	invalid        bool
	disabled       bool
	loading        bool
	clearable      bool
	passwordToggle bool
	revealed       bool

	variant InputVariant
	size    InputSize
	kind    validation.Kind

	localErr error
	onChange func(string)
}

// NewInputField creates an empty, outlined, medium plain-text input.
func NewInputField() *InputField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.EchoCharacter = passwordMask

	return &InputField{
		BaseComponent: NewBaseComponent(),
		input:         ti,
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		variant:       InputVariantOutlined,
		size:          InputSizeMedium,
		kind:          validation.KindPlain,
	}
}

// WithLabel sets the label rendered above the box.
func (f *InputField) WithLabel(label string) *InputField {
	f.label = label
	return f
}

// WithPlaceholder sets the text shown while the value is empty.
func (f *InputField) WithPlaceholder(placeholder string) *InputField {
	f.input.Placeholder = placeholder
	return f
}

// WithHelperText sets the muted text rendered under the box.
func (f *InputField) WithHelperText(text string) *InputField {
	f.helperText = text
	return f
}

// WithErrorMessage sets the caller-supplied error, shown only while the
// field is marked invalid and has no local validation error.
func (f *InputField) WithErrorMessage(message string) *InputField {
	f.errorMessage = message
	return f
}

// WithInvalid marks the field invalid from the outside.
func (f *InputField) WithInvalid(invalid bool) *InputField {
	f.invalid = invalid
	return f
}

// WithDisabled makes the field read-only and hides its actions.
func (f *InputField) WithDisabled(disabled bool) *InputField {
	f.disabled = disabled
	return f
}

// WithLoading shows a spinner and blocks input. Call Init afterwards to
// start the spinner when running under bubbletea.
func (f *InputField) WithLoading(loading bool) *InputField {
	f.loading = loading
	return f
}

// WithVariant sets the box treatment.
func (f *InputField) WithVariant(variant InputVariant) *InputField {
	f.variant = variant
	return f
}

// WithSize sets the padding and width.
func (f *InputField) WithSize(size InputSize) *InputField {
	f.size = size
	return f
}

// WithClearable enables the × clear action.
func (f *InputField) WithClearable(clearable bool) *InputField {
	f.clearable = clearable
	return f
}

// WithPasswordToggle enables the Show/Hide action on password fields.
func (f *InputField) WithPasswordToggle(enabled bool) *InputField {
	f.passwordToggle = enabled
	return f
}

// WithKind sets the validation kind. Password fields are masked until
// revealed.
func (f *InputField) WithKind(kind validation.Kind) *InputField {
	f.kind = kind
	f.revealed = false
	f.applyEchoMode()
	return f
}

// WithOnChange registers the change callback.
func (f *InputField) WithOnChange(fn func(string)) *InputField {
	f.onChange = fn
	return f
}

// SetValue is how the caller hands the authoritative value back.
func (f *InputField) SetValue(value string) *InputField {
	f.value = value
	if f.input.Value() != value {
		f.input.SetValue(value)
	}
	return f
}

// Value returns the value last set by the caller.
func (f *InputField) Value() string {
	return f.value
}

// Label returns the field label.
func (f *InputField) Label() string {
	return f.label
}

// Kind returns the validation kind.
func (f *InputField) Kind() validation.Kind {
	return f.kind
}

// Variant returns the box treatment.
func (f *InputField) Variant() InputVariant {
	return f.variant
}

// Size returns the field size.
func (f *InputField) Size() InputSize {
	return f.size
}

// Disabled reports whether the field rejects input and actions.
func (f *InputField) Disabled() bool {
	return f.disabled
}

// Loading reports whether the field shows its spinner.
func (f *InputField) Loading() bool {
	return f.loading
}

// Revealed reports whether a password field currently shows its text.
func (f *InputField) Revealed() bool {
	return f.revealed
}

// EchoMode exposes how the underlying text input renders characters.
func (f *InputField) EchoMode() textinput.EchoMode {
	return f.input.EchoMode
}

// LocalError returns the error from the last validation, nil when the last
// edit was valid.
func (f *InputField) LocalError() error {
	return f.localErr
}

// DisplayedError returns the message to show under the field. Local
// validation errors win over the caller-supplied message.
func (f *InputField) DisplayedError() string {
	if f.localErr != nil {
		return validation.Message(f.localErr)
	}
	if f.invalid {
		return f.errorMessage
	}
	return ""
}

// Invalid reports whether the field should render in its error state.
func (f *InputField) Invalid() bool {
	return f.invalid || f.localErr != nil
}

// ClearVisible reports whether the clear action is offered.
func (f *InputField) ClearVisible() bool {
	return f.clearable && f.value != "" && !f.disabled && !f.loading
}

// ToggleVisible reports whether the Show/Hide action is offered.
func (f *InputField) ToggleVisible() bool {
	return f.passwordToggle && f.kind == validation.KindPassword
}

// Clear drops the local error and reports an empty value to the caller.
// It does nothing while the clear action is hidden.
func (f *InputField) Clear() {
	if !f.ClearVisible() {
		return
	}
	f.localErr = nil
	if f.onChange != nil {
		f.onChange("")
	}
	f.syncInput()
}

// TogglePassword flips between masked and revealed text.
func (f *InputField) TogglePassword() {
	if !f.ToggleVisible() || f.disabled {
		return
	}
	f.revealed = !f.revealed
	f.applyEchoMode()
}

// Focus gives the field keyboard focus.
func (f *InputField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes keyboard focus.
func (f *InputField) Blur() {
	f.input.Blur()
}

// Focused reports whether the field has keyboard focus.
func (f *InputField) Focused() bool {
	return f.input.Focused()
}

// Init starts the spinner when the field is loading.
func (f *InputField) Init() tea.Cmd {
	if !f.loading {
		return nil
	}
	return f.spinner.Tick
}

// Update applies key messages to the text and advances the spinner. Key
// input is ignored while the field is disabled, loading or unfocused.
func (f *InputField) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.loading {
			return nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if f.disabled || f.loading || !f.input.Focused() {
			return nil
		}
		f.syncInput()
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		if next := f.input.Value(); next != f.value {
			f.change(next)
		}
		return cmd
	}
	return nil
}

func (f *InputField) change(next string) {
	f.localErr = validation.Validate(next, f.kind)
	if f.onChange != nil {
		f.onChange(next)
	}
	// Anything the caller did not echo back is rolled back.
	f.syncInput()
}

func (f *InputField) syncInput() {
	if f.input.Value() != f.value {
		f.input.SetValue(f.value)
	}
}

func (f *InputField) applyEchoMode() {
	if f.kind == validation.KindPassword && !f.revealed {
		f.input.EchoMode = textinput.EchoPassword
		return
	}
	f.input.EchoMode = textinput.EchoNormal
}

// View renders the field with the default theme.
func (f *InputField) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders label, box, helper text and error text.
func (f *InputField) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	sections := make([]string, 0, 4)

	if f.label != "" {
		sections = append(sections, LabelText(f.label).ViewWithContext(ctx))
	}
	sections = append(sections, f.renderBox(ctx))
	if f.helperText != "" {
		sections = append(sections, HelperText(f.helperText).ViewWithContext(ctx))
	}
	if msg := f.DisplayedError(); msg != "" {
		sections = append(sections, ErrorText(msg).ViewWithContext(ctx))
	}

	style := f.ComputeStyle(theme)
	if f.disabled {
		style = style.Inherit(theme.Input.Disabled)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (f *InputField) renderBox(ctx RenderContext) string {
	theme := ctx.Theme
	width, padY, padX := f.size.metrics()
	if ctx.Constraints.MaxWidth > 0 && width > ctx.Constraints.MaxWidth-2 {
		width = max(ctx.Constraints.MaxWidth-2, 8)
	}

	affordances := f.renderAffordances(theme)
	inner := width - 2*padX
	if affordances != "" {
		inner -= lipgloss.Width(affordances) + 1
	}

	ti := f.input
	ti.Width = max(inner-1, 1)
	ti.PlaceholderStyle = theme.Input.Placeholder
	ti.TextStyle = theme.Typography.Body
	content := lipgloss.NewStyle().Width(max(inner, 1)).Render(ti.View())
	if affordances != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Center, content, " ", affordances)
	}

	box := f.boxStyle(theme).Padding(padY, padX)
	return box.Render(content)
}

func (f *InputField) boxStyle(theme Theme) lipgloss.Style {
	var box lipgloss.Style
	switch f.variant {
	case InputVariantFilled:
		box = theme.Input.Filled
	case InputVariantGhost:
		box = theme.Input.Ghost
	default:
		box = theme.Input.Outlined
	}

	switch {
	case f.Invalid():
		box = box.BorderForeground(theme.Input.InvalidBorder)
	case f.input.Focused() && !f.disabled:
		box = box.BorderForeground(theme.Input.FocusBorder)
	}
	if f.disabled {
		box = box.Inherit(theme.Input.Disabled)
	}
	return box
}

func (f *InputField) renderAffordances(theme Theme) string {
	parts := make([]string, 0, 3)
	if f.loading {
		parts = append(parts, theme.Input.Spinner.Render(f.spinner.View()))
	}
	if f.ToggleVisible() {
		label := "Show"
		if f.revealed {
			label = "Hide"
		}
		style := theme.Input.Affordance
		if f.disabled {
			style = style.Inherit(theme.Input.Disabled)
		}
		parts = append(parts, style.Render(label))
	}
	if f.ClearVisible() {
		parts = append(parts, theme.Input.Affordance.Render("×"))
	}
	return strings.Join(parts, " ")
}
