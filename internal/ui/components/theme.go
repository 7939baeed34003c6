package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ThemeMode selects between the light and dark colour schemes.
type ThemeMode int

const (
	ThemeLight ThemeMode = iota
	ThemeDark
)

// String returns the configuration name of the mode.
func (m ThemeMode) String() string {
	if m == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseThemeMode maps "light" or "dark" onto a ThemeMode. Anything else
// reports false and yields ThemeLight.
func ParseThemeMode(name string) (ThemeMode, bool) {
	switch name {
	case "light", "":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	default:
		return ThemeLight, false
	}
}

// ColourSet groups a base colour with the text colour that reads on top of
// it and a softer accent.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantRounded
	BorderVariantThick
	BorderVariantHidden
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Hidden  lipgloss.Border
}

type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantLabel
	TypographyVariantHelper
	TypographyVariantError
	TypographyVariantEmphasis
)

// TypographyScale contains the text presets used by the widgets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Helper   lipgloss.Style
	Error    lipgloss.Style
	Emphasis lipgloss.Style
}

// InputStyles holds the box styles for each input variant plus the state
// overlays applied on top of them.
type InputStyles struct {
	Filled   lipgloss.Style
	Outlined lipgloss.Style
	Ghost    lipgloss.Style

	FocusBorder   lipgloss.Color
	InvalidBorder lipgloss.Color
	Disabled      lipgloss.Style
	Placeholder   lipgloss.Style
	Affordance    lipgloss.Style
	Spinner       lipgloss.Style
}

// TableStyles holds the cell styles for the data grid.
type TableStyles struct {
	Border    lipgloss.Color
	Header    lipgloss.Style
	HeaderAlt lipgloss.Style
	Cell      lipgloss.Style
	Selected  lipgloss.Style
	Cursor    lipgloss.Style
	Indicator lipgloss.Style
	Loading   lipgloss.Style
	Empty     lipgloss.Style
}

// NavStyles holds the styles for the navigation bar.
type NavStyles struct {
	Bar      lipgloss.Style
	Brand    lipgloss.Style
	Item     lipgloss.Style
	Active   lipgloss.Style
	Toggle   lipgloss.Style
	Divider  lipgloss.Color
	HelpKeys lipgloss.Style
	HelpDesc lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of styles. Components read it from the
// RenderContext they are rendered with.
type Theme struct {
	Mode       ThemeMode
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Input      InputStyles
	Table      TableStyles
	Nav        NavStyles
	Variants   *VariantRegistry
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return LightTheme()
}

// ThemeFor returns the theme matching mode.
func ThemeFor(mode ThemeMode) Theme {
	if mode == ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// LightTheme mirrors the blue-on-white look of the web demo.
func LightTheme() Theme {
	return buildTheme(ThemeLight, Palette{
		Primary: ColourSet{Base: "#1d4ed8", OnBase: "#ffffff", Muted: "#dbeafe"},
		Surface: ColourSet{Base: "#ffffff", OnBase: "#1f2937", Muted: "#e5e7eb"},
		Success: ColourSet{Base: "#16a34a", OnBase: "#ffffff", Muted: "#dcfce7"},
		Danger:  ColourSet{Base: "#dc2626", OnBase: "#ffffff", Muted: "#fee2e2"},
		Info:    ColourSet{Base: "#3b82f6", OnBase: "#ffffff", Muted: "#bfdbfe"},
		Neutral: ColourSet{Base: "#6b7280", OnBase: "#ffffff", Muted: "#d1d5db"},
	})
}

// DarkTheme swaps the surfaces for the gray-900 scheme and lightens accents.
func DarkTheme() Theme {
	return buildTheme(ThemeDark, Palette{
		Primary: ColourSet{Base: "#93c5fd", OnBase: "#111827", Muted: "#1e3a8a"},
		Surface: ColourSet{Base: "#111827", OnBase: "#e5e7eb", Muted: "#374151"},
		Success: ColourSet{Base: "#4ade80", OnBase: "#052e16", Muted: "#14532d"},
		Danger:  ColourSet{Base: "#f87171", OnBase: "#450a0a", Muted: "#7f1d1d"},
		Info:    ColourSet{Base: "#60a5fa", OnBase: "#0b1120", Muted: "#1e40af"},
		Neutral: ColourSet{Base: "#9ca3af", OnBase: "#111827", Muted: "#4b5563"},
	})
}

func buildTheme(mode ThemeMode, p Palette) Theme {
	borders := BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Hidden:  lipgloss.HiddenBorder(),
	}

	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	typography := TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Label:    body.Bold(true).Foreground(p.Primary.Base),
		Helper:   body.Foreground(p.Neutral.Base),
		Error:    body.Foreground(p.Danger.Base),
		Emphasis: body.Bold(true),
	}

	box := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	input := InputStyles{
		Filled: box.
			BorderStyle(borders.Rounded).
			BorderForeground(p.Primary.Muted).
			Background(p.Surface.Muted),
		Outlined: box.
			BorderStyle(borders.Rounded).
			BorderForeground(p.Neutral.Muted),
		Ghost: box.
			BorderStyle(borders.Hidden),
		FocusBorder:   p.Primary.Base,
		InvalidBorder: p.Danger.Base,
		Disabled:      lipgloss.NewStyle().Faint(true),
		Placeholder:   lipgloss.NewStyle().Foreground(p.Neutral.Base),
		Affordance:    lipgloss.NewStyle().Foreground(p.Primary.Base).Bold(true),
		Spinner:       lipgloss.NewStyle().Foreground(p.Info.Base),
	}

	table := TableStyles{
		Border:    p.Primary.Muted,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base).Padding(0, 1),
		HeaderAlt: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.Primary.Base).Padding(0, 1),
		Cell:      body.Padding(0, 1),
		Selected:  body.Padding(0, 1).Background(p.Primary.Muted).Bold(true),
		Cursor:    body.Padding(0, 1).Reverse(true),
		Indicator: lipgloss.NewStyle().Foreground(p.Info.Base),
		Loading:   lipgloss.NewStyle().Foreground(p.Info.Base).Padding(1, 2),
		Empty:     lipgloss.NewStyle().Foreground(p.Neutral.Base).Italic(true).Padding(1, 2),
	}

	nav := NavStyles{
		Bar: lipgloss.NewStyle().
			BorderStyle(borders.Normal).
			BorderBottom(true).
			BorderForeground(p.Neutral.Muted).
			PaddingBottom(0),
		Brand:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base).PaddingRight(2),
		Item:     body.Padding(0, 1),
		Active:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base).Background(p.Primary.Muted).Padding(0, 1),
		Toggle:   body.Padding(0, 1).Background(p.Surface.Muted),
		Divider:  p.Neutral.Muted,
		HelpKeys: lipgloss.NewStyle().Foreground(p.Primary.Base),
		HelpDesc: lipgloss.NewStyle().Foreground(p.Neutral.Base),
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)

	return Theme{
		Mode:       mode,
		Palette:    p,
		Borders:    borders,
		Typography: typography,
		Input:      input,
		Table:      table,
		Nav:        nav,
		Variants:   variants,
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(1),
	))
	registry.Register(ButtonVariantMuted, NewCompositeStrategy(
		Background(PaletteNeutral),
		PaddingX(1),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Foreground(PalettePrimary),
		PaddingX(1),
	))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantDefault, NewCompositeStrategy(
		Background(PaletteNeutral),
		PaddingX(1),
	))
	registry.Register(BadgeVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(1),
	))
	registry.Register(BadgeVariantInfo, NewCompositeStrategy(
		Background(PaletteInfo),
		PaddingX(1),
	))
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantHidden:
		return theme.Borders.Hidden
	default:
		return theme.Borders.Normal
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantHelper:
		return typo.Helper
	case TypographyVariantError:
		return typo.Error
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography applies a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
