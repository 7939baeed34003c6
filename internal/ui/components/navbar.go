package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NavView identifies a page of the demo shell.
type NavView int

const (
	NavViewInput NavView = iota
	NavViewTable
)

// String returns the configuration name of the view.
func (v NavView) String() string {
	if v == NavViewTable {
		return "table"
	}
	return "input"
}

// Title returns the nav button label for the view.
func (v NavView) Title() string {
	if v == NavViewTable {
		return "Data Table"
	}
	return "Input Field"
}

// ParseNavView maps input or table onto a NavView. The empty string means
// input.
func ParseNavView(name string) (NavView, bool) {
	switch name {
	case "", "input":
		return NavViewInput, true
	case "table":
		return NavViewTable, true
	default:
		return NavViewInput, false
	}
}

const defaultNavTitle = "Demo App"

// NavBar renders the app title, one button per view and a theme toggle.
// It keeps the active view and theme mode; callers observe changes through
// the callbacks.
type NavBar struct {
	BaseComponent
	title         string
	active        NavView
	theme         ThemeMode
	onSelect      func(NavView)
	onThemeToggle func(ThemeMode)
}

// NewNavBar creates a nav bar on the input view in light mode.
func NewNavBar() *NavBar {
	return &NavBar{
		BaseComponent: NewBaseComponent(),
		title:         defaultNavTitle,
	}
}

// WithTitle replaces the brand text.
func (n *NavBar) WithTitle(title string) *NavBar {
	n.title = title
	return n
}

// WithActive sets the initial view without firing OnSelect.
func (n *NavBar) WithActive(view NavView) *NavBar {
	n.active = view
	return n
}

// WithTheme sets the initial theme mode without firing OnThemeToggle.
func (n *NavBar) WithTheme(mode ThemeMode) *NavBar {
	n.theme = mode
	return n
}

// WithOnSelect registers the view change callback.
func (n *NavBar) WithOnSelect(fn func(NavView)) *NavBar {
	n.onSelect = fn
	return n
}

// WithOnThemeToggle registers the theme change callback.
func (n *NavBar) WithOnThemeToggle(fn func(ThemeMode)) *NavBar {
	n.onThemeToggle = fn
	return n
}

// Title returns the brand text.
func (n *NavBar) Title() string {
	return n.title
}

// Active returns the active view.
func (n *NavBar) Active() NavView {
	return n.active
}

// Theme returns the current theme mode.
func (n *NavBar) Theme() ThemeMode {
	return n.theme
}

// SetActive switches to view and notifies OnSelect.
func (n *NavBar) SetActive(view NavView) {
	n.active = view
	if n.onSelect != nil {
		n.onSelect(view)
	}
}

// ToggleTheme flips the theme mode and notifies OnThemeToggle.
func (n *NavBar) ToggleTheme() {
	n.theme = n.theme.Toggle()
	if n.onThemeToggle != nil {
		n.onThemeToggle(n.theme)
	}
}

// ToggleLabel is the text of the theme button: the mode it switches to.
func (n *NavBar) ToggleLabel() string {
	if n.theme == ThemeDark {
		return "☾ Light"
	}
	return "☀ Dark"
}

// View renders the nav bar with the default theme.
func (n *NavBar) View() string {
	return n.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the nav bar. With a known width the theme toggle
// is pushed to the right edge.
func (n *NavBar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	items := []string{theme.Nav.Brand.Render(n.title)}
	for _, view := range []NavView{NavViewInput, NavViewTable} {
		items = append(items, n.viewButton(view).ViewWithContext(ctx))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Center, items...)
	toggle := NewButton(n.ToggleLabel()).
		WithVariant(ButtonVariantMuted).
		WithStyle(theme.Nav.Toggle).
		ViewWithContext(ctx)

	width := ctx.ParentWidth
	if ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}
	gap := 2
	if width > 0 {
		gap = max(width-lipgloss.Width(left)-lipgloss.Width(toggle), 1)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), toggle)
	return n.ComputeStyle(theme).Inherit(theme.Nav.Bar).Render(bar)
}

func (n *NavBar) viewButton(view NavView) *Button {
	if view == n.active {
		return NewButton(view.Title()).
			WithVariant(ButtonVariantPrimary).
			WithActive(true)
	}
	return NewButton(view.Title()).WithVariant(ButtonVariantGhost)
}
