// Package components provides theme-aware terminal widgets built on
// lipgloss and the bubbles primitives.
//
// # Theme
//
// Themes are immutable values passed explicitly through a RenderContext:
//
//	ctx := components.ContextFor(components.ThemeDark)
//	out := field.ViewWithContext(ctx)
//
// View() renders with the light theme.
//
// # Widgets
//
// Interactive widgets:
//   - InputField: controlled text input with validation, clear and
//     password reveal actions, loading and disabled states
//   - DataTable: generic grid with column sorting and none/single/multiple
//     row selection
//   - NavBar: view switcher with a light/dark toggle
//
// Interactive widgets follow the bubbletea shape without being tea.Models
// themselves: Update(tea.Msg) tea.Cmd mutates the widget in place and
// Init starts the loading spinner. State that belongs to the caller, such
// as an input's value, is reported through callbacks.
//
// Primitives used to compose them:
//   - Text, Button, Badge, Divider
//   - Stack: vertical or horizontal arrangement with gaps
//
// # Style modifiers
//
// Primitives accept theme-aware StyleFuncs through WithAppliers:
//
//	NewText("Saved").WithAppliers(Foreground(PaletteSuccess))
//
// Available modifiers are Background, Foreground, Border, PaddingX and
// Typography.
package components
