package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetkit/internal/ui"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

// View renders the nav bar, the active view and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.renderContext()
	h := m.help
	h.Styles.ShortKey = ctx.Theme.Nav.HelpKeys
	h.Styles.ShortDesc = ctx.Theme.Nav.HelpDesc
	h.Styles.ShortSeparator = ctx.Theme.Nav.HelpDesc
	footer := footerStyle.Render(h.View(m.keys.helpFor(m.nav.Active(), m.table.KeyMap())))

	return lipgloss.JoinVertical(lipgloss.Left, m.render(ctx), footer)
}

// Snapshot renders the shell without key help, for non-interactive output.
func (m Model) Snapshot(width int) string {
	m.width = width
	return m.render(m.renderContext())
}

func (m Model) render(ctx components.RenderContext) string {
	header := m.nav.ViewWithContext(ctx)

	bodyCtx := ctx.WithConstraints(components.WithMaxWidth(m.bodyWidth()))
	var body string
	if m.nav.Active() == components.NavViewTable {
		body = m.renderTable(bodyCtx)
	} else {
		body = m.renderInputs(bodyCtx)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body))
}

func (m Model) renderContext() components.RenderContext {
	return components.ContextFor(m.nav.Theme()).WithParentWidth(m.width)
}

func (m Model) bodyWidth() int {
	if m.width <= 0 {
		return maxBodyWidth
	}
	return max(min(m.width-bodyStyle.GetHorizontalFrameSize(), maxBodyWidth), minBodyWidth)
}

func (m Model) renderInputs(ctx components.RenderContext) string {
	if len(m.fields) == 0 {
		return components.HelperText("No fields configured.").ViewWithContext(ctx)
	}
	children := make([]ui.Renderable, 0, len(m.fields))
	for _, f := range m.fields {
		children = append(children, f)
	}
	return components.VStack(children...).WithGap(1).ViewWithContext(ctx)
}

func (m Model) renderTable(ctx components.RenderContext) string {
	grid := m.table.ViewWithContext(ctx)
	if m.table.State() != components.TableStateReady {
		return grid
	}

	status := []ui.Renderable{}
	if m.table.Selectable() != components.SelectNone {
		status = append(status, components.PrimaryBadge(fmt.Sprintf("%d selected", len(m.table.SelectedRows()))))
	}
	if key := m.table.SortKey(); key != "" {
		dir := "asc"
		if !m.table.SortAscending() {
			dir = "desc"
		}
		status = append(status, components.InfoBadge(fmt.Sprintf("sorted by %s %s", key, dir)))
	}
	if len(status) == 0 {
		return grid
	}

	bar := components.HStack(status...).WithGap(1).ViewWithContext(ctx)
	return lipgloss.JoinVertical(lipgloss.Left, grid, statusStyle.Render(bar))
}
