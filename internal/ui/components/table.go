package components

import (
	"fmt"
	"slices"

	"github.com/alexisbeaulieu97/widgetkit/internal/rowsort"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Row is anything the table can read cells from.
type Row interface {
	Field(dataIndex string) (any, bool)
}

// Record is a map-backed Row.
type Record map[string]any

// Field returns the value stored under dataIndex.
func (r Record) Field(dataIndex string) (any, bool) {
	v, ok := r[dataIndex]
	return v, ok
}

// Column describes one table column. DataIndex names the row field the
// column reads and sorts by; Key identifies the column itself.
type Column struct {
	Key       string
	Title     string
	DataIndex string
	Sortable  bool
}

// SelectionMode controls how rows can be selected.
type SelectionMode int

const (
	SelectNone SelectionMode = iota
	SelectSingle
	SelectMultiple
)

func (m SelectionMode) String() string {
	switch m {
	case SelectSingle:
		return "single"
	case SelectMultiple:
		return "multiple"
	default:
		return "none"
	}
}

// ParseSelectionMode maps none, single or multiple onto a SelectionMode.
// The empty string means none.
func ParseSelectionMode(name string) (SelectionMode, bool) {
	switch name {
	case "", "none":
		return SelectNone, true
	case "single":
		return SelectSingle, true
	case "multiple":
		return SelectMultiple, true
	default:
		return SelectNone, false
	}
}

// TableState is the render state of a DataTable, in priority order.
type TableState int

const (
	TableStateLoading TableState = iota
	TableStateEmpty
	TableStateReady
)

func (s TableState) String() string {
	switch s {
	case TableStateLoading:
		return "loading"
	case TableStateEmpty:
		return "empty"
	default:
		return "ready"
	}
}

const (
	loadingText = "Loading..."
	emptyText   = "No data available."
	sortAscMark = "▲"
	sortDscMark = "▼"
)

// DefaultRows returns the demo dataset used when a table has no rows.
func DefaultRows() []Record {
	return []Record{
		{"name": "Alice", "age": 25},
		{"name": "Bob", "age": 30},
		{"name": "Charlie", "age": 22},
		{"name": "Diana", "age": 28},
		{"name": "Eve", "age": 35},
		{"name": "Frank", "age": 27},
	}
}

// DefaultColumns returns the Name/Age columns used when a table has none.
func DefaultColumns() []Column {
	return []Column{
		{Key: "name", Title: "Name", DataIndex: "name", Sortable: true},
		{Key: "age", Title: "Age", DataIndex: "age", Sortable: true},
	}
}

// TableKeyMap holds the key bindings of a DataTable.
type TableKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Sort   key.Binding
	Select key.Binding
}

// DefaultTableKeyMap returns the arrow/enter/space bindings.
func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "row down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		Sort: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "sort column"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select row"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k TableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Select}
}

// FullHelp implements help.KeyMap.
func (k TableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Sort, k.Select}}
}

// DataTable renders rows of T as a sortable, optionally selectable grid.
//
// Selection is positional: indices refer to rows in the current display
// order and are not moved when the sort changes.
type DataTable[T Row] struct {
	BaseComponent

	rows    []T
	columns []Column

	loading     bool
	mode        SelectionMode
	onRowSelect func([]T)

	sortKey string
	sortAsc bool

	selected  []int
	cursorRow int
	cursorCol int
	focused   bool

	spinner spinner.Model
	keys    TableKeyMap
}

// NewDataTable creates a table over rows and columns. Empty inputs fall back
// to DefaultRows and DefaultColumns.
func NewDataTable[T Row](rows []T, columns []Column) *DataTable[T] {
	return &DataTable[T]{
		BaseComponent: NewBaseComponent(),
		rows:          rows,
		columns:       columns,
		sortAsc:       true,
		spinner:       spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		keys:          DefaultTableKeyMap(),
	}
}

// WithLoading toggles the loading state. Call Init to start the spinner.
func (t *DataTable[T]) WithLoading(loading bool) *DataTable[T] {
	t.loading = loading
	return t
}

// WithSelectable sets the selection mode.
func (t *DataTable[T]) WithSelectable(mode SelectionMode) *DataTable[T] {
	t.mode = mode
	return t
}

// WithOnRowSelect registers the selection callback.
func (t *DataTable[T]) WithOnRowSelect(fn func([]T)) *DataTable[T] {
	t.onRowSelect = fn
	return t
}

// WithKeyMap replaces the key bindings.
func (t *DataTable[T]) WithKeyMap(keys TableKeyMap) *DataTable[T] {
	t.keys = keys
	return t
}

// SetRows replaces the rows. Selection indices are kept as they are.
func (t *DataTable[T]) SetRows(rows []T) {
	t.rows = rows
	t.clampCursor()
}

// SetColumns replaces the columns.
func (t *DataTable[T]) SetColumns(columns []Column) {
	t.columns = columns
	t.clampCursor()
}

// Loading reports whether the table is in its loading state.
func (t *DataTable[T]) Loading() bool {
	return t.loading
}

// Selectable returns the selection mode.
func (t *DataTable[T]) Selectable() SelectionMode {
	return t.mode
}

// KeyMap returns the key bindings, for help rendering.
func (t *DataTable[T]) KeyMap() TableKeyMap {
	return t.keys
}

// SortKey returns the DataIndex currently sorted by, or "".
func (t *DataTable[T]) SortKey() string {
	return t.sortKey
}

// SortAscending reports the sort direction.
func (t *DataTable[T]) SortAscending() bool {
	return t.sortAsc
}

// SelectedIndices returns the selected positions in click order.
func (t *DataTable[T]) SelectedIndices() []int {
	return slices.Clone(t.selected)
}

// IsSelected reports whether the row at display position i is selected.
func (t *DataTable[T]) IsSelected(i int) bool {
	return slices.Contains(t.selected, i)
}

// Cursor returns the focused row and column.
func (t *DataTable[T]) Cursor() (row, col int) {
	return t.cursorRow, t.cursorCol
}

// Columns returns the resolved columns.
func (t *DataTable[T]) Columns() []Column {
	if len(t.columns) > 0 {
		return slices.Clone(t.columns)
	}
	return DefaultColumns()
}

// Rows returns the resolved rows in their original order.
func (t *DataTable[T]) Rows() []T {
	if len(t.rows) > 0 {
		return t.rows
	}
	return fallbackRows[T]()
}

// fallbackRows converts the demo dataset to T. It returns nil when T cannot
// hold a Record.
func fallbackRows[T Row]() []T {
	defaults := DefaultRows()
	out := make([]T, 0, len(defaults))
	for _, rec := range defaults {
		row, ok := any(rec).(T)
		if !ok {
			return nil
		}
		out = append(out, row)
	}
	return out
}

// SortedRows returns the rows in display order.
func (t *DataTable[T]) SortedRows() []T {
	rows := t.Rows()
	if t.sortKey == "" {
		return slices.Clone(rows)
	}
	field := t.sortKey
	return rowsort.Sort(rows, func(r T) any {
		v, _ := r.Field(field)
		return v
	}, t.sortAsc)
}

// SelectedRows resolves the selection against the current display order.
// Indices past the end are skipped.
func (t *DataTable[T]) SelectedRows() []T {
	return t.resolveSelection(t.SortedRows())
}

func (t *DataTable[T]) resolveSelection(sorted []T) []T {
	out := make([]T, 0, len(t.selected))
	for _, idx := range t.selected {
		if idx >= 0 && idx < len(sorted) {
			out = append(out, sorted[idx])
		}
	}
	return out
}

// State returns the current render state.
func (t *DataTable[T]) State() TableState {
	switch {
	case t.loading:
		return TableStateLoading
	case len(t.Rows()) == 0:
		return TableStateEmpty
	default:
		return TableStateReady
	}
}

// ClickHeader sorts by column col. A new column sorts ascending; the same
// column again flips the direction. Non-sortable or out-of-range columns
// are ignored.
func (t *DataTable[T]) ClickHeader(col int) {
	if t.loading {
		return
	}
	columns := t.Columns()
	if col < 0 || col >= len(columns) || !columns[col].Sortable {
		return
	}
	c := columns[col]
	if t.sortKey == c.DataIndex {
		t.sortAsc = !t.sortAsc
		return
	}
	t.sortKey = c.DataIndex
	t.sortAsc = true
}

// ClickRow toggles the row at display position i and reports the new
// selection.
func (t *DataTable[T]) ClickRow(i int) {
	if t.mode == SelectNone || t.loading {
		return
	}
	sorted := t.SortedRows()
	if i < 0 || i >= len(sorted) {
		return
	}

	switch t.mode {
	case SelectMultiple:
		if pos := slices.Index(t.selected, i); pos >= 0 {
			t.selected = slices.Delete(slices.Clone(t.selected), pos, pos+1)
		} else {
			t.selected = append(slices.Clone(t.selected), i)
		}
	default:
		if len(t.selected) > 0 && t.selected[0] == i {
			t.selected = nil
		} else {
			t.selected = []int{i}
		}
	}

	if t.onRowSelect != nil {
		t.onRowSelect(t.resolveSelection(sorted))
	}
}

// Focus enables the cursor highlight.
func (t *DataTable[T]) Focus() {
	t.focused = true
}

// Blur hides the cursor highlight.
func (t *DataTable[T]) Blur() {
	t.focused = false
}

// Focused reports whether the table has keyboard focus.
func (t *DataTable[T]) Focused() bool {
	return t.focused
}

// Init starts the spinner when the table is loading.
func (t *DataTable[T]) Init() tea.Cmd {
	if !t.loading {
		return nil
	}
	return t.spinner.Tick
}

// Update moves the cursor and maps enter/space onto header and row clicks.
func (t *DataTable[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !t.loading {
			return nil
		}
		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if t.loading {
			return nil
		}
		switch {
		case key.Matches(msg, t.keys.Up):
			t.cursorRow--
		case key.Matches(msg, t.keys.Down):
			t.cursorRow++
		case key.Matches(msg, t.keys.Left):
			t.cursorCol--
		case key.Matches(msg, t.keys.Right):
			t.cursorCol++
		case key.Matches(msg, t.keys.Sort):
			t.ClickHeader(t.cursorCol)
		case key.Matches(msg, t.keys.Select):
			t.ClickRow(t.cursorRow)
		}
		t.clampCursor()
	}
	return nil
}

func (t *DataTable[T]) clampCursor() {
	t.cursorRow = clamp(t.cursorRow, 0, len(t.Rows())-1)
	t.cursorCol = clamp(t.cursorCol, 0, len(t.Columns())-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// View renders the table with the default theme.
func (t *DataTable[T]) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the loading, empty or grid state.
func (t *DataTable[T]) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := t.ComputeStyle(theme)

	switch t.State() {
	case TableStateLoading:
		return style.Render(theme.Table.Loading.Render(t.spinner.View() + " " + loadingText))
	case TableStateEmpty:
		return style.Render(theme.Table.Empty.Render(emptyText))
	}

	columns := t.Columns()
	sorted := t.SortedRows()
	offset := 0
	if t.mode != SelectNone {
		offset = 1
	}

	headers := make([]string, 0, len(columns)+offset)
	if offset == 1 {
		headers = append(headers, "")
	}
	for _, c := range columns {
		headers = append(headers, t.headerLabel(c))
	}

	rows := make([][]string, 0, len(sorted))
	for i, r := range sorted {
		cells := make([]string, 0, len(columns)+offset)
		if offset == 1 {
			cells = append(cells, t.marker(i))
		}
		for _, c := range columns {
			cells = append(cells, formatCell(r.Field(c.DataIndex)))
		}
		rows = append(rows, cells)
	}

	grid := table.New().
		Border(theme.Borders.Rounded).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Table.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return t.cellStyle(theme, row, col-offset)
		})

	return style.Render(grid.Render())
}

func (t *DataTable[T]) headerLabel(c Column) string {
	if !c.Sortable || t.sortKey == "" || t.sortKey != c.DataIndex {
		return c.Title
	}
	if t.sortAsc {
		return c.Title + " " + sortAscMark
	}
	return c.Title + " " + sortDscMark
}

func (t *DataTable[T]) marker(i int) string {
	selected := t.IsSelected(i)
	if t.mode == SelectMultiple {
		if selected {
			return "[x]"
		}
		return "[ ]"
	}
	if selected {
		return "(•)"
	}
	return "( )"
}

func (t *DataTable[T]) cellStyle(theme Theme, row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		if t.focused && col == t.cursorCol {
			return theme.Table.HeaderAlt
		}
		return theme.Table.Header
	}
	switch {
	case t.focused && row == t.cursorRow:
		return theme.Table.Cursor
	case t.mode != SelectNone && t.IsSelected(row):
		return theme.Table.Selected
	default:
		return theme.Table.Cell
	}
}

func formatCell(v any, ok bool) string {
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
