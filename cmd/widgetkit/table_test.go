package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	widgeterrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

func firstColumn(out string) []string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines[1:] {
		names = append(names, strings.Fields(line)[0])
	}
	return names
}

func TestTableCommandSortOrders(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "insertion order",
			args: []string{"table"},
			want: []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank"},
		},
		{
			name: "age ascending",
			args: []string{"table", "--sort", "age"},
			want: []string{"Charlie", "Alice", "Frank", "Diana", "Bob", "Eve"},
		},
		{
			name: "name descending",
			args: []string{"table", "--sort", "name", "--desc"},
			want: []string{"Frank", "Eve", "Diana", "Charlie", "Bob", "Alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "NAME"))
			assert.Equal(t, tt.want, firstColumn(out))
		})
	}
}

func TestTableCommandRejectsBadSort(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown column", args: []string{"table", "--sort", "email"}, want: `unknown column "email"`},
		{name: "desc without sort", args: []string{"table", "--desc"}, want: "--desc requires --sort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)

			var usage *widgeterrors.UsageError
			require.ErrorAs(t, err, &usage)
			assert.Contains(t, usage.Message, tt.want)
		})
	}
}

func TestTableCommandUnsortableColumn(t *testing.T) {
	path := writeConfig(t, `
table:
  columns:
    - {key: name, title: Name, data_index: name}
  rows:
    - {name: Zed}
`)

	_, _, err := execute(t, "--config", path, "table", "--sort", "name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not sortable")
}

func TestTableCommandJSON(t *testing.T) {
	out, _, err := execute(t, "table", "--sort", "age", "--desc", "--json")
	require.NoError(t, err)

	var payload tableJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	assert.Equal(t, 6, payload.Count)
	require.NotNil(t, payload.Sort)
	assert.Equal(t, "age", payload.Sort.Key)
	assert.False(t, payload.Sort.Ascending)
	require.Len(t, payload.Columns, 2)
	assert.Equal(t, "Eve", payload.Rows[0]["name"])
	assert.Equal(t, "35", payload.Rows[0]["age"])
}

func TestTableCommandConfiguredRows(t *testing.T) {
	path := writeConfig(t, `
table:
  loading: true
  columns:
    - {key: city, title: City, data_index: city, sortable: true}
    - {key: pop, title: Population, data_index: pop, sortable: true}
    - {key: country, title: Country, data_index: country}
  rows:
    - {city: Oslo, pop: 700000}
    - {city: Bergen, pop: 285000}
`)

	out, _, err := execute(t, "--config", path, "table", "--sort", "pop")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"CITY", "POPULATION", "COUNTRY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Bergen", "285000"}, strings.Fields(lines[1]), "missing values render empty")
	assert.Equal(t, []string{"Oslo", "700000"}, strings.Fields(lines[2]))
}
