package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Unified("a\nb\n", "a\nb\n", "expected", "actual"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	result := Unified("line1\nline2\nline3\n", "line1\nmodified\nline3\n", "golden", "rendered")

	assert.Equal(t, strings.Join([]string{
		"--- golden",
		"+++ rendered",
		"@@ -1,3 +1,3 @@",
		" line1",
		"-line2",
		"+modified",
		" line3",
		"",
	}, "\n"), result)
}

func TestUnifiedKeepsWholeLines(t *testing.T) {
	t.Parallel()

	result := Unified("│ Alice │ 25 │\n", "│ Alice │ 26 │\n", "a", "b")

	assert.Contains(t, result, "-│ Alice │ 25 │\n")
	assert.Contains(t, result, "+│ Alice │ 26 │\n")
}

func TestUnifiedAddedAndRemovedTail(t *testing.T) {
	t.Parallel()

	added := Unified("one\n", "one\ntwo\n", "a", "b")
	assert.Contains(t, added, "@@ -1,1 +1,2 @@")
	assert.Contains(t, added, "+two\n")

	removed := Unified("one\ntwo\n", "one\n", "a", "b")
	assert.Contains(t, removed, "-two\n")
}

func TestUnifiedEmptySides(t *testing.T) {
	t.Parallel()

	result := Unified("", "new\n", "a", "b")
	assert.Contains(t, result, "@@ -1,0 +1,1 @@")
	assert.Contains(t, result, "+new\n")
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var expected, actual strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		expected.WriteString("old\n")
		actual.WriteString("new\n")
	}

	result := Unified(expected.String(), actual.String(), "a", "b")

	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	require.Len(t, lines, maxDiffLines+1)
	assert.Equal(t, truncateMessage, lines[len(lines)-1])
}
