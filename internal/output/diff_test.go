package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderLineDiff_NoChanges(t *testing.T) {
	lines := []DiffLine{{Op: DiffEqual, Text: "a"}, {Op: DiffEqual, Text: "b"}}

	assert.Equal(t, "No changes detected.\n", RenderLineDiff("old", "new", lines, 3))
	assert.False(t, HasChanges(lines))
}

func TestRenderLineDiff_Prefixes(t *testing.T) {
	lines := []DiffLine{
		{Op: DiffEqual, Text: "keep"},
		{Op: DiffDelete, Text: `LICENSE = "MIT"`},
		{Op: DiffInsert, Text: `LICENSE = "GPL-2.0-only"`},
	}

	out := RenderLineDiff("on disk", "generated", lines, 3)

	assert.Contains(t, out, "--- on disk\n")
	assert.Contains(t, out, "+++ generated\n")
	assert.Contains(t, out, " keep\n")
	assert.Contains(t, out, "-LICENSE = \"MIT\"\n")
	assert.Contains(t, out, "+LICENSE = \"GPL-2.0-only\"\n")
}

func TestRenderLineDiff_TrimsContext(t *testing.T) {
	var lines []DiffLine
	for i := 0; i < 10; i++ {
		lines = append(lines, DiffLine{Op: DiffEqual, Text: "ctx" + string(rune('0'+i))})
	}
	lines = append(lines, DiffLine{Op: DiffInsert, Text: "new"})
	for i := 0; i < 10; i++ {
		lines = append(lines, DiffLine{Op: DiffEqual, Text: "tail" + string(rune('0'+i))})
	}
	lines = append(lines, DiffLine{Op: DiffDelete, Text: "gone"})

	out := RenderLineDiff("a", "b", lines, 1)

	assert.NotContains(t, out, "ctx0")
	assert.Contains(t, out, " ctx9\n")
	assert.Contains(t, out, "+new\n")
	assert.Contains(t, out, " tail0\n")
	assert.NotContains(t, out, "tail5")
	assert.Contains(t, out, " tail9\n")
	assert.Contains(t, out, "-gone\n")
	assert.Equal(t, 2, strings.Count(out, hunkSeparator+"\n"))
}

func TestRenderLineDiff_NegativeContextShowsChanges(t *testing.T) {
	lines := []DiffLine{
		{Op: DiffEqual, Text: "keep"},
		{Op: DiffDelete, Text: "old"},
		{Op: DiffInsert, Text: "new"},
	}

	out := RenderLineDiff("a", "b", lines, -1)

	assert.Equal(t, RenderLineDiff("a", "b", lines, 0), out)
	assert.Contains(t, out, "-old\n")
	assert.Contains(t, out, "+new\n")
	assert.NotContains(t, out, " keep")
}

func TestDiffSummary(t *testing.T) {
	tests := []struct {
		name  string
		lines []DiffLine
		want  string
	}{
		{"no changes", []DiffLine{{Op: DiffEqual, Text: "x"}}, "no changes"},
		{"one added", []DiffLine{{Op: DiffInsert, Text: "x"}}, "1 line added"},
		{
			"added and removed",
			[]DiffLine{
				{Op: DiffInsert, Text: "a"},
				{Op: DiffInsert, Text: "b"},
				{Op: DiffDelete, Text: "c"},
			},
			"2 lines added, 1 line removed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiffSummary(tt.lines))
		})
	}
}
