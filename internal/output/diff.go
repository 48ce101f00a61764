package output

import (
	"strconv"
	"strings"
)

// DiffOp classifies a line in a line-oriented diff.
type DiffOp int

const (
	// DiffEqual marks a line present on both sides.
	DiffEqual DiffOp = iota
	// DiffInsert marks a line present only on the new side.
	DiffInsert
	// DiffDelete marks a line present only on the old side.
	DiffDelete
)

// DiffLine is one line of a line-oriented diff, without its trailing newline.
type DiffLine struct {
	Op   DiffOp
	Text string
}

// hunkSeparator is printed between non-adjacent groups of changed lines.
const hunkSeparator = "@@"

// RenderLineDiff renders lines as a unified-style diff with the given number
// of context lines around each change. oldLabel and newLabel name the two
// sides in the header. A negative context is treated as zero.
func RenderLineDiff(oldLabel, newLabel string, lines []DiffLine, context int) string {
	if !HasChanges(lines) {
		return "No changes detected.\n"
	}
	context = max(context, 0)

	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == DiffEqual {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}

	var sb strings.Builder
	sb.WriteString(StyleRemoved.Render("--- " + oldLabel))
	sb.WriteString("\n")
	sb.WriteString(StyleAdded.Render("+++ " + newLabel))
	sb.WriteString("\n")

	inHunk := false
	for i, l := range lines {
		if !keep[i] {
			inHunk = false
			continue
		}
		if !inHunk {
			sb.WriteString(StyleDim.Render(hunkSeparator))
			sb.WriteString("\n")
			inHunk = true
		}

		switch l.Op {
		case DiffInsert:
			sb.WriteString(StyleAdded.Render("+" + l.Text))
		case DiffDelete:
			sb.WriteString(StyleRemoved.Render("-" + l.Text))
		default:
			sb.WriteString(" " + l.Text)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// HasChanges reports whether any line is an insertion or deletion.
func HasChanges(lines []DiffLine) bool {
	for _, l := range lines {
		if l.Op != DiffEqual {
			return true
		}
	}
	return false
}

// DiffSummary returns a short "N added, M removed" summary.
func DiffSummary(lines []DiffLine) string {
	var added, removed int
	for _, l := range lines {
		switch l.Op {
		case DiffInsert:
			added++
		case DiffDelete:
			removed++
		}
	}
	if added == 0 && removed == 0 {
		return "no changes"
	}

	var parts []string
	if added > 0 {
		parts = append(parts, pluralLines(added)+" added")
	}
	if removed > 0 {
		parts = append(parts, pluralLines(removed)+" removed")
	}
	return strings.Join(parts, ", ")
}

func pluralLines(n int) string {
	if n == 1 {
		return "1 line"
	}
	return strconv.Itoa(n) + " lines"
}
