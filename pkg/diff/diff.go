// Package diff renders line-oriented differences between two text snapshots.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified compares old and new line by line and returns the result in unified
// format under a single hunk. It returns "" when the inputs are identical.
func Unified(old, new []byte, oldLabel, newLabel string) string {
	if bytes.Equal(old, new) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(old), string(new))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var body strings.Builder
	oldCount, newCount := 0, 0
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			body.WriteString(prefix)
			body.WriteString(line)
			body.WriteString("\n")
			if d.Type != diffmatchpatch.DiffInsert {
				oldCount++
			}
			if d.Type != diffmatchpatch.DiffDelete {
				newCount++
			}
		}
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", oldLabel, newLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", oldCount, newCount)
	buf.WriteString(body.String())

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// splitLines splits text into lines, dropping the empty element that follows
// a trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
