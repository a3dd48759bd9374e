// Package listblock finds the bounds of the markdown list block around a
// cursor line in plain-text source. It implements loose-list semantics:
// blank lines between list items belong to the block, blank lines at its
// edges do not.
package listblock

import (
	"regexp"
	"strings"
)

// LineRange is an inclusive range of line indices (zero-based).
type LineRange struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

var (
	bulletPattern  = regexp.MustCompile(`^\s*[-*+]\s+\S`)
	orderedPattern = regexp.MustCompile(`^\s*\d{1,9}[.)]\s+\S`)
	taskPattern    = regexp.MustCompile(`^\s*[-*+]\s+\[[ xX]\]\s`)
	// Horizontal rules are lexically close to bullet markers ("- - -",
	// "***") and must never count as list lines.
	hrPattern = regexp.MustCompile(`^\s*((-\s*){3,}|(\*\s*){3,}|(_\s*){3,})$`)
)

// IsListLine reports whether the line carries a bullet, ordered, or task
// marker. Indentation depth is irrelevant: nested items are list lines
// like any other.
func IsListLine(line string) bool {
	if hrPattern.MatchString(line) {
		return false
	}
	return bulletPattern.MatchString(line) ||
		orderedPattern.MatchString(line) ||
		taskPattern.MatchString(line)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Bounds returns the bounds of the contiguous list block containing the
// cursor line, or nil when that line is not a list line. Blank lines are
// bridged only when another list line exists on the far side of the
// blank run (loose lists); continuation lines of an item (non-blank,
// non-list text directly under an item) stay inside the block the same
// way. Leading and trailing blank lines are trimmed from the result.
func Bounds(text string, cursorLine int) *LineRange {
	lines := strings.Split(text, "\n")
	if cursorLine < 0 || cursorLine >= len(lines) {
		return nil
	}
	if !IsListLine(lines[cursorLine]) {
		return nil
	}

	start := cursorLine
	for i := cursorLine - 1; i >= 0; i-- {
		if belongsToBlock(lines, i, -1) {
			start = i
			continue
		}
		break
	}

	end := cursorLine
	for i := cursorLine + 1; i < len(lines); i++ {
		if belongsToBlock(lines, i, 1) {
			end = i
			continue
		}
		break
	}

	for start < cursorLine && isBlank(lines[start]) {
		start++
	}
	for end > cursorLine && isBlank(lines[end]) {
		end--
	}
	return &LineRange{Start: start, End: end}
}

// belongsToBlock decides whether line i extends the block while scanning
// in the given direction. List lines and continuation text always do;
// a blank run does only if a list line sits on its far side.
func belongsToBlock(lines []string, i, dir int) bool {
	line := lines[i]
	if IsListLine(line) {
		return true
	}
	// A horizontal rule terminates the block even directly under an
	// item, where plain text would count as lazy continuation.
	if hrPattern.MatchString(line) {
		return false
	}
	if !isBlank(line) {
		// Continuation text attaches to an item whose marker line sits
		// above it with no blank gap; otherwise it is an ordinary
		// paragraph and ends the block.
		for j := i - 1; j >= 0; j-- {
			if isBlank(lines[j]) {
				return false
			}
			if IsListLine(lines[j]) {
				return true
			}
		}
		return false
	}
	// Blank line: look past the blank run for a list line.
	for j := i + dir; j >= 0 && j < len(lines); j += dir {
		if isBlank(lines[j]) {
			continue
		}
		return IsListLine(lines[j])
	}
	return false
}

// OffsetBounds converts line bounds into [from, to) byte offsets within
// text. It returns nil when Bounds does.
func OffsetBounds(text string, cursorLine int) *[2]int {
	lr := Bounds(text, cursorLine)
	if lr == nil {
		return nil
	}
	lines := strings.Split(text, "\n")
	from := 0
	for i := 0; i < lr.Start; i++ {
		from += len(lines[i]) + 1
	}
	to := from
	for i := lr.Start; i <= lr.End; i++ {
		to += len(lines[i])
		if i < lr.End {
			to++
		}
	}
	return &[2]int{from, to}
}
