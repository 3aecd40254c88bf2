package menu

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap word-wraps text to the given display width. Embedded newlines
// are kept as hard breaks, widths are measured in terminal cells
// (runewidth), and a word wider than the whole line is broken at cell
// boundaries rather than dropped. A line that already fits comes back
// unchanged. A non-positive width disables wrapping.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, hard := range strings.Split(text, "\n") {
		if runewidth.StringWidth(hard) <= width {
			lines = append(lines, hard)
			continue
		}
		lines = wrapLine(lines, hard, width)
	}
	return lines
}

func wrapLine(lines []string, line string, width int) []string {
	var current string
	for _, word := range strings.Split(line, " ") {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if runewidth.StringWidth(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if runewidth.StringWidth(word) <= width {
			current = word
			continue
		}
		// The word alone overflows the line: break it at cell
		// boundaries, leaving the tail as the new current line.
		chunks := breakWord(word, width)
		lines = append(lines, chunks[:len(chunks)-1]...)
		current = chunks[len(chunks)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// breakWord splits a single word into pieces no wider than width cells.
// Always returns at least one piece.
func breakWord(word string, width int) []string {
	var (
		chunks  []string
		current strings.Builder
		cells   int
	)
	for _, r := range word {
		w := runewidth.RuneWidth(r)
		if cells+w > width && current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			cells = 0
		}
		current.WriteRune(r)
		cells += w
	}
	chunks = append(chunks, current.String())
	return chunks
}
