package menu

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// helpHint is appended to the caller's title so every menu documents
// its own keys.
const helpHint = "(↑/↓ or j/k, Enter to select, q to cancel)"

// InteractiveSelect presents the forest in a full-screen alt-buffer
// session and blocks until the user picks a selectable node or
// cancels. It returns the chosen node by reference, or nil on
// cancellation or empty input.
//
// The forest is navigated in place: Expanded plus the derived
// parent/level caches are mutated on the caller's nodes, while the
// slice itself and the node set are never altered.
//
// When stdin or stdout is not a terminal, or the full-screen program
// fails for any reason, the session silently degrades to the numbered
// line-based prompt on the same streams. Errors never propagate.
func InteractiveSelect(roots []*Node, title string) *Node {
	if len(roots) == 0 {
		return nil
	}

	AssignLevels(roots)
	full := fullTitle(title)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return FallbackSelect(roots, full, os.Stdin, os.Stdout)
	}

	p := tea.NewProgram(NewModel(roots, full), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return FallbackSelect(roots, full, os.Stdin, os.Stdout)
	}
	return final.(Model).Choice()
}

// fullTitle merges the caller's title with the help hint: on the same
// line for a one-line title, on its own line otherwise.
func fullTitle(title string) string {
	if title == "" {
		return helpHint
	}
	if strings.Contains(title, "\n") {
		return title + "\n" + helpHint
	}
	return title + " " + helpHint
}
