package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FallbackSelect is the non-interactive degrade path: it lists the
// selectable visible nodes with 1-based numbers and reads choices line
// by line. Picking a branch node toggles its collapse state and
// re-lists, so drill-down works without arrow keys. "q", "quit",
// "exit" and end of input cancel; anything else re-prompts.
//
// The listing restarts as an explicit loop rather than recursing, so
// arbitrarily deep drill-downs cost no stack.
func FallbackSelect(roots []*Node, title string, in io.Reader, out io.Writer) *Node {
	scanner := bufio.NewScanner(in)
	for {
		visible := FlattenVisible(roots)
		var selectable []*Node
		for _, n := range visible {
			if n.Selectable {
				selectable = append(selectable, n)
			}
		}
		if len(selectable) == 0 {
			return nil
		}

		if title != "" {
			fmt.Fprintln(out, title)
		}
		for i, n := range selectable {
			prefix := ""
			if len(n.Children) > 0 {
				if n.Expanded {
					prefix = "[-] "
				} else {
					prefix = "[+] "
				}
			}
			fmt.Fprintf(out, "  [%d] %s%s\n", i+1, prefix, n.Title)
		}

		node := promptChoice(scanner, out, selectable)
		if node == nil {
			return nil
		}
		if len(node.Children) > 0 {
			node.Expanded = !node.Expanded
			continue
		}
		return node
	}
}

// promptChoice reads lines until one names a listed entry or cancels.
// Returns nil on cancellation or closed input.
func promptChoice(scanner *bufio.Scanner, out io.Writer, selectable []*Node) *Node {
	for {
		fmt.Fprint(out, "Select number (or 'q' to cancel): ")
		if !scanner.Scan() {
			return nil
		}
		raw := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(raw) {
		case "q", "quit", "exit":
			return nil
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(selectable) {
			return selectable[n-1]
		}
		fmt.Fprintln(out, "Invalid choice. Enter a number from the list.")
	}
}
