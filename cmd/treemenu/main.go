package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/localtools/treemenu/pkg/menu"
	"github.com/localtools/treemenu/pkg/menudef"
)

func main() {
	file := flag.String("file", "", "Menu definition file (.yaml, .yml or .json); discovered upward from the current directory when omitted")
	title := flag.String("title", "", "Title shown above the menu")
	printMode := flag.String("print", "value", "What to print for the selection: 'value' or 'title'")
	copyResult := flag.Bool("copy", false, "Also copy the printed selection to the clipboard")
	sample := flag.Bool("sample", false, "Print a sample menu definition and exit")
	flag.Parse()

	if *sample {
		fmt.Print(menudef.Sample())
		os.Exit(0)
	}

	if *printMode != "value" && *printMode != "title" {
		fmt.Fprintf(os.Stderr, "Error: invalid -print mode %q (want 'value' or 'title')\n", *printMode)
		os.Exit(2)
	}

	if *file == "" {
		found, ok := menudef.Discover()
		if !ok {
			fmt.Fprintln(os.Stderr, "Usage: treemenu -file MENU [options]")
			fmt.Fprintln(os.Stderr, "\nPresent an interactive tree menu and print the selection.")
			fmt.Fprintln(os.Stderr, "Without -file, a treemenu.yaml/.yml/.json next to or above the")
			fmt.Fprintln(os.Stderr, "current directory is used. Run 'treemenu -sample' for a starter.")
			fmt.Fprintln(os.Stderr)
			flag.PrintDefaults()
			os.Exit(2)
		}
		*file = found
	}

	roots, err := menudef.Load(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading menu: %v\n", err)
		os.Exit(2)
	}

	selected := menu.InteractiveSelect(roots, *title)
	if selected == nil {
		fmt.Fprintln(os.Stderr, "No selection (cancelled)")
		os.Exit(1)
	}

	out := formatSelection(selected, *printMode)
	if *copyResult {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		}
	}
	fmt.Println(out)
}

// formatSelection resolves what the CLI emits for a chosen node: the
// definition's value when one was given, the title otherwise.
func formatSelection(n *menu.Node, mode string) string {
	if mode == "title" {
		return n.Title
	}
	if v, ok := n.Payload.(string); ok && v != "" {
		return v
	}
	return n.Title
}
