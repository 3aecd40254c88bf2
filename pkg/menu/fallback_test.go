package menu

import (
	"strings"
	"testing"
)

func runFallback(t *testing.T, roots []*Node, title, input string) (*Node, string) {
	t.Helper()
	var out strings.Builder
	choice := FallbackSelect(roots, title, strings.NewReader(input), &out)
	return choice, out.String()
}

func TestFallbackSelectsByNumber(t *testing.T) {
	roots := []*Node{
		{Title: "X", Selectable: true},
		{Title: "Y", Selectable: true},
		{Title: "Z", Selectable: true},
	}
	AssignLevels(roots)

	choice, out := runFallback(t, roots, "Pick one", "2\n")
	if choice == nil || choice.Title != "Y" {
		t.Fatalf("choice = %v, want Y", choice)
	}
	if !strings.Contains(out, "Pick one") {
		t.Errorf("title missing from output:\n%s", out)
	}
	for _, want := range []string{"  [1] X", "  [2] Y", "  [3] Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestFallbackCancelWords(t *testing.T) {
	for _, input := range []string{"q\n", "quit\n", "exit\n", "QUIT\n", "  q  \n"} {
		roots := []*Node{{Title: "X", Selectable: true}}
		AssignLevels(roots)
		if choice, _ := runFallback(t, roots, "", input); choice != nil {
			t.Errorf("input %q: choice = %v, want nil", input, choice)
		}
	}
}

func TestFallbackEOFCancels(t *testing.T) {
	roots := []*Node{{Title: "X", Selectable: true}}
	AssignLevels(roots)
	if choice, _ := runFallback(t, roots, "", ""); choice != nil {
		t.Errorf("choice = %v, want nil on closed input", choice)
	}
}

func TestFallbackInvalidInputReprompts(t *testing.T) {
	roots := []*Node{
		{Title: "X", Selectable: true},
		{Title: "Y", Selectable: true},
	}
	AssignLevels(roots)

	choice, out := runFallback(t, roots, "", "abc\n0\n9\n1\n")
	if choice == nil || choice.Title != "X" {
		t.Fatalf("choice = %v, want X after invalid attempts", choice)
	}
	if got := strings.Count(out, "Invalid choice."); got != 3 {
		t.Errorf("printed %d invalid-choice messages, want 3:\n%s", got, out)
	}
	if got := strings.Count(out, "Select number"); got != 4 {
		t.Errorf("printed %d prompts, want 4:\n%s", got, out)
	}
}

func TestFallbackBranchToggleDrillsDown(t *testing.T) {
	roots := []*Node{
		{
			Title:      "Remote",
			Selectable: true,
			Children: []*Node{
				{Title: "fetch logs", Selectable: true},
				{Title: "push build", Selectable: true},
			},
		},
		{Title: "Quit", Selectable: true},
	}
	AssignLevels(roots)

	// First "1" opens Remote and re-lists; "3" then lands on its
	// second child in the refreshed numbering.
	choice, out := runFallback(t, roots, "", "1\n3\n")
	if choice == nil || choice.Title != "push build" {
		t.Fatalf("choice = %v, want push build", choice)
	}
	if !strings.Contains(out, "[+] Remote") {
		t.Errorf("first listing should show the branch collapsed:\n%s", out)
	}
	if !strings.Contains(out, "[-] Remote") {
		t.Errorf("second listing should show the branch expanded:\n%s", out)
	}
	if !roots[0].Expanded {
		t.Error("picking the branch should leave it expanded")
	}
}

func TestFallbackBranchToggleCollapsesAgain(t *testing.T) {
	roots := []*Node{
		{
			Title:      "Remote",
			Selectable: true,
			Expanded:   true,
			Children:   []*Node{{Title: "fetch logs", Selectable: true}},
		},
	}
	AssignLevels(roots)

	choice, _ := runFallback(t, roots, "", "1\n")
	if choice != nil {
		t.Fatalf("choice = %v, want nil after collapse then EOF", choice)
	}
	if roots[0].Expanded {
		t.Error("picking an open branch should collapse it")
	}
}

func TestFallbackSkipsHeadersAndHiddenNodes(t *testing.T) {
	roots := []*Node{
		{
			Title: "Tools", // header, never listed
			Children: []*Node{
				{Title: "hidden", Selectable: true}, // collapsed away
			},
		},
		{Title: "Quit", Selectable: true},
	}
	AssignLevels(roots)

	choice, out := runFallback(t, roots, "", "1\n")
	if choice == nil || choice.Title != "Quit" {
		t.Fatalf("choice = %v, want Quit (the only listed entry)", choice)
	}
	if strings.Contains(out, "Tools") || strings.Contains(out, "hidden") {
		t.Errorf("headers and hidden nodes must not be listed:\n%s", out)
	}
}

func TestFallbackNothingSelectable(t *testing.T) {
	roots := []*Node{{Title: "just a header"}}
	AssignLevels(roots)

	choice, out := runFallback(t, roots, "ignored", "1\n")
	if choice != nil {
		t.Errorf("choice = %v, want nil", choice)
	}
	if out != "" {
		t.Errorf("nothing should be printed when nothing is selectable, got:\n%s", out)
	}
}
