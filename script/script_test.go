package script

import (
	"strings"
	"testing"

	"github.com/turtle3d-xyz/go-turtle3d/symbol"
)

func TestParseWordsAndParams(t *testing.T) {
	tab := symbol.NewTable()
	instrs, err := ParseString("F(10) +(90) F", tab)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(instrs) != 3 {
		t.Fatalf("Expected 3 instructions, got %d", len(instrs))
	}

	if len(instrs[0].Params) != 1 || instrs[0].Params[0] != 10 {
		t.Errorf("Expected F(10), got params %v", instrs[0].Params)
	}
	if len(instrs[2].Params) != 0 {
		t.Errorf("Expected bare F to have no params, got %v", instrs[2].Params)
	}
	// Both F instructions intern to the same ID.
	if instrs[0].Sym != instrs[2].Sym {
		t.Errorf("Expected same symbol ID for F, got %d and %d", instrs[0].Sym, instrs[2].Sym)
	}
	if instrs[0].Sym == instrs[1].Sym {
		t.Error("Expected distinct IDs for F and +")
	}
}

func TestParseMultipleParams(t *testing.T) {
	tab := symbol.NewTable()
	instrs, err := ParseString("'(0.1, 0.2, 0.3, 0.4) ~(3,2.5)", tab)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if got := instrs[0].Params; len(got) != 4 || got[1] != 0.2 {
		t.Errorf("Expected 4 color params, got %v", got)
	}
	if got := instrs[1].Params; len(got) != 2 || got[1] != 2.5 {
		t.Errorf("Expected (3, 2.5), got %v", got)
	}
}

func TestParseCommentsAndNewlines(t *testing.T) {
	src := `
# a branching structure
F(2)
[ +(25) F ]  # the branch
F
`
	tab := symbol.NewTable()
	instrs, err := ParseString(src, tab)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(instrs) != 6 {
		t.Errorf("Expected 6 instructions, got %d", len(instrs))
	}
}

func TestParseEmptyParens(t *testing.T) {
	tab := symbol.NewTable()
	instrs, err := ParseString("F()", tab)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(instrs[0].Params) != 0 {
		t.Errorf("Expected no params for F(), got %v", instrs[0].Params)
	}
}

func TestParseMultiCharNames(t *testing.T) {
	tab := symbol.NewTable()
	instrs, err := ParseString("Apex Internode(1.5)", tab)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	name, _ := tab.Name(instrs[0].Sym)
	if name != "Apex" {
		t.Errorf("Expected symbol Apex, got %q", name)
	}
	name, _ = tab.Name(instrs[1].Sym)
	if name != "Internode" {
		t.Errorf("Expected symbol Internode, got %q", name)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unterminated params", "F(10"},
		{"newline in params", "F(10\n)"},
		{"bad number", "F(abc)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tab := symbol.NewTable()
			if _, err := ParseString(c.src, tab); err == nil {
				t.Errorf("Expected error for %q", c.src)
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	tab := symbol.NewTable()
	instrs, err := Parse(strings.NewReader("F(1) F(2)"), tab)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(instrs) != 2 {
		t.Errorf("Expected 2 instructions, got %d", len(instrs))
	}
}
