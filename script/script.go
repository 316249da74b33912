// Package script parses the textual instruction format consumed by
// the CLI and examples.
//
// A script is a whitespace-separated sequence of words, each a symbol
// name optionally followed by a parenthesized parameter list:
//
//	# a right-angled corner
//	F(10) +(90) F(10)
//
// Parameters attach directly to their symbol, with no space before the
// opening parenthesis. Comments start with '#' and run to end of line.
//
// Symbol names are interned into the supplied table as they appear,
// so a script can mix standard spellings with grammar-specific ones.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/turtle3d-xyz/go-turtle3d/interp"
	"github.com/turtle3d-xyz/go-turtle3d/symbol"
)

// Parse reads a script and returns the instruction sequence, interning
// symbol names into tab.
func Parse(r io.Reader, tab *symbol.Table) ([]interp.Instruction, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseString(string(data), tab)
}

// ParseString parses a script held in memory.
func ParseString(src string, tab *symbol.Table) ([]interp.Instruction, error) {
	var instrs []interp.Instruction
	line := 1
	i := 0

	for i < len(src) {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case unicode.IsSpace(rune(c)):
			i++
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		default:
			word, params, next, err := scanWord(src, i, line)
			if err != nil {
				return nil, err
			}
			i = next
			id, err := tab.Intern(word)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			instrs = append(instrs, interp.Instruction{Sym: id, Params: params})
		}
	}
	return instrs, nil
}

// scanWord consumes one symbol name and its optional parameter list
// starting at i, returning the name, parsed parameters, and the index
// just past the word.
func scanWord(src string, i, line int) (string, []float64, int, error) {
	start := i
	for i < len(src) && src[i] != '(' && !unicode.IsSpace(rune(src[i])) {
		i++
	}
	name := src[start:i]
	if name == "" {
		return "", nil, 0, fmt.Errorf("line %d: empty symbol name", line)
	}
	if i >= len(src) || src[i] != '(' {
		return name, nil, i, nil
	}

	// Parameter list: everything up to the matching ')'.
	i++
	argStart := i
	for i < len(src) && src[i] != ')' {
		if src[i] == '\n' {
			return "", nil, 0, fmt.Errorf("line %d: unterminated parameter list for %q", line, name)
		}
		i++
	}
	if i >= len(src) {
		return "", nil, 0, fmt.Errorf("line %d: unterminated parameter list for %q", line, name)
	}
	args := src[argStart:i]
	i++

	var params []float64
	if strings.TrimSpace(args) != "" {
		for _, field := range strings.Split(args, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return "", nil, 0, fmt.Errorf("line %d: bad parameter %q for %q", line, strings.TrimSpace(field), name)
			}
			params = append(params, v)
		}
	}
	return name, params, i, nil
}
