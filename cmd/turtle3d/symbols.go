package main

import "fmt"

// symbols prints the standard symbol reference. The table mirrors the
// contract documented in the README.
func symbols() {
	rows := []struct {
		sym, op, params string
	}{
		{"F", "Draw", "0-1: length (default step)"},
		{"f", "Move", "0-1: length (default step)"},
		{"+", "Yaw left", "0-1: degrees (default angle)"},
		{"-", "Yaw right", "0-1: degrees (default angle)"},
		{"&", "Pitch down", "0-1: degrees (default angle)"},
		{"^", "Pitch up", "0-1: degrees (default angle)"},
		{`\`, "Roll left", "0-1: degrees (default angle)"},
		{"/", "Roll right", "0-1: degrees (default angle)"},
		{"|", "Turn around", "none"},
		{"$", "Align vertical", "none"},
		{"!", "Set width", "0-1: width (0 params keeps current)"},
		{"[", "Push state", "none"},
		{"]", "Pop state", "none"},
		{"~", "Spawn prop", "0-2: prop id, scale"},
		{"'", "Set color", "1: gray | 3: rgb | 4: rgba"},
		{",", "Set material", "1: palette index"},
		{";", "Set UV scale", "1: scale"},
	}
	fmt.Printf("%-4s %-16s %s\n", "SYM", "OPERATION", "PARAMETERS")
	for _, r := range rows {
		fmt.Printf("%-4s %-16s %s\n", r.sym, r.op, r.params)
	}
}
