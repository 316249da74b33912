// Command turtle3d builds, previews, exports and catalogs 3D turtle
// skeletons from textual instruction scripts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build":
		if err := build(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "plot":
		if err := plot(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "export":
		if err := export(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "save":
		if err := save(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "list":
		if err := list(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "delete":
		if err := deleteCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "symbols":
		symbols()
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("turtle3d version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `turtle3d - 3D turtle interpreter for derived L-system symbol sequences

Usage: turtle3d <command> [options]

Commands:
  build     Interpret a script and print a build summary
  plot      Interpret a script and render an SVG preview
  export    Interpret a script and export the skeleton (jsonl, csv, cbor)
  save      Interpret a script and save the skeleton to a SQLite catalog
  list      List skeletons in a catalog
  delete    Delete a skeleton from a catalog
  symbols   Print the standard symbol reference
  help      Show this help
  version   Show version

Run 'turtle3d <command> -h' for command options.
`)
}
