package main

import (
	"flag"
	"fmt"
	"os"

	xport "github.com/turtle3d-xyz/go-turtle3d/export"
)

func export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout; required for cbor)")
	configPath := fs.String("config", "", "YAML config file")
	format := fs.String("format", "jsonl", "Export format: jsonl, csv or cbor")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: turtle3d export <script> [options]

Interpret a turtle script and export the skeleton.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  turtle3d export tree.turtle --format jsonl --output tree.jsonl
  turtle3d export tree.turtle --format csv
  turtle3d export tree.turtle --format cbor --output tree.cbor
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("script file required")
	}

	skel, _, err := buildFromScript(fs.Arg(0), *configPath)
	if err != nil {
		return err
	}

	switch *format {
	case "jsonl", "csv":
		out := os.Stdout
		if *output != "" {
			f, err := os.Create(*output)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer f.Close()
			out = f
		}
		if *format == "jsonl" {
			return xport.WriteJSONL(out, skel)
		}
		return xport.WriteCSV(out, skel)

	case "cbor":
		if *output == "" {
			return fmt.Errorf("--output required for cbor")
		}
		data, err := xport.EncodeCBOR(skel)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Printf("Exported %d bytes to %s\n", len(data), *output)
		return nil

	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}
