package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/turtle3d-xyz/go-turtle3d/config"
	"github.com/turtle3d-xyz/go-turtle3d/interp"
	"github.com/turtle3d-xyz/go-turtle3d/script"
	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
	"github.com/turtle3d-xyz/go-turtle3d/symbol"
)

// buildFromScript parses a script file and interprets it with the
// given (optional) YAML config, returning the skeleton and the build
// report. Shared by every subcommand that consumes scripts.
func buildFromScript(scriptPath, configPath string) (*skeleton.Skeleton, interp.Report, error) {
	cfg := interp.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, interp.Report{}, err
		}
	}

	f, err := os.Open(scriptPath)
	if err != nil {
		return nil, interp.Report{}, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	tab := symbol.NewTable()
	instrs, err := script.Parse(f, tab)
	if err != nil {
		return nil, interp.Report{}, err
	}

	reg := interp.NewRegistry()
	reg.PopulateStandard(tab)

	skel, report := interp.BuildSkeletonReport(instrs, reg, cfg)
	return &skel, report, nil
}

func build(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: turtle3d build <script> [options]

Interpret a turtle script and print a build summary.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("script file required")
	}

	skel, report, err := buildFromScript(fs.Arg(0), *configPath)
	if err != nil {
		return err
	}

	fmt.Printf("Instructions:     %d\n", report.Instructions)
	fmt.Printf("Strands:          %d\n", len(skel.Strands))
	fmt.Printf("Points:           %d\n", skel.PointCount())
	fmt.Printf("Props:            %d\n", len(skel.Props))
	fmt.Printf("Max branch depth: %d\n", report.MaxDepth)
	if report.UnknownSymbols > 0 {
		fmt.Printf("Unknown symbols:  %d (treated as no-ops)\n", report.UnknownSymbols)
	}
	if report.ArityMismatches > 0 {
		fmt.Printf("Arity mismatches: %d (instructions skipped)\n", report.ArityMismatches)
	}
	if report.UnbalancedPops > 0 {
		fmt.Printf("Unbalanced pops:  %d (ignored)\n", report.UnbalancedPops)
	}
	return nil
}
