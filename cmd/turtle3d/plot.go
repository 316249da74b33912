package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/turtle3d-xyz/go-turtle3d/plotter"
)

func plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	output := fs.String("output", "", "Output SVG file (required)")
	configPath := fs.String("config", "", "YAML config file")
	width := fs.Int("width", 800, "Canvas width in pixels")
	height := fs.Int("height", 800, "Canvas height in pixels")
	title := fs.String("title", "", "Drawing title (default: script name)")
	plane := fs.String("plane", "xy", "Projection plane: xy, xz or zy")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: turtle3d plot <script> [options]

Interpret a turtle script and render an SVG preview.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  turtle3d plot tree.turtle --output tree.svg
  turtle3d plot tree.turtle --output side.svg --plane zy --title "Side view"
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("script file required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	var projection plotter.Plane
	switch *plane {
	case "xy":
		projection = plotter.PlaneXY
	case "xz":
		projection = plotter.PlaneXZ
	case "zy":
		projection = plotter.PlaneZY
	default:
		return fmt.Errorf("unknown plane %q", *plane)
	}

	skel, _, err := buildFromScript(fs.Arg(0), *configPath)
	if err != nil {
		return err
	}

	if *title == "" {
		*title = fs.Arg(0)
	}
	p := plotter.NewSVGPlotter(float64(*width), float64(*height)).
		SetTitle(*title).
		SetPlane(projection)
	if err := os.WriteFile(*output, []byte(p.Render(skel)), 0o644); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}

	fmt.Printf("Plot saved to %s (%d strands, %d props)\n",
		*output, len(skel.Strands), len(skel.Props))
	return nil
}
