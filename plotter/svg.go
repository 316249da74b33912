// Package plotter renders skeletons to SVG by orthographic projection.
// It is a preview tool for iterating on grammars, not a substitute for
// the downstream mesh pipeline: strands become stroked polylines and
// props become markers.
package plotter

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
	"github.com/turtle3d-xyz/go-turtle3d/turtle"
)

// Plane selects the projection plane. The first named axis maps to
// the horizontal screen axis, the second to the vertical.
type Plane int

// Projection planes.
const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneZY
)

// SVGPlotter renders skeletons as SVG drawings with customizable
// framing.
type SVGPlotter struct {
	Width      float64
	Height     float64
	Margin     map[string]float64
	PlotWidth  float64
	PlotHeight float64
	Title      string
	Plane      Plane
}

// NewSVGPlotter creates a plotter with the given canvas dimensions,
// projecting onto the XY plane (world up vertical on screen).
func NewSVGPlotter(width, height float64) *SVGPlotter {
	margin := map[string]float64{"top": 40, "right": 30, "bottom": 30, "left": 30}
	return &SVGPlotter{
		Width:      width,
		Height:     height,
		Margin:     margin,
		PlotWidth:  width - margin["left"] - margin["right"],
		PlotHeight: height - margin["top"] - margin["bottom"],
		Plane:      PlaneXY,
	}
}

// SetTitle sets the drawing title.
func (p *SVGPlotter) SetTitle(t string) *SVGPlotter {
	p.Title = t
	return p
}

// SetPlane sets the projection plane.
func (p *SVGPlotter) SetPlane(plane Plane) *SVGPlotter {
	p.Plane = plane
	return p
}

// project maps a world position onto the plotting plane.
func (p *SVGPlotter) project(v turtle.Vec3) (float64, float64) {
	switch p.Plane {
	case PlaneXZ:
		return v.X, v.Z
	case PlaneZY:
		return v.Z, v.Y
	default:
		return v.X, v.Y
	}
}

// Render generates the SVG document for a skeleton.
func (p *SVGPlotter) Render(skel *skeleton.Skeleton) string {
	// Compute projected bounds
	umin, vmin := math.Inf(1), math.Inf(1)
	umax, vmax := math.Inf(-1), math.Inf(-1)
	visit := func(pos turtle.Vec3) {
		u, v := p.project(pos)
		umin = math.Min(umin, u)
		umax = math.Max(umax, u)
		vmin = math.Min(vmin, v)
		vmax = math.Max(vmax, v)
	}
	for _, strand := range skel.Strands {
		for _, pt := range strand {
			visit(pt.Position)
		}
	}
	for _, prop := range skel.Props {
		visit(prop.Position)
	}

	// Handle empty or degenerate extents
	if math.IsInf(umin, 1) {
		umin, umax, vmin, vmax = 0, 1, 0, 1
	}
	urange := umax - umin
	if urange == 0 {
		urange = 1
	}
	vrange := vmax - vmin
	if vrange == 0 {
		vrange = 1
	}
	umin -= urange * 0.05
	umax += urange * 0.05
	vmin -= vrange * 0.05
	vmax += vrange * 0.05

	// Uniform scale preserving aspect ratio, screen v axis flipped
	scale := math.Min(p.PlotWidth/(umax-umin), p.PlotHeight/(vmax-vmin))
	sx := func(u float64) float64 {
		return p.Margin["left"] + (u-umin)*scale
	}
	sy := func(v float64) float64 {
		return p.Margin["top"] + p.PlotHeight - (v-vmin)*scale
	}

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		int(p.Width), int(p.Height)))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="#f8f9fa" rx="8"/>`,
		int(p.Width), int(p.Height)))

	if p.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%f" y="25" text-anchor="middle" font-family="Arial, sans-serif" font-size="16" font-weight="bold">%s</text>`,
			p.Width/2, escape(p.Title)))
	}

	// Strands as stroked polylines
	for _, strand := range skel.Strands {
		if len(strand) == 0 {
			continue
		}
		path := strings.Builder{}
		meanRadius := 0.0
		for i, pt := range strand {
			pu, pv := p.project(pt.Position)
			if i == 0 {
				path.WriteString(fmt.Sprintf("M%f,%f", sx(pu), sy(pv)))
			} else {
				path.WriteString(fmt.Sprintf(" L%f,%f", sx(pu), sy(pv)))
			}
			meanRadius += pt.Radius
		}
		meanRadius /= float64(len(strand))
		width := math.Max(1, meanRadius*2*scale)
		sb.WriteString(fmt.Sprintf(`<path d="%s" stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f" stroke-linecap="round" fill="none"/>`,
			path.String(), colorHex(strand[0].Color), strand[0].Color.A, width))
	}

	// Props as circular markers
	for _, prop := range skel.Props {
		pu, pv := p.project(prop.Position)
		r := math.Max(2, prop.Scale*scale*0.25)
		sb.WriteString(fmt.Sprintf(`<circle cx="%f" cy="%f" r="%.2f" fill="%s" fill-opacity="%.3f"/>`,
			sx(pu), sy(pv), r, colorHex(prop.Color), prop.Color.A))
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// SaveSVG renders a skeleton and writes the SVG document to path.
func SaveSVG(path string, skel *skeleton.Skeleton, title string) error {
	p := NewSVGPlotter(800, 800).SetTitle(title)
	if err := os.WriteFile(path, []byte(p.Render(skel)), 0o644); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

// colorHex converts a unit-range color to its #rrggbb form.
func colorHex(c turtle.Color) string {
	return fmt.Sprintf("#%02x%02x%02x",
		int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5))
}

// escape sanitizes text for embedding in SVG.
func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
