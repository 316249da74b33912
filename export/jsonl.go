// Package export serializes skeletons for downstream consumers: JSONL
// and CSV for inspection and tooling, CBOR for compact storage and
// transport.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
)

// jsonlRecord is one line of JSONL output. Kind is "point" or "prop";
// point records carry the strand index so consumers can regroup
// strands without tracking line order.
type jsonlRecord struct {
	Kind       string     `json:"kind"`
	Strand     int        `json:"strand,omitempty"`
	Position   [3]float64 `json:"position"`
	Heading    [3]float64 `json:"heading"`
	Radius     float64    `json:"radius,omitempty"`
	Color      [4]float64 `json:"color"`
	MaterialID int        `json:"material_id"`
	UVScale    float64    `json:"uv_scale,omitempty"`
	PropID     int        `json:"prop_id,omitempty"`
	Scale      float64    `json:"scale,omitempty"`
}

// WriteJSONL writes the skeleton as JSON Lines: one record per point,
// in strand order, followed by one record per prop. Within a strand,
// record order is geometric order along the polyline.
func WriteJSONL(w io.Writer, skel *skeleton.Skeleton) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for si, strand := range skel.Strands {
		for _, p := range strand {
			rec := jsonlRecord{
				Kind:       "point",
				Strand:     si,
				Position:   [3]float64{p.Position.X, p.Position.Y, p.Position.Z},
				Heading:    [3]float64{p.Frame.Heading.X, p.Frame.Heading.Y, p.Frame.Heading.Z},
				Radius:     p.Radius,
				Color:      [4]float64{p.Color.R, p.Color.G, p.Color.B, p.Color.A},
				MaterialID: p.MaterialID,
				UVScale:    p.UVScale,
			}
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("encoding point: %w", err)
			}
		}
	}
	for _, prop := range skel.Props {
		rec := jsonlRecord{
			Kind:       "prop",
			Position:   [3]float64{prop.Position.X, prop.Position.Y, prop.Position.Z},
			Heading:    [3]float64{prop.Frame.Heading.X, prop.Frame.Heading.Y, prop.Frame.Heading.Z},
			Color:      [4]float64{prop.Color.R, prop.Color.G, prop.Color.B, prop.Color.A},
			MaterialID: prop.MaterialID,
			PropID:     prop.PropID,
			Scale:      prop.Scale,
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding prop: %w", err)
		}
	}
	return bw.Flush()
}
