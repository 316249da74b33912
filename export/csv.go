package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
)

// csvHeader is the column layout shared by point and prop rows.
// Columns that do not apply to a row's kind are left empty.
var csvHeader = []string{
	"kind", "strand", "index", "x", "y", "z",
	"radius", "r", "g", "b", "a", "material_id", "uv_scale",
	"prop_id", "scale",
}

// WriteCSV writes the skeleton as a flat CSV table: one row per point
// followed by one row per prop, distinguished by the kind column.
func WriteCSV(w io.Writer, skel *skeleton.Skeleton) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for si, strand := range skel.Strands {
		for pi, p := range strand {
			row := []string{
				"point",
				strconv.Itoa(si),
				strconv.Itoa(pi),
				ftoa(p.Position.X), ftoa(p.Position.Y), ftoa(p.Position.Z),
				ftoa(p.Radius),
				ftoa(p.Color.R), ftoa(p.Color.G), ftoa(p.Color.B), ftoa(p.Color.A),
				strconv.Itoa(p.MaterialID),
				ftoa(p.UVScale),
				"", "",
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing point row: %w", err)
			}
		}
	}
	for _, prop := range skel.Props {
		row := []string{
			"prop",
			"", "",
			ftoa(prop.Position.X), ftoa(prop.Position.Y), ftoa(prop.Position.Z),
			"",
			ftoa(prop.Color.R), ftoa(prop.Color.G), ftoa(prop.Color.B), ftoa(prop.Color.A),
			strconv.Itoa(prop.MaterialID),
			"",
			strconv.Itoa(prop.PropID),
			ftoa(prop.Scale),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing prop row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
