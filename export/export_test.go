package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
	"github.com/turtle3d-xyz/go-turtle3d/turtle"
)

func sampleSkeleton() *skeleton.Skeleton {
	frame := turtle.IdentityFrame()
	return &skeleton.Skeleton{
		Strands: []skeleton.Strand{
			{
				{Position: turtle.Vec3{}, Frame: frame, Radius: 0.05, Color: turtle.White, UVScale: 1},
				{Position: turtle.Vec3{Y: 1}, Frame: frame, Radius: 0.05, Color: turtle.White, UVScale: 1},
			},
		},
		Props: []skeleton.Prop{
			{Position: turtle.Vec3{Y: 1}, Frame: frame, PropID: 3, Scale: 0.5,
				Color: turtle.Color{R: 0.2, G: 0.8, B: 0.3, A: 1}, MaterialID: 2},
		},
	}
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONL(&buf, sampleSkeleton()); err != nil {
		t.Fatalf("WriteJSONL failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines (2 points + 1 prop), got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("First line is not valid JSON: %v", err)
	}
	if first["kind"] != "point" {
		t.Errorf("Expected first record kind point, got %v", first["kind"])
	}

	var last map[string]any
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("Last line is not valid JSON: %v", err)
	}
	if last["kind"] != "prop" {
		t.Errorf("Expected last record kind prop, got %v", last["kind"])
	}
	if last["prop_id"] != float64(3) {
		t.Errorf("Expected prop_id 3, got %v", last["prop_id"])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleSkeleton()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "kind" {
		t.Errorf("Expected header to start with kind, got %q", rows[0][0])
	}
	if rows[1][0] != "point" || rows[3][0] != "prop" {
		t.Errorf("Expected point rows then prop rows, got %q and %q", rows[1][0], rows[3][0])
	}
	if rows[3][13] != "3" {
		t.Errorf("Expected prop_id column 3, got %q", rows[3][13])
	}
}

func TestCBORRoundTrip(t *testing.T) {
	skel := sampleSkeleton()

	data, err := EncodeCBOR(skel)
	if err != nil {
		t.Fatalf("EncodeCBOR failed: %v", err)
	}
	decoded, err := DecodeCBOR(data)
	if err != nil {
		t.Fatalf("DecodeCBOR failed: %v", err)
	}

	if len(decoded.Strands) != 1 || len(decoded.Strands[0]) != 2 {
		t.Fatalf("Expected 1 strand of 2 points, got %+v", decoded.Strands)
	}
	if decoded.Strands[0][1] != skel.Strands[0][1] {
		t.Errorf("Point did not survive round trip: %+v", decoded.Strands[0][1])
	}
	if len(decoded.Props) != 1 || decoded.Props[0] != skel.Props[0] {
		t.Errorf("Prop did not survive round trip: %+v", decoded.Props)
	}
}

func TestDecodeCBORRejectsGarbage(t *testing.T) {
	if _, err := DecodeCBOR([]byte{0xff, 0x00, 0x13}); err == nil {
		t.Error("Expected error decoding garbage")
	}
}
