package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/puzzlecut/puzzlecut/pkg/grid"
	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
	"github.com/puzzlecut/puzzlecut/pkg/stud"
)

func buildFixture(t *testing.T, rows, cols int) *puzzle.Puzzle {
	t.Helper()
	g, err := grid.New(rows, cols, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := neighbors.Assign(rows, cols, neighbors.NewSource(9))
	if err != nil {
		t.Fatal(err)
	}
	return puzzle.Build(g, tbl, stud.Default(), 9)
}

func TestRenderSVG(t *testing.T) {
	p := buildFixture(t, 2, 3)

	data, err := RenderSVG(p)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	svg := string(data)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("missing svg root element")
	}
	if got := strings.Count(svg, "<path "); got != 6 {
		t.Errorf("path count = %d, want 6", got)
	}
	for _, id := range []string{"piece-r0c0", "piece-r1c2"} {
		if !strings.Contains(svg, `id="`+id+`"`) {
			t.Errorf("missing piece element %s", id)
		}
	}
	if strings.Contains(svg, "<text") {
		t.Error("labels rendered without WithLabels")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	p := buildFixture(t, 2, 2)

	data, err := RenderSVG(p, WithStroke("#ff0000"), WithFill("#eeeeee"), WithLabels())
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)

	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("custom stroke not applied")
	}
	if !strings.Contains(svg, `fill="#eeeeee"`) {
		t.Error("custom fill not applied")
	}
	if got := strings.Count(svg, "<text"); got != 4 {
		t.Errorf("label count = %d, want 4", got)
	}
}

func TestRenderSVGViewBoxCoversOverhang(t *testing.T) {
	p := buildFixture(t, 2, 2)

	data, err := RenderSVG(p)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)

	// Tab overhang forces a negative viewBox origin.
	if strings.Contains(svg, `viewBox="0 0`) {
		t.Error("viewBox has no padding despite tab overhang")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	p := buildFixture(t, 2, 3)
	a, err := RenderSVG(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderSVG(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("repeated renders produced different output")
	}
}

func TestRenderJSON(t *testing.T) {
	p := buildFixture(t, 2, 3)

	data, err := RenderJSON(p)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out struct {
		ID     string `json:"id"`
		Rows   int    `json:"rows"`
		Cols   int    `json:"cols"`
		Pieces []struct {
			ID        string           `json:"id"`
			SVG       string           `json:"svg"`
			Transform *json.RawMessage `json:"transform"`
		} `json:"pieces"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.ID != p.ID || out.Rows != 2 || out.Cols != 3 {
		t.Errorf("header = %s %dx%d", out.ID, out.Rows, out.Cols)
	}
	if len(out.Pieces) != 6 {
		t.Fatalf("piece count = %d, want 6", len(out.Pieces))
	}
	// SVG paths and transforms are opt-in.
	if out.Pieces[0].SVG != "" {
		t.Error("svg path present without WithSVGPaths")
	}
	if out.Pieces[0].Transform != nil {
		t.Error("transform present without WithTransforms")
	}
}

func TestRenderJSONOptions(t *testing.T) {
	p := buildFixture(t, 2, 2)

	data, err := RenderJSON(p, WithSVGPaths(), WithTransforms())
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Pieces []struct {
			SVG       string           `json:"svg"`
			Transform *json.RawMessage `json:"transform"`
		} `json:"pieces"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	for i, pc := range out.Pieces {
		if !strings.HasPrefix(pc.SVG, "M ") {
			t.Errorf("piece %d svg = %q", i, pc.SVG)
		}
		if pc.Transform == nil {
			t.Errorf("piece %d missing transform", i)
		}
	}
}
