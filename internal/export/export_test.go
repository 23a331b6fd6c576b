package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/trace"
)

func collect(t *testing.T, alg trace.Algorithm, input []int) *Data {
	t.Helper()
	run, err := driver.NewRegistry().StartAlgorithm(alg, input)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	data, err := Collect(context.Background(), run)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	return data
}

func TestCollect(t *testing.T) {
	data := collect(t, trace.Bubble, []int{3, 1, 2})

	if len(data.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(data.Steps))
	}
	if got := data.Steps[1].NewLog; len(got) != 1 || got[0] != "Swapped 3 and 2" {
		t.Errorf("second step log = %v", got)
	}
	if len(data.Log) != 2 {
		t.Errorf("expected full log of 2 entries, got %v", data.Log)
	}
	if data.Final[0] != 1 || data.Final[2] != 3 {
		t.Errorf("final = %v", data.Final)
	}
}

func TestWriteJSON(t *testing.T) {
	data := collect(t, trace.Quick, []int{5, 3, 8, 1})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, data); err != nil {
		t.Fatalf("write: %v", err)
	}

	var decoded struct {
		Algorithm string `json:"algorithm"`
		Steps     []StepRecord
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Algorithm != "quick" {
		t.Errorf("algorithm = %q", decoded.Algorithm)
	}
	if len(decoded.Steps) != 3 {
		t.Errorf("expected 3 steps, got %d", len(decoded.Steps))
	}
}

func TestWriteCSV(t *testing.T) {
	data := collect(t, trace.Insertion, []int{2, 1})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, data); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d: %q", len(lines), lines)
	}
	if lines[1] != "0,2 2,0 1,Moved 2 after 1" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "1,1 2,0 1," {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestStepToSVG(t *testing.T) {
	step := trace.Step{Array: []int{4, 2, 9}, Highlighted: []int{1}}
	svg := StepToSVG(step, 300, 100, "#888", "#f00")

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not a complete svg document")
	}
	if n := strings.Count(svg, "<rect x="); n != 3 {
		t.Errorf("expected 3 bars, got %d", n)
	}
	if n := strings.Count(svg, `fill="#f00"`); n != 1 {
		t.Errorf("expected 1 highlighted bar, got %d", n)
	}
}

func TestLogGrowthSVG(t *testing.T) {
	if LogGrowthSVG([]int{1}, 100, 50, "#0f0") != "" {
		t.Error("single point should produce no plot")
	}
	svg := LogGrowthSVG([]int{1, 2, 2, 3}, 100, 50, "#0f0")
	if strings.Count(svg, " L") != 3 {
		t.Errorf("expected 3 line segments in %q", svg)
	}
}
