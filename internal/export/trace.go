package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/trace"
)

type StepRecord struct {
	Index       int      `json:"index"`
	Array       []int    `json:"array"`
	Highlighted []int    `json:"highlighted"`
	NewLog      []string `json:"new_log,omitempty"`
}

// Data is a fully materialized trace.
type Data struct {
	ID        string             `json:"id"`
	Algorithm trace.Algorithm    `json:"algorithm"`
	Input     []int              `json:"input"`
	Final     []int              `json:"final"`
	Steps     []StepRecord       `json:"steps"`
	Log       []string           `json:"log"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Collect drains run, keeping every step. Each record carries only the log
// entries that step added.
func Collect(ctx context.Context, run *driver.Run) (*Data, error) {
	data := &Data{
		ID:        run.ID.String(),
		Algorithm: run.Algorithm,
		Input:     run.Input(),
	}

	var log []string
	err := run.Walk(ctx, func(i int, s trace.Step) bool {
		data.Steps = append(data.Steps, StepRecord{
			Index:       i,
			Array:       s.Array,
			Highlighted: s.Highlighted,
			NewLog:      s.Log[len(log):],
		})
		log = s.Log
		return true
	})
	if err != nil {
		return nil, err
	}

	data.Final = run.Array()
	data.Log = log
	if data.Log == nil {
		data.Log = []string{}
	}
	data.Metrics = run.Metrics()
	return data, nil
}

func WriteJSON(w io.Writer, data *Data) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per step: index, array, highlighted, new log
// entries. List cells are space separated.
func WriteCSV(w io.Writer, data *Data) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "array", "highlighted", "log"}); err != nil {
		return err
	}
	for _, s := range data.Steps {
		row := []string{
			strconv.Itoa(s.Index),
			joinInts(s.Array),
			joinInts(s.Highlighted),
			strings.Join(s.NewLog, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
