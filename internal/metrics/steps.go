package metrics

import "github.com/san-kum/sortviz/internal/trace"

type StepCount struct {
	name  string
	steps int
}

func NewStepCount() *StepCount {
	return &StepCount{name: "steps"}
}

func (c *StepCount) Name() string { return c.name }

func (c *StepCount) Observe(s trace.Step) { c.steps++ }

func (c *StepCount) Value() float64 { return float64(c.steps) }

func (c *StepCount) Reset(initial []int) { c.steps = 0 }

// LogLines reports the length of the operation log at the last step.
type LogLines struct {
	name  string
	lines int
}

func NewLogLines() *LogLines {
	return &LogLines{name: "log_lines"}
}

func (l *LogLines) Name() string { return l.name }

func (l *LogLines) Observe(s trace.Step) { l.lines = len(s.Log) }

func (l *LogLines) Value() float64 { return float64(l.lines) }

func (l *LogLines) Reset(initial []int) { l.lines = 0 }
