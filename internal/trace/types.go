package trace

import "slices"

type Step struct {
	Array       []int
	Highlighted []int
	Log         []string
}

// NewStep snapshots arr and the current contents of log.
func NewStep(arr []int, highlighted []int, log *Log) Step {
	return Step{
		Array:       slices.Clone(arr),
		Highlighted: slices.Clone(highlighted),
		Log:         log.View(),
	}
}

// Latest returns the newest log line, or "" when nothing was logged yet.
func (s Step) Latest() string {
	if len(s.Log) == 0 {
		return ""
	}
	return s.Log[len(s.Log)-1]
}

func (s Step) IsHighlighted(i int) bool {
	return slices.Contains(s.Highlighted, i)
}

// Log is the append-only operation log of a single run.
type Log struct {
	entries []string
}

func NewLog() *Log {
	return &Log{entries: make([]string, 0, 16)}
}

func (l *Log) Append(entry string) { l.entries = append(l.entries, entry) }

func (l *Log) Len() int { return len(l.entries) }

// View returns a copy of the entries appended so far.
func (l *Log) View() []string {
	return slices.Clone(l.entries)
}
