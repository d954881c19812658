package entity

import (
	"fmt"
	"time"
)

// DateLayout is the format used for date flags, session state and labels.
const DateLayout = "2006-01-02"

// DateRange is an inclusive [Start, End] interval over created_at.
type DateRange struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Days returns the number of calendar days spanned, both ends included.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether t falls within the range, both ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}

// Session carries the state remembered between interactions of one user:
// the last selected date range. Nil Range means nothing was selected yet.
type Session struct {
	Range *DateRange `json:"range,omitempty" yaml:"range,omitempty"`
}

// Remember stores r as the last selected range.
func (s *Session) Remember(r DateRange) {
	s.Range = &r
}

// Reset forgets the selected range.
func (s *Session) Reset() {
	s.Range = nil
}
