package models

import "time"

// TimeWindow is a half-open interval [Start, End). A job's scheduled window,
// and every availability query, is expressed as one of these.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two half-open windows intersect. Windows that
// only touch at a boundary (w.End == o.Start) do not overlap.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start.Before(o.End) && w.End.After(o.Start)
}

// IsValid reports whether the window has positive length.
func (w TimeWindow) IsValid() bool {
	return w.End.After(w.Start)
}

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
