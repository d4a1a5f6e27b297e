package domain

import "time"

// Session is one page session of the booking form.
// It is created on a fresh page load and never persisted.
type Session struct {
	ID                string
	CreatedAt         time.Time
	LastAccessedAt    time.Time // refreshed on every lookup, drives expiry
	MinDate           time.Time // first selectable day, computed once
	DisabledIntervals []DisabledInterval
	Fallback          bool // disabled intervals are the placeholder
	Ledger            *Ledger
}

// DisabledSnapshot returns a copy of the disabled intervals
func (s *Session) DisabledSnapshot() []DisabledInterval {
	out := make([]DisabledInterval, len(s.DisabledIntervals))
	copy(out, s.DisabledIntervals)
	return out
}
