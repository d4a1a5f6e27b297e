package domain

import "sync"

// Ledger is the in-session ordered collection of reservation records.
// Records are only appended or replaced in place; there is no removal.
type Ledger struct {
	mu      sync.RWMutex
	records []ReservationRecord
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{records: make([]ReservationRecord, 0)}
}

// Append adds a record to the end. Overlapping ranges are not deduplicated.
func (l *Ledger) Append(record ReservationRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
}

// Replace swaps the first editable record with the given id for record.
// The stored record keeps id as its identifier.
// Returns false and leaves the ledger untouched if no editable record matches.
func (l *Ledger) Replace(id string, record ReservationRecord) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].ID != id {
			continue
		}
		// Синтетические блоки "Unavailable" не редактируются
		if !l.records[i].IsEditable() {
			return false
		}
		record.ID = id
		l.records[i] = record
		return true
	}

	return false
}

// SeedFromExternal appends one display-only "Unavailable" record per interval.
// newID supplies identifiers for the synthetic records.
func (l *Ledger) SeedFromExternal(intervals []DisabledInterval, newID func() string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, interval := range intervals {
		l.records = append(l.records, ReservationRecord{
			ID:    newID(),
			Title: UnavailableTitle,
			Start: interval.StartDate,
			End:   interval.EndDate,
			Kind:  KindUnavailable,
		})
	}
}

// Get returns a copy of the record with the given id
func (l *Ledger) Get(id string) (ReservationRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, record := range l.records {
		if record.ID == id {
			return record, true
		}
	}
	return ReservationRecord{}, false
}

// Records returns a snapshot in insertion order
func (l *Ledger) Records() []ReservationRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]ReservationRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}
