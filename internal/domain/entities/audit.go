package entities

// AuditTrail keeps the most recent inventory mutations, oldest first.
// Once cap entries are held, recording a new one drops the oldest.
type AuditTrail struct {
	entries []AuditEntry
	cap     int
}

// DefaultAuditCapacity bounds the trail when no explicit capacity is given.
const DefaultAuditCapacity = 1000

// NewAuditTrail returns a trail holding at most capacity entries.
// A capacity of zero or less falls back to DefaultAuditCapacity.
func NewAuditTrail(capacity int) *AuditTrail {
	if capacity <= 0 {
		capacity = DefaultAuditCapacity
	}
	return &AuditTrail{cap: capacity}
}

// Record appends an entry, evicting the oldest when full.
func (t *AuditTrail) Record(entry AuditEntry) {
	if len(t.entries) == t.cap {
		copy(t.entries, t.entries[1:])
		t.entries[len(t.entries)-1] = entry
		return
	}
	t.entries = append(t.entries, entry)
}

// Recent returns up to limit entries, newest last. A limit of zero or
// less returns everything.
func (t *AuditTrail) Recent(limit int) []AuditEntry {
	n := len(t.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]AuditEntry, n)
	copy(out, t.entries[len(t.entries)-n:])
	return out
}

// Len returns the number of retained entries.
func (t *AuditTrail) Len() int {
	return len(t.entries)
}
