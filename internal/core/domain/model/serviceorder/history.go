package serviceorder

import (
	"slices"
	"time"

	"workshop/internal/core/domain/model/kernel"
)

// StatusChange records one transition. The first change of an order has no
// previous status and reports Unknown.
type StatusChange struct {
	id        kernel.UUID
	previous  Status
	next      Status
	changedBy string
	reason    string
	changedAt time.Time
}

func RestoreStatusChange(
	id kernel.UUID,
	previous, next Status,
	changedBy, reason string,
	changedAt time.Time,
) StatusChange {
	return StatusChange{
		id:        id,
		previous:  previous,
		next:      next,
		changedBy: changedBy,
		reason:    reason,
		changedAt: changedAt,
	}
}

func (c StatusChange) ID() kernel.UUID      { return c.id }
func (c StatusChange) Previous() Status     { return c.previous }
func (c StatusChange) Next() Status         { return c.next }
func (c StatusChange) ChangedBy() string    { return c.changedBy }
func (c StatusChange) Reason() string       { return c.reason }
func (c StatusChange) ChangedAt() time.Time { return c.changedAt }

// HasPrevious is false only for the entry that seeded the history.
func (c StatusChange) HasPrevious() bool {
	return c.previous != Unknown
}

// History is an append-only, time-ordered sequence of status changes.
// Append returns a new History and never shares storage with the receiver.
type History struct {
	changes []StatusChange
}

func NewHistory(changes ...StatusChange) History {
	return History{changes: slices.Clone(changes)}
}

func (h History) Append(change StatusChange) History {
	next := make([]StatusChange, len(h.changes), len(h.changes)+1)
	copy(next, h.changes)
	return History{changes: append(next, change)}
}

// Changes returns a copy of the recorded changes, oldest first.
func (h History) Changes() []StatusChange {
	return slices.Clone(h.changes)
}

func (h History) Len() int {
	return len(h.changes)
}

func (h History) Last() (StatusChange, bool) {
	if len(h.changes) == 0 {
		return StatusChange{}, false
	}
	return h.changes[len(h.changes)-1], true
}

// StatusChangeSnapshot is the flat view of a StatusChange.
type StatusChangeSnapshot struct {
	ID             string    `json:"id"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	NewStatus      string    `json:"newStatus"`
	ChangedBy      string    `json:"changedBy"`
	Reason         string    `json:"reason,omitempty"`
	ChangedAt      time.Time `json:"changedAt"`
}

func (c StatusChange) Snapshot() StatusChangeSnapshot {
	s := StatusChangeSnapshot{
		ID:        c.id.String(),
		NewStatus: c.next.String(),
		ChangedBy: c.changedBy,
		Reason:    c.reason,
		ChangedAt: c.changedAt,
	}
	if c.HasPrevious() {
		s.PreviousStatus = c.previous.String()
	}
	return s
}
