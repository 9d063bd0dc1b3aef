package serviceorder

import (
	"fmt"
	"slices"
	"strings"

	"workshop/internal/pkg/errs"
)

// Status is the lifecycle state of a service order. The main path is
//
//	RECEIVED -> IN_DIAGNOSIS -> AWAITING_APPROVAL -> APPROVED -> IN_PROGRESS -> COMPLETED -> DELIVERED
//
// IN_DIAGNOSIS may skip approval and go straight to IN_PROGRESS, AWAITING_APPROVAL
// may return to IN_DIAGNOSIS, IN_PROGRESS and AWAITING_PARTS alternate, and a
// COMPLETED order may be reopened. CANCELLED is reachable from every state
// except COMPLETED and DELIVERED.
type Status int

const (
	Unknown Status = iota
	Received
	InDiagnosis
	AwaitingApproval
	Approved
	InProgress
	AwaitingParts
	Completed
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Received:         "RECEIVED",
		InDiagnosis:      "IN_DIAGNOSIS",
		AwaitingApproval: "AWAITING_APPROVAL",
		Approved:         "APPROVED",
		InProgress:       "IN_PROGRESS",
		AwaitingParts:    "AWAITING_PARTS",
		Completed:        "COMPLETED",
		Delivered:        "DELIVERED",
		Cancelled:        "CANCELLED",
	}
}

// transitions is the complete adjacency list of the lifecycle. A status
// missing from the map has no outgoing transitions.
var transitions = map[Status][]Status{
	Received:         {InDiagnosis, Cancelled},
	InDiagnosis:      {AwaitingApproval, InProgress, Cancelled},
	AwaitingApproval: {Approved, InDiagnosis, Cancelled},
	Approved:         {InProgress, AwaitingParts, Cancelled},
	InProgress:       {AwaitingParts, Completed, Cancelled},
	AwaitingParts:    {InProgress, Cancelled},
	Completed:        {Delivered, InProgress},
	Delivered:        {},
	Cancelled:        {},
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus converts the upper-case name of a status, e.g. "IN_PROGRESS".
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// AllowedTransitions returns a copy of the statuses reachable from s.
func (s Status) AllowedTransitions() []Status {
	return slices.Clone(transitions[s])
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	allowed, ok := transitions[s]
	return ok && len(allowed) == 0
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Received, InDiagnosis, AwaitingApproval, Approved, InProgress,
		AwaitingParts, Completed, Delivered, Cancelled,
	}
}
