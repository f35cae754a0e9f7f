package entity

import (
	"fmt"
	"slices"
	"strings"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValid checks if the ApplicationStatus is a valid value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves this status.
func (s ApplicationStatus) IsTerminal() bool {
	return len(ValidTransitionsFrom(s)) == 0
}

// StatusTransition is a legal edge of the review state machine.
type StatusTransition struct {
	From ApplicationStatus
	To   ApplicationStatus
}

// validTransitions is the complete review state machine.
//
//nolint:gochecknoglobals
var validTransitions = []StatusTransition{
	{From: ApplicationStatusPending, To: ApplicationStatusApproved},
	{From: ApplicationStatusPending, To: ApplicationStatusRejected},
}

//nolint:gochecknoglobals
var transitionSet = func() map[StatusTransition]struct{} {
	set := make(map[StatusTransition]struct{}, len(validTransitions))
	for _, t := range validTransitions {
		set[t] = struct{}{}
	}

	return set
}()

// CanTransition reports whether an application may move from one status to another.
func CanTransition(from, to ApplicationStatus) bool {
	_, ok := transitionSet[StatusTransition{From: from, To: to}]

	return ok
}

// ValidTransitionsFrom returns the statuses reachable from the given one.
func ValidTransitionsFrom(status ApplicationStatus) []ApplicationStatus {
	var next []ApplicationStatus
	for _, t := range validTransitions {
		if t.From == status && !slices.Contains(next, t.To) {
			next = append(next, t.To)
		}
	}

	return next
}

// DescribeTransition renders a rejected transition for error details.
func DescribeTransition(from, to ApplicationStatus) string {
	next := ValidTransitionsFrom(from)
	if len(next) == 0 {
		return fmt.Sprintf("%s -> %s: %s is terminal", from, to, from)
	}

	allowed := make([]string, len(next))
	for i, s := range next {
		allowed[i] = string(s)
	}

	return fmt.Sprintf("%s -> %s: allowed targets are %s", from, to, strings.Join(allowed, ", "))
}
