package valueobjects

import "fmt"

type ProblemStatus string

const (
	StatusOpen       ProblemStatus = "open"
	StatusInProgress ProblemStatus = "in_progress"
	StatusResolved   ProblemStatus = "resolved"
	StatusClosed     ProblemStatus = "closed"
)

var validProblemStatuses = map[ProblemStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// problemStatusTransitions encodes the lifecycle: a problem moves forward
// through open, in_progress, resolved, and any non-closed status may be
// closed directly (cancellation). closed is terminal.
var problemStatusTransitions = map[ProblemStatus][]ProblemStatus{
	StatusOpen: {
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusInProgress: {
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (ps ProblemStatus) String() string {
	return string(ps)
}

func (ps ProblemStatus) IsValid() bool {
	return validProblemStatuses[ps]
}

func (ps ProblemStatus) CanTransitionTo(newStatus ProblemStatus) bool {
	allowedTransitions, ok := problemStatusTransitions[ps]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ps ProblemStatus) IsOpen() bool {
	return ps == StatusOpen
}

func (ps ProblemStatus) IsInProgress() bool {
	return ps == StatusInProgress
}

func (ps ProblemStatus) IsResolved() bool {
	return ps == StatusResolved
}

func (ps ProblemStatus) IsClosed() bool {
	return ps == StatusClosed
}

func NewProblemStatus(s string) (ProblemStatus, error) {
	ps := ProblemStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid problem status: %s", s)
	}
	return ps, nil
}

// AllProblemStatuses returns every recognized status, in lifecycle order.
func AllProblemStatuses() []ProblemStatus {
	return []ProblemStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}
}
