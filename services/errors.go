package services

import (
	"errors"
	"fmt"
)

// Failure taxonomy surfaced by the evaluation services. Controllers map
// these onto HTTP statuses: validation 400, not-found 404, authorization
// 403, everything else 500.
var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrPanelNotFound = errors.New("panel not found")

	// ErrMalformedPanel means the panel does not hold exactly three
	// distinct teachers at validation time.
	ErrMalformedPanel = errors.New("panel must have exactly 3 teachers")

	// ErrInvalidAssignment means the proposed mentor is not one of the
	// panel's teachers.
	ErrInvalidAssignment = errors.New("selected mentor must be part of the panel")

	ErrNotAssigned      = errors.New("teacher is not assigned to this team")
	ErrInvalidTermwork  = errors.New("termwork must be termwork1 or termwork2")
	ErrUnknownCriteria  = errors.New("unknown rubric criteria")
)

// ValueRangeError rejects a mark outside [0, criterion maximum].
type ValueRangeError struct {
	CriteriaID string
	Max        float64
}

func (e *ValueRangeError) Error() string {
	return fmt.Sprintf("mark for %s must be between 0 and %g", e.CriteriaID, e.Max)
}
