package errors

import "fmt"

// Entity names the missing thing in a NotFoundError.
type Entity string

const (
	EntityElective  Entity = "elective"
	EntitySubject   Entity = "subject"
	EntityStudent   Entity = "student"
	EntityTeacher   Entity = "teacher"
	EntitySelection Entity = "selection"
)

// Reason explains a NotEligibleError.
type Reason string

const (
	ReasonDateRange            Reason = "date range"
	ReasonTeamMismatch         Reason = "team mismatch"
	ReasonSubjectNotInElective Reason = "subject not in elective"
)

var (
	ErrForbidden       = fmt.Errorf("forbidden")
	ErrUnauthorized    = fmt.Errorf("unauthorized")
	ErrAlreadyEnrolled = fmt.Errorf("already enrolled in this elective")
	ErrSubjectFull     = fmt.Errorf("subject is full")
	ErrNotEnrolled     = fmt.Errorf("no selection for this elective")
	ErrInvalidPassword = fmt.Errorf("password does not meet complexity requirements")
	ErrWorkerPanic     = fmt.Errorf("worker panic")
)

// NotFoundError reports a missing roster entity or selection.
type NotFoundError struct {
	Entity Entity
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func NotFound(entity Entity) error {
	return NotFoundError{Entity: entity}
}

// NotEligibleError reports an eligibility failure that is neither a
// permission problem nor a seat conflict.
type NotEligibleError struct {
	Reason Reason
}

func (e NotEligibleError) Error() string {
	return fmt.Sprintf("not eligible: %s", e.Reason)
}

func NotEligible(reason Reason) error {
	return NotEligibleError{Reason: reason}
}

// ProtocolViolationError is fatal to the connection that caused it.
// The connection is closed; no error frame is sent back.
type ProtocolViolationError struct {
	Detail string
}

func (e ProtocolViolationError) Error() string {
	return fmt.Sprintf("protocol violation: %s", e.Detail)
}

func ProtocolViolation(detail string) error {
	return ProtocolViolationError{Detail: detail}
}
