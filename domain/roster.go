package domain

import "time"

type ElectiveID int64
type SubjectID int64
type TeamID int64

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

// Elective is a time-boxed offering containing subjects students choose among.
// A nil TeamID means the elective is open to every student.
type Elective struct {
	ID     ElectiveID `json:"id"`
	Name   string     `json:"name"`
	Starts time.Time  `json:"starts"`
	Ends   time.Time  `json:"ends"`
	TeamID *TeamID    `json:"team_id,omitempty"`
}

// WindowOpen reports whether enrollment is open at the given instant.
func (e Elective) WindowOpen(at time.Time) bool {
	return !at.Before(e.Starts) && !at.After(e.Ends)
}

// Subject is one enrollable option within an elective, with a seat capacity.
type Subject struct {
	ID         SubjectID  `json:"id"`
	ElectiveID ElectiveID `json:"elective_id"`
	Name       string     `json:"name"`
	Capacity   int        `json:"capacity"`
	TeamID     *TeamID    `json:"team_id,omitempty"`
}

type Student struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash,omitempty"`
}

type Teacher struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// Identity is the result of verifying a session token.
type Identity struct {
	UserID string
	Role   Role
}
