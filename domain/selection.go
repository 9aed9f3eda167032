package domain

import "maps"

// Selection is a student's chosen subject within one elective.
// At most one selection exists per (student, elective) pair; the
// selection repository enforces this with a single key per pair.
type Selection struct {
	StudentID  string     `json:"student_id"`
	ElectiveID ElectiveID `json:"elective_id"`
	SubjectID  SubjectID  `json:"subject_id"`
}

// Occupancy maps every subject of one elective to its enrolled count.
// Subjects with no holders are present with a zero count so that a
// snapshot built from it is complete.
type Occupancy map[SubjectID]int

// Equal is structural equality, used to deduplicate bulk snapshots.
func (o Occupancy) Equal(other Occupancy) bool {
	return maps.Equal(o, other)
}

// Clone returns an independent copy safe to retain across ticks.
func (o Occupancy) Clone() Occupancy {
	return maps.Clone(o)
}
