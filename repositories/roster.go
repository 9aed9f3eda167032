//go:generate go run go.uber.org/mock/mockgen -source=roster.go -destination=../mocks/mock_roster_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"elective-hub/domain"
	apperrors "elective-hub/errors"
)

// Key layout. Roster entities are JSON values; membership and teaching
// relations are bare keys so existence checks are a single Get.
//
//	elective:{electiveID}                 -> Elective
//	subject:{subjectID}                   -> Subject
//	idx:subject:{electiveID}:{subjectID}  -> (empty, secondary index)
//	student:{studentID}                   -> Student
//	teacher:{teacherID}                   -> Teacher
//	team:{teamID}:member:{userID}         -> (empty)
//	teach:{teacherID}:{subjectID}         -> (empty)
type IRosterRepository interface {
	PutElective(e domain.Elective) error
	GetElective(id domain.ElectiveID) (domain.Elective, error)
	Electives() ([]domain.Elective, error)
	PutSubject(s domain.Subject) error
	GetSubject(id domain.SubjectID) (domain.Subject, error)
	SubjectsOf(electiveID domain.ElectiveID) ([]domain.Subject, error)
	PutStudent(s domain.Student) error
	GetStudent(id string) (domain.Student, error)
	PutTeacher(t domain.Teacher) error
	GetTeacher(id string) (domain.Teacher, error)
	AddTeamMember(teamID domain.TeamID, userID string) error
	IsTeamMember(teamID domain.TeamID, userID string) (bool, error)
	SetTeaches(teacherID string, subjectID domain.SubjectID) error
	Teaches(teacherID string, subjectID domain.SubjectID) (bool, error)
}

type RosterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRosterRepository(db *badger.DB, log *slog.Logger) RosterRepository {
	return RosterRepository{db: db, log: log}
}

func electiveKey(id domain.ElectiveID) []byte {
	return []byte(fmt.Sprintf("elective:%d", id))
}

func subjectKey(id domain.SubjectID) []byte {
	return []byte(fmt.Sprintf("subject:%d", id))
}

func subjectIndexKey(electiveID domain.ElectiveID, subjectID domain.SubjectID) []byte {
	return []byte(fmt.Sprintf("idx:subject:%d:%d", electiveID, subjectID))
}

func studentKey(id string) []byte {
	return []byte("student:" + id)
}

func teacherKey(id string) []byte {
	return []byte("teacher:" + id)
}

func teamMemberKey(teamID domain.TeamID, userID string) []byte {
	return []byte(fmt.Sprintf("team:%d:member:%s", teamID, userID))
}

func teachesKey(teacherID string, subjectID domain.SubjectID) []byte {
	return []byte(fmt.Sprintf("teach:%s:%d", teacherID, subjectID))
}

func (r RosterRepository) putJSON(key []byte, v any) error {
	bytes, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, bytes)
	})
}

func (r RosterRepository) getJSON(key []byte, v any, entity apperrors.Entity) error {
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, v)
		})
	})
	if err == badger.ErrKeyNotFound {
		return apperrors.NotFound(entity)
	}
	return err
}

func (r RosterRepository) PutElective(e domain.Elective) error {
	return r.putJSON(electiveKey(e.ID), e)
}

func (r RosterRepository) GetElective(id domain.ElectiveID) (domain.Elective, error) {
	var e domain.Elective
	err := r.getJSON(electiveKey(id), &e, apperrors.EntityElective)
	return e, err
}

func (r RosterRepository) Electives() ([]domain.Elective, error) {
	var electives []domain.Elective
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte("elective:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var e domain.Elective
				if err := json.Unmarshal(value, &e); err != nil {
					return err
				}
				electives = append(electives, e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return electives, err
}

func (r RosterRepository) PutSubject(s domain.Subject) error {
	if err := r.putJSON(subjectKey(s.ID), s); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(subjectIndexKey(s.ElectiveID, s.ID), nil)
	})
}

func (r RosterRepository) GetSubject(id domain.SubjectID) (domain.Subject, error) {
	var s domain.Subject
	err := r.getJSON(subjectKey(id), &s, apperrors.EntitySubject)
	return s, err
}

// SubjectsOf resolves the secondary index, then loads each subject.
func (r RosterRepository) SubjectsOf(electiveID domain.ElectiveID) ([]domain.Subject, error) {
	var ids []domain.SubjectID
	prefixStr := fmt.Sprintf("idx:subject:%d:", electiveID)
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		prefix := []byte(prefixStr)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			raw := string(it.Item().Key()[len(prefixStr):])
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("corrupt subject index key %q: %w", raw, err)
			}
			ids = append(ids, domain.SubjectID(id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	subjects := make([]domain.Subject, 0, len(ids))
	for _, id := range ids {
		s, err := r.GetSubject(id)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

func (r RosterRepository) PutStudent(s domain.Student) error {
	return r.putJSON(studentKey(s.ID), s)
}

func (r RosterRepository) GetStudent(id string) (domain.Student, error) {
	var s domain.Student
	err := r.getJSON(studentKey(id), &s, apperrors.EntityStudent)
	return s, err
}

func (r RosterRepository) PutTeacher(t domain.Teacher) error {
	return r.putJSON(teacherKey(t.ID), t)
}

func (r RosterRepository) GetTeacher(id string) (domain.Teacher, error) {
	var t domain.Teacher
	err := r.getJSON(teacherKey(id), &t, apperrors.EntityTeacher)
	return t, err
}

func (r RosterRepository) AddTeamMember(teamID domain.TeamID, userID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(teamMemberKey(teamID, userID), nil)
	})
}

func (r RosterRepository) IsTeamMember(teamID domain.TeamID, userID string) (bool, error) {
	return r.exists(teamMemberKey(teamID, userID))
}

func (r RosterRepository) SetTeaches(teacherID string, subjectID domain.SubjectID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(teachesKey(teacherID, subjectID), nil)
	})
}

func (r RosterRepository) Teaches(teacherID string, subjectID domain.SubjectID) (bool, error) {
	return r.exists(teachesKey(teacherID, subjectID))
}

func (r RosterRepository) exists(key []byte) (bool, error) {
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}
