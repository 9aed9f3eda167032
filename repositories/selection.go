//go:generate go run go.uber.org/mock/mockgen -source=selection.go -destination=../mocks/mock_selection_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"elective-hub/domain"
	apperrors "elective-hub/errors"
)

// Key layout. One selection key per (elective, student) pair makes the
// single-selection invariant a plain key collision; one count key per
// (elective, subject) makes every concurrent seat write for the same
// subject a write-write conflict Badger's SSI detects at commit.
//
//	sel:{electiveID}:{studentID}  -> subjectID
//	cnt:{electiveID}:{subjectID}  -> enrolled count
type ISelectionRepository interface {
	Get(studentID string, electiveID domain.ElectiveID) (domain.SubjectID, bool, error)
	Insert(studentID string, electiveID domain.ElectiveID, subjectID domain.SubjectID, capacity int) (int, error)
	Delete(studentID string, electiveID domain.ElectiveID) (domain.SubjectID, int, error)
	EnrolledCounts(electiveID domain.ElectiveID, subjectIDs []domain.SubjectID) (domain.Occupancy, error)
}

type SelectionRepository struct {
	db      *badger.DB
	log     *slog.Logger
	retries int
}

// NewSelectionRepository wraps the store. retries bounds how often a
// seat transaction is retried after a serialization conflict.
func NewSelectionRepository(db *badger.DB, log *slog.Logger, retries int) SelectionRepository {
	if retries < 1 {
		retries = 1
	}
	return SelectionRepository{db: db, log: log, retries: retries}
}

func selectionKey(electiveID domain.ElectiveID, studentID string) []byte {
	return []byte(fmt.Sprintf("sel:%d:%s", electiveID, studentID))
}

func countKey(electiveID domain.ElectiveID, subjectID domain.SubjectID) []byte {
	return []byte(fmt.Sprintf("cnt:%d:%d", electiveID, subjectID))
}

func (r SelectionRepository) Get(studentID string, electiveID domain.ElectiveID) (domain.SubjectID, bool, error) {
	var subjectID domain.SubjectID
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		id, ok, err := readSelection(txn, electiveID, studentID)
		if err != nil {
			return err
		}
		subjectID, found = id, ok
		return nil
	})
	return subjectID, found, err
}

// Insert is the authoritative capacity guard: inside one serializable
// transaction it re-checks the single-selection invariant, reads the
// enrolled count, and inserts only if count < capacity. A conflicting
// commit surfaces as badger.ErrConflict and is retried a bounded number
// of times. Returns the post-insert enrolled count.
func (r SelectionRepository) Insert(studentID string, electiveID domain.ElectiveID, subjectID domain.SubjectID, capacity int) (int, error) {
	var newCount int
	err := r.withRetry(func(txn *badger.Txn) error {
		_, held, err := readSelection(txn, electiveID, studentID)
		if err != nil {
			return err
		}
		if held {
			return apperrors.ErrAlreadyEnrolled
		}

		n, err := readCount(txn, electiveID, subjectID)
		if err != nil {
			return err
		}
		if n >= capacity {
			// Full at commit time. No writes happened, so the
			// transaction aborts cleanly.
			return apperrors.ErrSubjectFull
		}

		value := []byte(strconv.FormatInt(int64(subjectID), 10))
		if err := txn.Set(selectionKey(electiveID, studentID), value); err != nil {
			return err
		}
		newCount = n + 1
		return txn.Set(countKey(electiveID, subjectID), []byte(strconv.Itoa(newCount)))
	})
	if err != nil {
		return 0, err
	}
	return newCount, nil
}

// Delete removes the student's selection for the elective and returns
// the subject it held together with the decremented enrolled count.
func (r SelectionRepository) Delete(studentID string, electiveID domain.ElectiveID) (domain.SubjectID, int, error) {
	var subjectID domain.SubjectID
	var newCount int
	err := r.withRetry(func(txn *badger.Txn) error {
		id, held, err := readSelection(txn, electiveID, studentID)
		if err != nil {
			return err
		}
		if !held {
			return apperrors.ErrNotEnrolled
		}
		subjectID = id

		n, err := readCount(txn, electiveID, subjectID)
		if err != nil {
			return err
		}
		if err := txn.Delete(selectionKey(electiveID, studentID)); err != nil {
			return err
		}
		newCount = n - 1
		if newCount < 0 {
			newCount = 0
		}
		return txn.Set(countKey(electiveID, subjectID), []byte(strconv.Itoa(newCount)))
	})
	if err != nil {
		return 0, 0, err
	}
	return subjectID, newCount, nil
}

// EnrolledCounts reads all counts for one elective in a single view.
// Subjects with no count key yet report zero, so the result is a
// complete snapshot.
func (r SelectionRepository) EnrolledCounts(electiveID domain.ElectiveID, subjectIDs []domain.SubjectID) (domain.Occupancy, error) {
	occupancy := make(domain.Occupancy, len(subjectIDs))
	err := r.db.View(func(txn *badger.Txn) error {
		for _, subjectID := range subjectIDs {
			n, err := readCount(txn, electiveID, subjectID)
			if err != nil {
				return err
			}
			occupancy[subjectID] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return occupancy, nil
}

// withRetry runs fn in a read-write transaction, retrying only on
// serialization conflicts. Domain outcomes pass through untouched.
func (r SelectionRepository) withRetry(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < r.retries; attempt++ {
		err = r.db.Update(fn)
		if !stderrors.Is(err, badger.ErrConflict) {
			return err
		}
		r.log.Debug("Seat transaction conflict, retrying", "attempt", attempt+1)
	}
	return fmt.Errorf("seat transaction: retries exhausted: %w", err)
}

func readSelection(txn *badger.Txn, electiveID domain.ElectiveID, studentID string) (domain.SubjectID, bool, error) {
	item, err := txn.Get(selectionKey(electiveID, studentID))
	if err == badger.ErrKeyNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	var subjectID domain.SubjectID
	err = item.Value(func(value []byte) error {
		id, err := strconv.ParseInt(string(value), 10, 64)
		if err != nil {
			return fmt.Errorf("corrupt selection value %q: %w", value, err)
		}
		subjectID = domain.SubjectID(id)
		return nil
	})
	return subjectID, err == nil, err
}

func readCount(txn *badger.Txn, electiveID domain.ElectiveID, subjectID domain.SubjectID) (int, error) {
	item, err := txn.Get(countKey(electiveID, subjectID))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var n int
	err = item.Value(func(value []byte) error {
		parsed, err := strconv.Atoi(string(value))
		if err != nil {
			return fmt.Errorf("corrupt count value %q: %w", value, err)
		}
		n = parsed
		return nil
	})
	return n, err
}
