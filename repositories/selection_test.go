package repositories

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"elective-hub/domain"
	apperrors "elective-hub/errors"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSelectionRepository_Insert_And_Get(t *testing.T) {
	req := require.New(t)
	repo := NewSelectionRepository(newTestDB(t), slog.Default(), 3)

	// Given no selection
	_, held, err := repo.Get("alice", 1)
	req.NoError(err)
	req.False(held)

	// When the student takes a seat
	newCount, err := repo.Insert("alice", 1, 101, 2)

	// Then the selection is visible and counted
	req.NoError(err)
	req.Equal(1, newCount)

	subjectID, held, err := repo.Get("alice", 1)
	req.NoError(err)
	req.True(held)
	req.Equal(domain.SubjectID(101), subjectID)
}

func TestSelectionRepository_Insert_SecondSelectionSameElective(t *testing.T) {
	req := require.New(t)
	repo := NewSelectionRepository(newTestDB(t), slog.Default(), 3)

	_, err := repo.Insert("alice", 1, 101, 5)
	req.NoError(err)

	// When the same student picks another subject in the same elective
	_, err = repo.Insert("alice", 1, 102, 5)

	// Then the single-selection invariant holds
	req.ErrorIs(err, apperrors.ErrAlreadyEnrolled)

	subjectID, held, err := repo.Get("alice", 1)
	req.NoError(err)
	req.True(held)
	req.Equal(domain.SubjectID(101), subjectID)
}

func TestSelectionRepository_Insert_DifferentElectivesAreIndependent(t *testing.T) {
	req := require.New(t)
	repo := NewSelectionRepository(newTestDB(t), slog.Default(), 3)

	_, err := repo.Insert("alice", 1, 101, 5)
	req.NoError(err)

	// A selection in another elective is a different row entirely
	_, err = repo.Insert("alice", 2, 201, 5)
	req.NoError(err)
}

func TestSelectionRepository_Insert_FullSubject(t *testing.T) {
	req := require.New(t)
	repo := NewSelectionRepository(newTestDB(t), slog.Default(), 3)

	// Given a subject with one seat, already taken
	_, err := repo.Insert("alice", 1, 101, 1)
	req.NoError(err)

	// When another student tries
	_, err = repo.Insert("bob", 1, 101, 1)

	req.ErrorIs(err, apperrors.ErrSubjectFull)
	counts, err := repo.EnrolledCounts(1, []domain.SubjectID{101})
	req.NoError(err)
	req.Equal(1, counts[101])
}

func TestSelectionRepository_Delete(t *testing.T) {
	req := require.New(t)
	repo := NewSelectionRepository(newTestDB(t), slog.Default(), 3)

	_, err := repo.Insert("alice", 1, 101, 2)
	req.NoError(err)

	// When the selection is withdrawn
	subjectID, newCount, err := repo.Delete("alice", 1)

	// Then the seat frees up and the subject is reported back
	req.NoError(err)
	req.Equal(domain.SubjectID(101), subjectID)
	req.Zero(newCount)

	_, held, err := repo.Get("alice", 1)
	req.NoError(err)
	req.False(held)

	// And the seat can be taken again
	_, err = repo.Insert("bob", 1, 101, 1)
	req.NoError(err)
}

func TestSelectionRepository_Delete_NotEnrolled(t *testing.T) {
	req := require.New(t)
	repo := NewSelectionRepository(newTestDB(t), slog.Default(), 3)

	_, _, err := repo.Delete("alice", 1)

	req.ErrorIs(err, apperrors.ErrNotEnrolled)
}

func TestSelectionRepository_EnrolledCounts_ZeroForUntouchedSubjects(t *testing.T) {
	req := require.New(t)
	repo := NewSelectionRepository(newTestDB(t), slog.Default(), 3)

	_, err := repo.Insert("alice", 1, 101, 5)
	req.NoError(err)

	// The snapshot is complete: subjects nobody picked report zero
	counts, err := repo.EnrolledCounts(1, []domain.SubjectID{101, 102, 103})
	req.NoError(err)
	req.Equal(domain.Occupancy{101: 1, 102: 0, 103: 0}, counts)
}

func TestSelectionRepository_ConcurrentInserts_NeverOverCapacity(t *testing.T) {
	req := require.New(t)
	// Generous retry budget: the test wants every serialization conflict
	// resolved so only capacity refusals remain.
	repo := NewSelectionRepository(newTestDB(t), slog.Default(), 50)

	const students = 10
	const capacity = 3

	var wg sync.WaitGroup
	results := make(chan error, students)
	for i := 0; i < students; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.Insert(fmt.Sprintf("student-%d", n), 1, 101, capacity)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	admitted, refused := 0, 0
	for err := range results {
		switch {
		case err == nil:
			admitted++
		default:
			req.ErrorIs(err, apperrors.ErrSubjectFull)
			refused++
		}
	}

	// Then exactly capacity students hold seats, never more
	req.Equal(capacity, admitted)
	req.Equal(students-capacity, refused)

	counts, err := repo.EnrolledCounts(1, []domain.SubjectID{101})
	req.NoError(err)
	req.Equal(capacity, counts[101])
}

func TestSelectionRepository_ConcurrentSameStudent_SingleSelection(t *testing.T) {
	req := require.New(t)
	repo := NewSelectionRepository(newTestDB(t), slog.Default(), 50)

	// The same student races against themselves across two subjects
	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, subjectID := range []domain.SubjectID{101, 102} {
		wg.Add(1)
		go func(id domain.SubjectID) {
			defer wg.Done()
			_, err := repo.Insert("alice", 1, id, 5)
			results <- err
		}(subjectID)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			req.ErrorIs(err, apperrors.ErrAlreadyEnrolled)
		}
	}
	req.Equal(1, succeeded)

	counts, err := repo.EnrolledCounts(1, []domain.SubjectID{101, 102})
	req.NoError(err)
	req.Equal(1, counts[101]+counts[102])
}
