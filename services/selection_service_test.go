package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"elective-hub/domain"
	apperrors "elective-hub/errors"
	"elective-hub/mocks"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

type selectionFixture struct {
	roster     *mocks.MockIRosterRepository
	selections *mocks.MockISelectionRepository
	notifier   *mocks.MockINotifier
	service    *SelectionService
}

func newSelectionFixture(t *testing.T) selectionFixture {
	ctrl := gomock.NewController(t)
	f := selectionFixture{
		roster:     mocks.NewMockIRosterRepository(ctrl),
		selections: mocks.NewMockISelectionRepository(ctrl),
		notifier:   mocks.NewMockINotifier(ctrl),
	}
	f.service = NewSelectionService(slog.Default(), f.roster, f.selections, f.notifier)
	f.service.now = func() time.Time { return testNow }
	return f
}

func openElective() domain.Elective {
	return domain.Elective{
		ID:     1,
		Name:   "Robotics Week",
		Starts: testNow.Add(-24 * time.Hour),
		Ends:   testNow.Add(24 * time.Hour),
	}
}

func closedElective() domain.Elective {
	e := openElective()
	e.Ends = testNow.Add(-time.Hour)
	return e
}

func droneSubject() domain.Subject {
	return domain.Subject{ID: 101, ElectiveID: 1, Name: "Drone Assembly", Capacity: 2}
}

func TestSetSelection_StudentEnrollsAndNotifies(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	// Given an open elective with a free seat
	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(openElective(), nil)
	f.roster.EXPECT().GetSubject(domain.SubjectID(101)).Return(droneSubject(), nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)
	f.selections.EXPECT().Get("alice", domain.ElectiveID(1)).Return(domain.SubjectID(0), false, nil)
	f.selections.EXPECT().Insert("alice", domain.ElectiveID(1), domain.SubjectID(101), 2).Return(1, nil)

	// And the registry is told about the new count once committed
	notified := make(chan struct{})
	f.notifier.EXPECT().
		Notify(domain.ElectiveID(1), domain.SubjectID(101), 1).
		Do(func(domain.ElectiveID, domain.SubjectID, int) { close(notified) })

	// When the student enrolls themselves
	err := f.service.SetSelection(context.Background(), "alice", "alice", 1, 101)

	req.NoError(err)
	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("notify never happened")
	}
}

func TestSetSelection_WindowClosedForStudent(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(closedElective(), nil)
	f.roster.EXPECT().GetSubject(domain.SubjectID(101)).Return(droneSubject(), nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)

	// When the student enrolls outside the window
	err := f.service.SetSelection(context.Background(), "alice", "alice", 1, 101)

	// Then the refusal is typed and nothing was written
	var notEligible apperrors.NotEligibleError
	req.ErrorAs(err, &notEligible)
	req.Equal(apperrors.ReasonDateRange, notEligible.Reason)
}

func TestSetSelection_TeacherBypassesWindow(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	// Given a closed window and a teacher acting for the student
	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(closedElective(), nil)
	f.roster.EXPECT().GetSubject(domain.SubjectID(101)).Return(droneSubject(), nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)
	f.roster.EXPECT().Teaches("mr-durand", domain.SubjectID(101)).Return(true, nil)
	f.selections.EXPECT().Get("alice", domain.ElectiveID(1)).Return(domain.SubjectID(0), false, nil)
	f.selections.EXPECT().Insert("alice", domain.ElectiveID(1), domain.SubjectID(101), 2).Return(1, nil)
	f.notifier.EXPECT().Notify(domain.ElectiveID(1), domain.SubjectID(101), 1).AnyTimes()

	err := f.service.SetSelection(context.Background(), "mr-durand", "alice", 1, 101)

	req.NoError(err)
}

func TestSetSelection_ExecutorNotTeachingSubject(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(openElective(), nil)
	f.roster.EXPECT().GetSubject(domain.SubjectID(101)).Return(droneSubject(), nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)
	f.roster.EXPECT().Teaches("mr-lefevre", domain.SubjectID(101)).Return(false, nil)

	// When someone who doesn't teach the subject acts for the student
	err := f.service.SetSelection(context.Background(), "mr-lefevre", "alice", 1, 101)

	req.ErrorIs(err, apperrors.ErrForbidden)
}

func TestSetSelection_SubjectNotInElective(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	foreign := droneSubject()
	foreign.ElectiveID = 2

	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(openElective(), nil)
	f.roster.EXPECT().GetSubject(domain.SubjectID(101)).Return(foreign, nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)

	err := f.service.SetSelection(context.Background(), "alice", "alice", 1, 101)

	var notEligible apperrors.NotEligibleError
	req.ErrorAs(err, &notEligible)
	req.Equal(apperrors.ReasonSubjectNotInElective, notEligible.Reason)
}

func TestSetSelection_AlreadyEnrolledPreCheck(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(openElective(), nil)
	f.roster.EXPECT().GetSubject(domain.SubjectID(101)).Return(droneSubject(), nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)
	f.selections.EXPECT().Get("alice", domain.ElectiveID(1)).Return(domain.SubjectID(102), true, nil)

	err := f.service.SetSelection(context.Background(), "alice", "alice", 1, 101)

	req.ErrorIs(err, apperrors.ErrAlreadyEnrolled)
}

func TestSetSelection_TeamRestrictedSubject(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	seniors := domain.TeamID(7)
	restricted := droneSubject()
	restricted.TeamID = &seniors

	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(openElective(), nil)
	f.roster.EXPECT().GetSubject(domain.SubjectID(101)).Return(restricted, nil)
	f.roster.EXPECT().GetStudent("carol").Return(domain.Student{ID: "carol"}, nil)
	f.selections.EXPECT().Get("carol", domain.ElectiveID(1)).Return(domain.SubjectID(0), false, nil)
	f.roster.EXPECT().IsTeamMember(seniors, "carol").Return(false, nil)

	// When a student outside the team tries the restricted subject
	err := f.service.SetSelection(context.Background(), "carol", "carol", 1, 101)

	var notEligible apperrors.NotEligibleError
	req.ErrorAs(err, &notEligible)
	req.Equal(apperrors.ReasonTeamMismatch, notEligible.Reason)
}

func TestSetSelection_SubjectFullSurfaces(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(openElective(), nil)
	f.roster.EXPECT().GetSubject(domain.SubjectID(101)).Return(droneSubject(), nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)
	f.selections.EXPECT().Get("alice", domain.ElectiveID(1)).Return(domain.SubjectID(0), false, nil)
	f.selections.EXPECT().Insert("alice", domain.ElectiveID(1), domain.SubjectID(101), 2).
		Return(0, apperrors.ErrSubjectFull)

	// When the transactional guard refuses the seat
	err := f.service.SetSelection(context.Background(), "alice", "alice", 1, 101)

	// Then the conflict reaches the caller untouched, with no notify
	req.ErrorIs(err, apperrors.ErrSubjectFull)
}

func TestSetSelection_UnknownElective(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	f.roster.EXPECT().GetElective(domain.ElectiveID(9)).
		Return(domain.Elective{}, apperrors.NotFound(apperrors.EntityElective))

	err := f.service.SetSelection(context.Background(), "alice", "alice", 9, 101)

	var notFound apperrors.NotFoundError
	req.ErrorAs(err, &notFound)
}

func TestDeleteSelection_StudentWithdrawsAndNotifies(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(openElective(), nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)
	f.selections.EXPECT().Get("alice", domain.ElectiveID(1)).Return(domain.SubjectID(101), true, nil)
	f.selections.EXPECT().Delete("alice", domain.ElectiveID(1)).Return(domain.SubjectID(101), 0, nil)

	notified := make(chan struct{})
	f.notifier.EXPECT().
		Notify(domain.ElectiveID(1), domain.SubjectID(101), 0).
		Do(func(domain.ElectiveID, domain.SubjectID, int) { close(notified) })

	err := f.service.DeleteSelection(context.Background(), "alice", "alice", 1)

	req.NoError(err)
	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("notify never happened")
	}
}

func TestDeleteSelection_NotEnrolled(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(openElective(), nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)
	f.selections.EXPECT().Get("alice", domain.ElectiveID(1)).Return(domain.SubjectID(0), false, nil)

	err := f.service.DeleteSelection(context.Background(), "alice", "alice", 1)

	req.ErrorIs(err, apperrors.ErrNotEnrolled)
}

func TestDeleteSelection_TeacherMustTeachHeldSubject(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	f.roster.EXPECT().GetElective(domain.ElectiveID(1)).Return(openElective(), nil)
	f.roster.EXPECT().GetStudent("alice").Return(domain.Student{ID: "alice"}, nil)
	f.selections.EXPECT().Get("alice", domain.ElectiveID(1)).Return(domain.SubjectID(101), true, nil)
	f.roster.EXPECT().Teaches("mr-lefevre", domain.SubjectID(101)).Return(false, nil)

	// When a teacher of a different subject tries to withdraw the student
	err := f.service.DeleteSelection(context.Background(), "mr-lefevre", "alice", 1)

	req.ErrorIs(err, apperrors.ErrForbidden)
}

func TestEnrolledCounts_SnapshotsAllSubjects(t *testing.T) {
	req := require.New(t)
	f := newSelectionFixture(t)

	f.roster.EXPECT().SubjectsOf(domain.ElectiveID(1)).Return([]domain.Subject{
		{ID: 101, ElectiveID: 1}, {ID: 102, ElectiveID: 1},
	}, nil)
	f.selections.EXPECT().
		EnrolledCounts(domain.ElectiveID(1), []domain.SubjectID{101, 102}).
		Return(domain.Occupancy{101: 2, 102: 0}, nil)

	counts, err := f.service.EnrolledCounts(1)

	req.NoError(err)
	req.Equal(domain.Occupancy{101: 2, 102: 0}, counts)
}
