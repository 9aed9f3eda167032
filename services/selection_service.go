package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"elective-hub/contract"
	"elective-hub/domain"
	apperrors "elective-hub/errors"
	"elective-hub/repositories"
)

// SelectionService is the capacity-safe selection engine. Eligibility is
// checked in order, short-circuiting on the first failure; the seat
// write itself is a conditional insert inside a serializable store
// transaction, which remains the only authority on capacity.
//
// All eligibility and conflict outcomes are typed errors from the
// errors package; only infrastructure failures are anything else.
type SelectionService struct {
	log        *slog.Logger
	roster     repositories.IRosterRepository
	selections repositories.ISelectionRepository
	notifier   contract.INotifier
	now        func() time.Time
}

func NewSelectionService(log *slog.Logger, roster repositories.IRosterRepository,
	selections repositories.ISelectionRepository, notifier contract.INotifier) *SelectionService {
	return &SelectionService{
		log:        log,
		roster:     roster,
		selections: selections,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (s *SelectionService) SetSelection(ctx context.Context, executorID, studentID string,
	electiveID domain.ElectiveID, subjectID domain.SubjectID) error {
	elective, err := s.roster.GetElective(electiveID)
	if err != nil {
		return err
	}
	subject, err := s.roster.GetSubject(subjectID)
	if err != nil {
		return err
	}
	if _, err := s.roster.GetStudent(studentID); err != nil {
		return err
	}

	actingForOther := executorID != studentID
	if actingForOther {
		teaches, err := s.roster.Teaches(executorID, subjectID)
		if err != nil {
			return err
		}
		if !teaches {
			return apperrors.ErrForbidden
		}
	}

	// A teacher acting on the student's behalf may enroll outside the
	// window; everyone else may not.
	if !actingForOther && !elective.WindowOpen(s.now()) {
		return apperrors.NotEligible(apperrors.ReasonDateRange)
	}

	if subject.ElectiveID != electiveID {
		return apperrors.NotEligible(apperrors.ReasonSubjectNotInElective)
	}

	// Fail-fast pre-check only. The conditional insert below re-checks
	// this inside the transaction and is the one that counts.
	if _, held, err := s.selections.Get(studentID, electiveID); err != nil {
		return err
	} else if held {
		return apperrors.ErrAlreadyEnrolled
	}

	if err := s.checkTeam(elective.TeamID, studentID); err != nil {
		return err
	}
	if err := s.checkTeam(subject.TeamID, studentID); err != nil {
		return err
	}

	newCount, err := s.selections.Insert(studentID, electiveID, subjectID, subject.Capacity)
	if err != nil {
		return err
	}

	s.log.Info("Selection set",
		"student", studentID, "elective", electiveID, "subject", subjectID, "enrolled", newCount)
	// Notify after the transaction has committed, never inside it.
	go s.notifier.Notify(electiveID, subjectID, newCount)
	return nil
}

func (s *SelectionService) DeleteSelection(ctx context.Context, executorID, studentID string,
	electiveID domain.ElectiveID) error {
	if _, err := s.roster.GetElective(electiveID); err != nil {
		return err
	}
	if _, err := s.roster.GetStudent(studentID); err != nil {
		return err
	}

	heldSubject, held, err := s.selections.Get(studentID, electiveID)
	if err != nil {
		return err
	}
	if !held {
		return apperrors.ErrNotEnrolled
	}

	if executorID != studentID {
		teaches, err := s.roster.Teaches(executorID, heldSubject)
		if err != nil {
			return err
		}
		if !teaches {
			return apperrors.ErrForbidden
		}
	}

	subjectID, newCount, err := s.selections.Delete(studentID, electiveID)
	if err != nil {
		return err
	}

	s.log.Info("Selection deleted",
		"student", studentID, "elective", electiveID, "subject", subjectID, "enrolled", newCount)
	go s.notifier.Notify(electiveID, subjectID, newCount)
	return nil
}

// EnrolledCounts builds a complete occupancy snapshot for one elective,
// zero counts included.
func (s *SelectionService) EnrolledCounts(electiveID domain.ElectiveID) (domain.Occupancy, error) {
	subjects, err := s.roster.SubjectsOf(electiveID)
	if err != nil {
		return nil, err
	}
	ids := lo.Map(subjects, func(subject domain.Subject, _ int) domain.SubjectID {
		return subject.ID
	})
	return s.selections.EnrolledCounts(electiveID, ids)
}

// Electives passes the roster through so the service satisfies
// contract.IOccupancyReader for the bulk broadcaster.
func (s *SelectionService) Electives() ([]domain.Elective, error) {
	return s.roster.Electives()
}

func (s *SelectionService) checkTeam(teamID *domain.TeamID, studentID string) error {
	if teamID == nil {
		return nil
	}
	member, err := s.roster.IsTeamMember(*teamID, studentID)
	if err != nil {
		return err
	}
	if !member {
		return apperrors.NotEligible(apperrors.ReasonTeamMismatch)
	}
	return nil
}
