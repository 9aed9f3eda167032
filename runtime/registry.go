// Package runtime holds the process-local fan-out state and the
// supervised background workers. Nothing here is shared across
// processes; a multi-instance deployment would need a distributed
// fan-out layer on top.
package runtime

import (
	"fmt"
	"log/slog"
	"sync"

	"elective-hub/contract"
	"elective-hub/domain"
	apperrors "elective-hub/errors"
	"elective-hub/gateway/wire"
)

type sinkSet map[contract.UpdateSink]struct{}

// Registry maps (elective, subject) pairs to the connections interested
// in them. A subscribe call replaces the connection's whole subscription
// set under one lock: old registrations are fully removed before new
// ones are installed, so there is no window in which both generations
// are live.
type Registry struct {
	mu    sync.RWMutex
	log   *slog.Logger
	limit int

	bySubject map[domain.ElectiveID]map[domain.SubjectID]sinkSet
	bySink    map[contract.UpdateSink]map[domain.ElectiveID][]domain.SubjectID
}

// NewRegistry builds an empty registry. limit caps the total number of
// subject subscriptions one connection may hold across all electives.
func NewRegistry(log *slog.Logger, limit int) *Registry {
	return &Registry{
		log:       log,
		limit:     limit,
		bySubject: make(map[domain.ElectiveID]map[domain.SubjectID]sinkSet),
		bySink:    make(map[contract.UpdateSink]map[domain.ElectiveID][]domain.SubjectID),
	}
}

// Validate checks a prospective subscription set against the cap
// without installing anything. The handler calls it before
// acknowledging, so an over-limit request is refused with nothing sent
// back.
func (r *Registry) Validate(subs map[domain.ElectiveID][]domain.SubjectID) error {
	total := 0
	for _, subjectIDs := range subs {
		total += len(subjectIDs)
	}
	if total > r.limit {
		return apperrors.ProtocolViolation(
			fmt.Sprintf("subscription limit exceeded: %d > %d", total, r.limit))
	}
	return nil
}

// Replace swaps the sink's subscriptions wholesale. Exceeding the
// subscription cap is a protocol violation: the caller must close the
// connection, not merely skip the request.
func (r *Registry) Replace(sink contract.UpdateSink, subs map[domain.ElectiveID][]domain.SubjectID) error {
	if err := r.Validate(subs); err != nil {
		return err
	}

	total := 0
	for _, subjectIDs := range subs {
		total += len(subjectIDs)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeLocked(sink)

	for electiveID, subjectIDs := range subs {
		for _, subjectID := range subjectIDs {
			subjects, ok := r.bySubject[electiveID]
			if !ok {
				subjects = make(map[domain.SubjectID]sinkSet)
				r.bySubject[electiveID] = subjects
			}
			sinks, ok := subjects[subjectID]
			if !ok {
				sinks = make(sinkSet)
				subjects[subjectID] = sinks
			}
			sinks[sink] = struct{}{}
		}
	}
	if total > 0 {
		r.bySink[sink] = subs
	}
	return nil
}

// RemoveAll clears every registration for the sink. Registered as a
// connection cleanup callback, so it also runs on teardown.
func (r *Registry) RemoveAll(sink contract.UpdateSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(sink)
}

// Notify fans an occupancy change out to every sink subscribed to the
// subject. Enqueueing is non-blocking: a slow consumer loses the update
// instead of stalling the notifier or its neighbours.
func (r *Registry) Notify(electiveID domain.ElectiveID, subjectID domain.SubjectID, count int) {
	r.mu.RLock()
	var targets []contract.UpdateSink
	if subjects, ok := r.bySubject[electiveID]; ok {
		for sink := range subjects[subjectID] {
			targets = append(targets, sink)
		}
	}
	r.mu.RUnlock()

	if len(targets) == 0 {
		return
	}
	env := wire.NewSubjectUpdate(electiveID, subjectID, count)
	for _, sink := range targets {
		if !sink.TrySend(env) {
			r.log.Debug("Occupancy update dropped for slow consumer",
				"user", sink.UserID(), "elective", electiveID, "subject", subjectID)
		}
	}
}

// Subscribed reports the sink's current subscription count.
func (r *Registry) Subscribed(sink contract.UpdateSink) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, subjectIDs := range r.bySink[sink] {
		total += len(subjectIDs)
	}
	return total
}

func (r *Registry) removeLocked(sink contract.UpdateSink) {
	for electiveID, subjectIDs := range r.bySink[sink] {
		subjects, ok := r.bySubject[electiveID]
		if !ok {
			continue
		}
		for _, subjectID := range subjectIDs {
			if sinks, ok := subjects[subjectID]; ok {
				delete(sinks, sink)
				if len(sinks) == 0 {
					delete(subjects, subjectID)
				}
			}
		}
		// No empty maps left behind, so idle electives cost nothing.
		if len(subjects) == 0 {
			delete(r.bySubject, electiveID)
		}
	}
	delete(r.bySink, sink)
}
