package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"elective-hub/contract"
	"elective-hub/domain"
	"elective-hub/gateway/wire"
)

// BulkBroadcastWorker periodically publishes a full occupancy snapshot
// per elective to every live connection. It is a separate delivery path
// from targeted notifies: a freshly connected client gets a complete
// picture on the next tick without needing any history.
//
// A snapshot structurally identical to the one last delivered on this
// broadcast stream is suppressed. The dedup state is shared across
// connections and cleared whenever the connection set changes, so a new
// connection always receives a full snapshot on its first tick.
type BulkBroadcastWorker struct {
	log      *slog.Logger
	conns    contract.IConnectionSource
	reader   contract.IOccupancyReader
	interval time.Duration
	enabled  atomic.Bool

	lastGen uint64
	last    map[domain.ElectiveID]wire.BulkSubjectEnrollmentUpdate
}

func NewBulkBroadcastWorker(log *slog.Logger, conns contract.IConnectionSource,
	reader contract.IOccupancyReader, interval time.Duration, enabled bool) *BulkBroadcastWorker {
	w := &BulkBroadcastWorker{
		log:      log,
		conns:    conns,
		reader:   reader,
		interval: interval,
		last:     make(map[domain.ElectiveID]wire.BulkSubjectEnrollmentUpdate),
	}
	w.enabled.Store(enabled)
	return w
}

// SetEnabled is the administrative toggle. Disabled ticks skip entirely,
// store reads included.
func (w *BulkBroadcastWorker) SetEnabled(enabled bool) {
	w.enabled.Store(enabled)
}

// Run ticks until the context is cancelled. Work happens synchronously
// inside the loop, so a slow pass drops ticks instead of queueing them.
func (w *BulkBroadcastWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping bulk broadcast")
			return nil
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *BulkBroadcastWorker) tick() {
	if !w.enabled.Load() {
		return
	}
	if w.conns.Count() == 0 {
		return
	}

	// Membership changed since the last pass: forget what was delivered
	// so newcomers get the full picture.
	if gen := w.conns.Generation(); gen != w.lastGen {
		clear(w.last)
		w.lastGen = gen
	}

	electives, err := w.reader.Electives()
	if err != nil {
		w.log.Warn("Bulk broadcast skipped, roster read failed", "error", err)
		return
	}
	sinks := w.conns.Sinks()

	for _, elective := range electives {
		occupancy, err := w.reader.EnrolledCounts(elective.ID)
		if err != nil {
			w.log.Warn("Occupancy read failed", "elective", elective.ID, "error", err)
			continue
		}

		snapshot := wire.BulkSubjectEnrollmentUpdate{
			ElectiveID:            elective.ID,
			SubjectEnrolledCounts: occupancy,
		}
		if prev, ok := w.last[elective.ID]; ok && prev.Equal(snapshot) {
			continue
		}

		env := wire.Envelope{Type: wire.TypeBulkSubjectEnrollmentUpdate, Bulk: &snapshot}
		for _, sink := range sinks {
			if !sink.TrySend(env) {
				w.log.Debug("Bulk snapshot dropped for slow consumer",
					"user", sink.UserID(), "elective", elective.ID)
			}
		}
		w.last[elective.ID] = snapshot
	}
}
