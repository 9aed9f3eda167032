//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"elective-hub/domain"
	"elective-hub/gateway/wire"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself; the supervisor recovers panics and
// restarts it.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// UpdateSink is the outgoing half of one live connection. Send blocks
// until the envelope is enqueued (or the connection dies); TrySend never
// blocks and reports whether the envelope was enqueued.
type UpdateSink interface {
	UserID() string
	Send(env wire.Envelope) error
	TrySend(env wire.Envelope) bool
	Close() error
}

// IRegistry maps (elective, subject) pairs to the sinks interested in
// them. Replace swaps a sink's whole subscription set atomically;
// Validate checks a set against the cap without installing it.
type IRegistry interface {
	Validate(subs map[domain.ElectiveID][]domain.SubjectID) error
	Replace(sink UpdateSink, subs map[domain.ElectiveID][]domain.SubjectID) error
	RemoveAll(sink UpdateSink)
	Notify(electiveID domain.ElectiveID, subjectID domain.SubjectID, count int)
}

// INotifier is the part of IRegistry the selection engine needs.
type INotifier interface {
	Notify(electiveID domain.ElectiveID, subjectID domain.SubjectID, count int)
}

type ISelectionService interface {
	SetSelection(ctx context.Context, executorID, studentID string, electiveID domain.ElectiveID, subjectID domain.SubjectID) error
	DeleteSelection(ctx context.Context, executorID, studentID string, electiveID domain.ElectiveID) error
	EnrolledCounts(electiveID domain.ElectiveID) (domain.Occupancy, error)
}

// IConnectionSource is what the bulk broadcaster needs from the
// connection manager. Generation changes whenever the set of live
// connections changes.
type IConnectionSource interface {
	Count() int
	Sinks() []UpdateSink
	Generation() uint64
}

// IOccupancyReader is the read pass the bulk broadcaster performs
// against the store each tick.
type IOccupancyReader interface {
	Electives() ([]domain.Elective, error)
	EnrolledCounts(electiveID domain.ElectiveID) (domain.Occupancy, error)
}

type ITokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}
