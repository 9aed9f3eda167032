// Package wire defines the binary envelope exchanged on a gateway
// connection. Frames are type-tagged JSON carried in websocket binary
// messages; decoding is strict so that any malformed or ambiguous frame
// is a protocol violation rather than a silent partial read.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"elective-hub/domain"
)

type Type string

const (
	TypeIdentify                    Type = "identify"
	TypeSubscriptionRequest         Type = "subscription_request"
	TypeAcknowledged                Type = "acknowledged"
	TypeSubjectEnrollmentUpdate     Type = "subject_enrollment_update"
	TypeBulkSubjectEnrollmentUpdate Type = "bulk_subject_enrollment_update"
)

// ServerOnly reports whether a payload may only travel server→client.
// Receiving one of these from a client is a protocol violation.
func (t Type) ServerOnly() bool {
	switch t {
	case TypeAcknowledged, TypeSubjectEnrollmentUpdate, TypeBulkSubjectEnrollmentUpdate:
		return true
	}
	return false
}

// Envelope is the unit of wire exchange. Exactly one payload field is
// set, matching Type. MessageID is an optional correlation id echoed
// back on Acknowledged.
type Envelope struct {
	Type      Type    `json:"type"`
	MessageID *string `json:"message_id,omitempty"`

	Identify  *Identify                    `json:"identify,omitempty"`
	Subscribe *SubscriptionRequest         `json:"subscribe,omitempty"`
	Update    *SubjectEnrollmentUpdate     `json:"update,omitempty"`
	Bulk      *BulkSubjectEnrollmentUpdate `json:"bulk,omitempty"`
}

type Identify struct {
	Token string `json:"token"`
}

type SubscriptionRequest struct {
	Subscriptions map[domain.ElectiveID][]domain.SubjectID `json:"subscriptions"`
}

type SubjectEnrollmentUpdate struct {
	ElectiveID    domain.ElectiveID `json:"elective_id"`
	SubjectID     domain.SubjectID  `json:"subject_id"`
	EnrolledCount int               `json:"enrolled_count"`
}

type BulkSubjectEnrollmentUpdate struct {
	ElectiveID            domain.ElectiveID         `json:"elective_id"`
	SubjectEnrolledCounts map[domain.SubjectID]int  `json:"subject_enrolled_counts"`
}

// Equal is structural equality of the decoded message, not wire
// identity. The bulk broadcaster uses it to suppress redundant snapshots.
func (b BulkSubjectEnrollmentUpdate) Equal(other BulkSubjectEnrollmentUpdate) bool {
	return b.ElectiveID == other.ElectiveID &&
		maps.Equal(b.SubjectEnrolledCounts, other.SubjectEnrolledCounts)
}

func NewIdentify(token string) Envelope {
	return Envelope{Type: TypeIdentify, Identify: &Identify{Token: token}}
}

func NewSubscriptionRequest(messageID *string, subs map[domain.ElectiveID][]domain.SubjectID) Envelope {
	return Envelope{
		Type:      TypeSubscriptionRequest,
		MessageID: messageID,
		Subscribe: &SubscriptionRequest{Subscriptions: subs},
	}
}

func NewAcknowledged(messageID *string) Envelope {
	return Envelope{Type: TypeAcknowledged, MessageID: messageID}
}

func NewSubjectUpdate(electiveID domain.ElectiveID, subjectID domain.SubjectID, count int) Envelope {
	return Envelope{
		Type: TypeSubjectEnrollmentUpdate,
		Update: &SubjectEnrollmentUpdate{
			ElectiveID:    electiveID,
			SubjectID:     subjectID,
			EnrolledCount: count,
		},
	}
}

func NewBulkUpdate(electiveID domain.ElectiveID, counts map[domain.SubjectID]int) Envelope {
	return Envelope{
		Type: TypeBulkSubjectEnrollmentUpdate,
		Bulk: &BulkSubjectEnrollmentUpdate{
			ElectiveID:            electiveID,
			SubjectEnrolledCounts: counts,
		},
	}
}

func Encode(env Envelope) ([]byte, error) {
	return json.Marshal(env)
}

// Decode parses a frame strictly: unknown fields, trailing data, a
// missing payload, or a payload that does not match Type all fail.
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if dec.More() {
		return Envelope{}, fmt.Errorf("decode envelope: trailing data")
	}
	if err := env.check(); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

func (e Envelope) check() error {
	var want, got int
	set := []bool{e.Identify != nil, e.Subscribe != nil, e.Update != nil, e.Bulk != nil}
	for _, s := range set {
		if s {
			got++
		}
	}
	switch e.Type {
	case TypeIdentify:
		want = 1
		if e.Identify == nil || e.Identify.Token == "" {
			return fmt.Errorf("identify payload missing or empty")
		}
	case TypeSubscriptionRequest:
		want = 1
		if e.Subscribe == nil {
			return fmt.Errorf("subscription payload missing")
		}
	case TypeSubjectEnrollmentUpdate:
		want = 1
		if e.Update == nil {
			return fmt.Errorf("update payload missing")
		}
	case TypeBulkSubjectEnrollmentUpdate:
		want = 1
		if e.Bulk == nil {
			return fmt.Errorf("bulk payload missing")
		}
	case TypeAcknowledged:
		want = 0
	default:
		return fmt.Errorf("unknown envelope type %q", e.Type)
	}
	if got != want {
		return fmt.Errorf("envelope type %q carries %d payloads, want %d", e.Type, got, want)
	}
	return nil
}
