package wire

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"elective-hub/domain"
)

func TestDecode_SubscriptionRequest_RoundTrip(t *testing.T) {
	req := require.New(t)
	messageID := uuid.NewString()
	subs := map[domain.ElectiveID][]domain.SubjectID{1: {101, 102}, 2: {201}}

	// Given an encoded subscription request
	data, err := Encode(NewSubscriptionRequest(&messageID, subs))
	req.NoError(err)

	// When it is decoded
	env, err := Decode(data)

	// Then nothing is lost
	req.NoError(err)
	req.Equal(TypeSubscriptionRequest, env.Type)
	req.Equal(messageID, *env.MessageID)
	req.Equal(subs, env.Subscribe.Subscriptions)
}

func TestDecode_RejectsUnknownField(t *testing.T) {
	req := require.New(t)

	_, err := Decode([]byte(`{"type":"identify","identify":{"token":"x"},"extra":1}`))

	req.Error(err)
}

func TestDecode_RejectsTrailingData(t *testing.T) {
	req := require.New(t)

	_, err := Decode([]byte(`{"type":"acknowledged"}{"type":"acknowledged"}`))

	req.Error(err)
}

func TestDecode_RejectsPayloadTypeMismatch(t *testing.T) {
	req := require.New(t)

	// An identify frame carrying a subscription payload is ambiguous
	_, err := Decode([]byte(`{"type":"identify","subscribe":{"subscriptions":{}}}`))

	req.Error(err)
}

func TestDecode_RejectsExtraPayload(t *testing.T) {
	req := require.New(t)

	_, err := Decode([]byte(`{"type":"identify","identify":{"token":"x"},"subscribe":{"subscriptions":{}}}`))

	req.Error(err)
}

func TestDecode_RejectsUnknownType(t *testing.T) {
	req := require.New(t)

	_, err := Decode([]byte(`{"type":"room_join"}`))

	req.Error(err)
}

func TestDecode_RejectsEmptyToken(t *testing.T) {
	req := require.New(t)

	_, err := Decode([]byte(`{"type":"identify","identify":{"token":""}}`))

	req.Error(err)
}

func TestAcknowledged_EchoesMessageID(t *testing.T) {
	req := require.New(t)
	messageID := uuid.NewString()

	data, err := Encode(NewAcknowledged(&messageID))
	req.NoError(err)
	env, err := Decode(data)

	req.NoError(err)
	req.Equal(TypeAcknowledged, env.Type)
	req.Equal(messageID, *env.MessageID)
	req.Nil(env.Identify)
	req.Nil(env.Subscribe)
}

func TestServerOnly(t *testing.T) {
	req := require.New(t)

	req.True(TypeAcknowledged.ServerOnly())
	req.True(TypeSubjectEnrollmentUpdate.ServerOnly())
	req.True(TypeBulkSubjectEnrollmentUpdate.ServerOnly())
	req.False(TypeIdentify.ServerOnly())
	req.False(TypeSubscriptionRequest.ServerOnly())
}

func TestBulkUpdate_Equal(t *testing.T) {
	req := require.New(t)
	a := BulkSubjectEnrollmentUpdate{ElectiveID: 1, SubjectEnrolledCounts: map[domain.SubjectID]int{101: 2, 102: 0}}
	b := BulkSubjectEnrollmentUpdate{ElectiveID: 1, SubjectEnrolledCounts: map[domain.SubjectID]int{102: 0, 101: 2}}
	c := BulkSubjectEnrollmentUpdate{ElectiveID: 1, SubjectEnrolledCounts: map[domain.SubjectID]int{101: 3, 102: 0}}
	d := BulkSubjectEnrollmentUpdate{ElectiveID: 2, SubjectEnrolledCounts: map[domain.SubjectID]int{101: 2, 102: 0}}

	req.True(a.Equal(b))
	req.False(a.Equal(c))
	req.False(a.Equal(d))
}
