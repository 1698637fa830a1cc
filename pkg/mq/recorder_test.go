package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderKeepsEventsInOrder(t *testing.T) {
	r := &Recorder{}
	ctx := context.Background()
	require.NoError(t, r.PublishJSON(ctx, KeyBookingCreated, BookingEvent{BookingID: "b1", Status: "PENDING"}))
	require.NoError(t, r.PublishJSON(ctx, KeyBookingUpdated, BookingEvent{BookingID: "b1", Status: "CONFIRMED"}))

	assert.Equal(t, []string{KeyBookingCreated, KeyBookingUpdated}, r.Keys())

	var ev BookingEvent
	require.NoError(t, json.Unmarshal(r.Events()[1].Body, &ev))
	assert.Equal(t, "CONFIRMED", ev.Status)
}

func TestNoopPublisher(t *testing.T) {
	var p EventPublisher = NoopPublisher{}
	assert.NoError(t, p.PublishJSON(context.Background(), KeyContactMessageSubmitted, ContactEvent{}))
	assert.NoError(t, p.Close())
}
