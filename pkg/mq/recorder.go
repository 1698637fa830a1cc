package mq

import (
	"context"
	"encoding/json"
	"sync"
)

type RecordedEvent struct {
	Key  string
	Body []byte
}

// Recorder keeps published events in memory. Handy for tests and for local
// runs where you want to see what would have gone to the broker.
type Recorder struct {
	mu     sync.Mutex
	events []RecordedEvent
}

func (r *Recorder) PublishJSON(_ context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.events = append(r.events, RecordedEvent{Key: key, Body: b})
	r.mu.Unlock()
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Keys() []string {
	events := r.Events()
	keys := make([]string, 0, len(events))
	for _, e := range events {
		keys = append(keys, e.Key)
	}
	return keys
}
