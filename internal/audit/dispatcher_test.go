package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (s *recordingStore) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("db down")
	}
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcher_DeliversEventsInOrder(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(store, zerolog.Nop())

	d.Dispatch(Event{Action: "appointment_booked", EntityID: "a"})
	d.Dispatch(Event{Action: "appointment_cancelled", EntityID: "a"})
	d.Close()

	require.Len(t, store.events, 2)
	require.Equal(t, "appointment_booked", store.events[0].Action)
	require.Equal(t, "appointment_cancelled", store.events[1].Action)
}

func TestDispatcher_StoreFailureDoesNotStopWorker(t *testing.T) {
	store := &recordingStore{fail: true}
	d := NewDispatcher(store, zerolog.Nop())

	d.Dispatch(Event{Action: "appointment_booked"})
	d.Close()

	require.Empty(t, store.events)
}

func TestLogStore_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	store := NewLogStore(zerolog.New(&buf))

	trainerID := uint(7)
	require.NoError(t, store.Log(Event{
		TrainerID: &trainerID,
		ActorID:   21,
		ActorRole: "member",
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  "abc",
		Metadata:  map[string]any{"date": "2025-04-01"},
	}))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "appointment_booked", line["action"])
	require.Equal(t, "audit", line["component"])
	require.EqualValues(t, 7, line["trainer_id"])
	require.Equal(t, "2025-04-01", line["metadata"].(map[string]any)["date"])
}
