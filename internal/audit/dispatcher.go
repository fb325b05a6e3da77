package audit

import "github.com/rs/zerolog"

type Event struct {
	TrainerID *uint
	ActorID   uint
	ActorRole string
	Action    string
	Entity    string
	EntityID  string
	Metadata  any
}

// Store persists one audit event.
type Store interface {
	Log(ev Event) error
}

type Dispatcher struct {
	store  Store
	queue  chan Event
	done   chan struct{}
	logger zerolog.Logger
}

func NewDispatcher(store Store, logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
		logger: logger.With().Str("component", "audit").Logger(),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.store.Log(ev); err != nil {
			d.logger.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch never blocks the request: a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains the queue and waits for the worker. Dispatch must not be
// called afterwards.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
