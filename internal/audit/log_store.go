package audit

import "github.com/rs/zerolog"

// LogStore writes audit events to the process log. It backs the dispatcher
// when no database is configured.
type LogStore struct {
	logger zerolog.Logger
}

func NewLogStore(logger zerolog.Logger) *LogStore {
	return &LogStore{logger: logger.With().Str("component", "audit").Logger()}
}

func (s *LogStore) Log(ev Event) error {
	e := s.logger.Info().
		Uint("actor_id", ev.ActorID).
		Str("actor_role", ev.ActorRole).
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Str("entity_id", ev.EntityID)
	if ev.TrainerID != nil {
		e = e.Uint("trainer_id", *ev.TrainerID)
	}
	if ev.Metadata != nil {
		e = e.Interface("metadata", ev.Metadata)
	}
	e.Msg("audit")
	return nil
}
