package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// loadForActor hides appointments outside the actor's view behind NotFound.
func loadForActor(
	ctx context.Context,
	repo domain.Repository,
	id uuid.UUID,
	actor domain.Actor,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanSee(ap) {
		return nil, domain.ErrAppointmentNotFound
	}
	return ap, nil
}

// finish records the outcome of an operation in metrics and logs.
func (d Deps) finish(op string, actor domain.Actor, id string, err error) {
	if err == nil {
		d.Metrics.Operation(op, "ok")
		d.Logger.Info().
			Str("operation", op).
			Str("appointment_id", id).
			Uint("actor_id", actor.ID).
			Str("actor_role", string(actor.Role)).
			Msg("appointment operation succeeded")
		return
	}

	if de, ok := domain.AsError(err); ok {
		d.Metrics.Operation(op, de.Code)
		d.Logger.Warn().
			Str("operation", op).
			Str("appointment_id", id).
			Uint("actor_id", actor.ID).
			Str("code", de.Code).
			Msg(de.Reason)
		return
	}

	d.Metrics.Operation(op, "error")
	d.Logger.Error().
		Err(err).
		Str("operation", op).
		Str("appointment_id", id).
		Uint("actor_id", actor.ID).
		Msg("appointment operation failed")
}

func (d Deps) dispatch(action string, actor domain.Actor, ap *models.Appointment, meta any) {
	trainerID := ap.TrainerID
	d.Audit.Dispatch(audit.Event{
		TrainerID: &trainerID,
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    action,
		Entity:    "appointment",
		EntityID:  ap.ID.String(),
		Metadata:  meta,
	})
}

// checkOverlap flags double bookings. They are only rejected when the
// policy asks for it.
func (d Deps) checkOverlap(
	ctx context.Context,
	trainerID uint,
	date string,
	slot domain.TimeSlot,
	exclude uuid.UUID,
) error {

	n, err := d.Repo.CountOverlapping(ctx, trainerID, date, slot, exclude)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	d.Metrics.OverlapDetected()
	d.Logger.Warn().
		Uint("trainer_id", trainerID).
		Str("date", date).
		Str("slot", slot.String()).
		Int64("overlapping", n).
		Msg("slot overlaps another active appointment of the trainer")

	if d.Policy.RejectOverlap {
		return domain.SlotUnavailable("slot_taken", "the trainer already has an appointment in this time slot")
	}
	return nil
}

// offeredCalendar regenerates the trainer's calendar from the directory.
// Writes validate against it, never against the calendar cache.
func (d Deps) offeredCalendar(
	ctx context.Context,
	trainerID uint,
	from time.Time,
) (domain.Calendar, error) {

	weekly, err := d.Trainers.GetWeeklyAvailability(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	return domain.GenerateCalendar(weekly, from, d.Policy.HorizonDays), nil
}
