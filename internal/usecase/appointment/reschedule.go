package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type RescheduleAppointment struct {
	deps Deps
}

func NewRescheduleAppointment(deps Deps) *RescheduleAppointment {
	return &RescheduleAppointment{deps: deps}
}

// Execute moves the appointment to a slot offered from tomorrow on.
// The appointment keeps its id and goes back to the initial status.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uuid.UUID,
	in domain.RescheduleInput,
) (*models.Appointment, error) {

	var previous models.Appointment
	ap, err := uc.reschedule(ctx, actor, appointmentID, in, &previous)
	uc.deps.finish("reschedule", actor, appointmentID.String(), err)
	if err != nil {
		return nil, err
	}

	uc.deps.dispatch("appointment_rescheduled", actor, ap, map[string]any{
		"from_date":       previous.Date,
		"from_start_time": previous.StartTime,
		"to_date":         ap.Date,
		"to_start_time":   ap.StartTime,
	})

	return ap, nil
}

func (uc *RescheduleAppointment) reschedule(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uuid.UUID,
	in domain.RescheduleInput,
	previous *models.Appointment,
) (*models.Appointment, error) {

	if err := in.Slot.Validate(); err != nil {
		return nil, err
	}
	in.Location = strings.TrimSpace(in.Location)
	if in.Location == "" {
		return nil, domain.Validation("location_required", "location is required")
	}

	now := uc.deps.Clock.Now()

	var out *models.Appointment
	err := uc.deps.Tx.Do(ctx, func(ctx context.Context) error {
		ap, err := loadForActor(ctx, uc.deps.Repo, appointmentID, actor)
		if err != nil {
			return err
		}
		*previous = *ap

		cal, err := uc.deps.offeredCalendar(ctx, ap.TrainerID, domain.RescheduleFrom(now))
		if err != nil {
			return err
		}

		prev := ap.UpdatedAt
		if err := domain.Reschedule(ap, cal, in, now, uc.deps.Policy.InitialStatus); err != nil {
			return err
		}

		if err := uc.deps.checkOverlap(ctx, ap.TrainerID, ap.Date, in.Slot, ap.ID); err != nil {
			return err
		}

		if err := uc.deps.Repo.UpdateAppointment(ctx, ap, prev); err != nil {
			return err
		}

		out = ap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
