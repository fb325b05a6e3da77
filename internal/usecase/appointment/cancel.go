package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type CancelAppointment struct {
	deps Deps
}

func NewCancelAppointment(deps Deps) *CancelAppointment {
	return &CancelAppointment{deps: deps}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	lead := uc.deps.Policy.CancelLeadTime

	ap, err := uc.deps.transition(ctx, actor, appointmentID,
		func(ap *models.Appointment, now time.Time) error {
			return domain.Cancel(ap, now, lead)
		})
	uc.deps.finish("cancel", actor, appointmentID.String(), err)
	if err != nil {
		return nil, err
	}

	uc.deps.dispatch("appointment_cancelled", actor, ap, map[string]any{
		"date":       ap.Date,
		"start_time": ap.StartTime,
	})

	return ap, nil
}
