package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type ConfirmAppointment struct {
	deps Deps
}

func NewConfirmAppointment(deps Deps) *ConfirmAppointment {
	return &ConfirmAppointment{deps: deps}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.deps.transition(ctx, actor, appointmentID, domain.Confirm)
	uc.deps.finish("confirm", actor, appointmentID.String(), err)
	if err != nil {
		return nil, err
	}

	uc.deps.dispatch("appointment_confirmed", actor, ap, nil)

	return ap, nil
}
