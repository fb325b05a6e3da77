package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type CompleteAppointment struct {
	deps Deps
}

func NewCompleteAppointment(deps Deps) *CompleteAppointment {
	return &CompleteAppointment{deps: deps}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.deps.transition(ctx, actor, appointmentID, domain.Complete)
	uc.deps.finish("complete", actor, appointmentID.String(), err)
	if err != nil {
		return nil, err
	}

	uc.deps.dispatch("appointment_completed", actor, ap, nil)

	return ap, nil
}
