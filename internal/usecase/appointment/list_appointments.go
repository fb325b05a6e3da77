package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type ListAppointments struct {
	deps Deps
}

func NewListAppointments(deps Deps) *ListAppointments {
	return &ListAppointments{deps: deps}
}

// Execute lists the actor's appointments matching f, upcoming first.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor domain.Actor,
	f domain.QueryFilter,
) ([]models.Appointment, error) {

	if err := f.Validate(); err != nil {
		return nil, err
	}

	storage := domain.ListFilter{
		TrainerID: f.TrainerID,
		Status:    f.Status,
		From:      f.From,
		To:        f.To,
	}

	switch actor.Role {
	case domain.RoleMember:
		id := actor.ID
		storage.MemberID = &id
	case domain.RoleTrainer:
		id := actor.ID
		storage.TrainerID = &id
	case domain.RoleAdmin:
	default:
		return []models.Appointment{}, nil
	}

	apps, err := uc.deps.Repo.ListAppointments(ctx, storage)
	if err != nil {
		return nil, err
	}

	today := domain.FormatDate(uc.deps.Clock.Now())
	return domain.Query(apps, f, today), nil
}
