package appointment

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
)

type GetWeeklyAvailability struct {
	deps Deps
}

func NewGetWeeklyAvailability(deps Deps) *GetWeeklyAvailability {
	return &GetWeeklyAvailability{deps: deps}
}

func (uc *GetWeeklyAvailability) Execute(
	ctx context.Context,
	trainerID uint,
) (domain.WeeklyAvailability, error) {

	if _, err := uc.deps.Trainers.GetTrainer(ctx, trainerID); err != nil {
		return nil, err
	}
	return uc.deps.Trainers.GetWeeklyAvailability(ctx, trainerID)
}

type UpdateWeeklyAvailability struct {
	deps Deps
}

func NewUpdateWeeklyAvailability(deps Deps) *UpdateWeeklyAvailability {
	return &UpdateWeeklyAvailability{deps: deps}
}

// Execute replaces the trainer's whole week. Existing appointments are left
// untouched; only future calendars change.
func (uc *UpdateWeeklyAvailability) Execute(
	ctx context.Context,
	actor domain.Actor,
	weekly domain.WeeklyAvailability,
) error {

	err := uc.update(ctx, actor, weekly)
	uc.deps.finish("update_availability", actor, "", err)
	if err != nil {
		return err
	}

	trainerID := actor.ID
	uc.deps.Audit.Dispatch(audit.Event{
		TrainerID: &trainerID,
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    "availability_updated",
		Entity:    "trainer",
		EntityID:  strconv.FormatUint(uint64(trainerID), 10),
		Metadata:  map[string]any{"days": len(weekly)},
	})
	return nil
}

func (uc *UpdateWeeklyAvailability) update(
	ctx context.Context,
	actor domain.Actor,
	weekly domain.WeeklyAvailability,
) error {

	if actor.Role != domain.RoleTrainer {
		return domain.Validation("trainer_only", "only trainers can change their availability")
	}
	if err := weekly.Validate(); err != nil {
		return err
	}
	if _, err := uc.deps.Trainers.GetTrainer(ctx, actor.ID); err != nil {
		return err
	}

	if err := uc.deps.Trainers.ReplaceWeeklyAvailability(ctx, actor.ID, weekly); err != nil {
		return err
	}

	if uc.deps.Cache != nil {
		uc.deps.Cache.InvalidateTrainer(ctx, actor.ID)
	}
	return nil
}
