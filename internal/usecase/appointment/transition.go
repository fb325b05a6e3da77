package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// transition loads the appointment under lock, applies the domain action and
// writes it back guarded by updated_at.
func (d Deps) transition(
	ctx context.Context,
	actor domain.Actor,
	id uuid.UUID,
	apply func(ap *models.Appointment, now time.Time) error,
) (*models.Appointment, error) {

	now := d.Clock.Now()

	var out *models.Appointment
	err := d.Tx.Do(ctx, func(ctx context.Context) error {
		ap, err := loadForActor(ctx, d.Repo, id, actor)
		if err != nil {
			return err
		}

		prev := ap.UpdatedAt
		if err := apply(ap, now); err != nil {
			return err
		}

		if err := d.Repo.UpdateAppointment(ctx, ap, prev); err != nil {
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
