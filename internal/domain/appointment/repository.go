package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// ListFilter is the storage-side pre-filter. Nil pointers and empty strings
// mean "any".
type ListFilter struct {
	MemberID  *uint
	TrainerID *uint
	Status    *Status
	From      string
	To        string
}

type TrainerDirectory interface {
	// -------- Trainer --------
	GetTrainer(
		ctx context.Context,
		trainerID uint,
	) (*models.Trainer, error)

	// -------- Weekly availability --------
	GetWeeklyAvailability(
		ctx context.Context,
		trainerID uint,
	) (WeeklyAvailability, error)

	ReplaceWeeklyAvailability(
		ctx context.Context,
		trainerID uint,
		weekly WeeklyAvailability,
	) error
}

// Repository is the appointment store: CRUD only, no business rules.
type Repository interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// GetAppointment locks the row when ctx carries a transaction.
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// UpdateAppointment fails with ErrStaleAppointment when the stored
	// updated_at no longer equals prevUpdatedAt.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		prevUpdatedAt time.Time,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	// CountOverlapping counts active appointments of the trainer on date
	// that overlap slot, ignoring exclude.
	CountOverlapping(
		ctx context.Context,
		trainerID uint,
		date string,
		slot TimeSlot,
		exclude uuid.UUID,
	) (int64, error)
}

// TxManager runs fn in one storage transaction carried by the context.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
