package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

type txKey struct{}

// conn returns the transaction carried by ctx, or the base handle.
func (r *AppointmentGormRepository) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok
}

// Do runs fn inside a single transaction. Nested calls reuse the outer one.
func (r *AppointmentGormRepository) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// --------------------------------------------------
// Trainer directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTrainer(
	ctx context.Context,
	trainerID uint,
) (*models.Trainer, error) {

	var trainer models.Trainer
	if err := r.conn(ctx).First(&trainer, trainerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTrainerNotFound
		}
		return nil, fmt.Errorf("get trainer %d: %w", trainerID, err)
	}
	return &trainer, nil
}

// SaveTrainer inserts or updates a trainer by id.
func (r *AppointmentGormRepository) SaveTrainer(
	ctx context.Context,
	trainer *models.Trainer,
) error {
	err := r.conn(ctx).
		Omit("Days").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "active", "updated_at"}),
		}).
		Create(trainer).Error
	if err != nil {
		return fmt.Errorf("save trainer %d: %w", trainer.ID, err)
	}
	return nil
}

func (r *AppointmentGormRepository) GetWeeklyAvailability(
	ctx context.Context,
	trainerID uint,
) (domain.WeeklyAvailability, error) {

	var days []models.TrainerDay
	if err := r.conn(ctx).
		Where("trainer_id = ?", trainerID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {
		return nil, fmt.Errorf("get weekly availability of trainer %d: %w", trainerID, err)
	}

	return domain.WeeklyFromModels(days), nil
}

func (r *AppointmentGormRepository) ReplaceWeeklyAvailability(
	ctx context.Context,
	trainerID uint,
	weekly domain.WeeklyAvailability,
) error {

	return r.Do(ctx, func(ctx context.Context) error {
		db := r.conn(ctx)

		if err := db.Where("trainer_id = ?", trainerID).Delete(&models.TrainerDay{}).Error; err != nil {
			return fmt.Errorf("clear weekly availability of trainer %d: %w", trainerID, err)
		}

		rows := weekly.ToModels(trainerID)
		if len(rows) == 0 {
			return nil
		}
		if err := db.Create(&rows).Error; err != nil {
			if derr := translateWriteError(err); derr != nil {
				return derr
			}
			return fmt.Errorf("save weekly availability of trainer %d: %w", trainerID, err)
		}
		return nil
	})
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.conn(ctx).Create(ap).Error; err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrTrainerNotFound
		}
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	q := r.conn(ctx)
	if inTx(ctx) {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var ap models.Appointment
	if err := q.Where("id = ?", id).First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment %s: %w", id, err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	prevUpdatedAt time.Time,
) error {

	res := r.conn(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND updated_at = ?", ap.ID, prevUpdatedAt).
		Updates(map[string]any{
			"date":         ap.Date,
			"start_time":   ap.StartTime,
			"end_time":     ap.EndTime,
			"location":     ap.Location,
			"notes":        ap.Notes,
			"status":       ap.Status,
			"confirmed_at": ap.ConfirmedAt,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
			"updated_at":   ap.UpdatedAt,
		})
	if res.Error != nil {
		if pgCode(res.Error) == pgSerializationFailed {
			return domain.ErrStaleAppointment
		}
		return fmt.Errorf("update appointment %s: %w", ap.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleAppointment
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	where := squirrel.And{}
	if filter.MemberID != nil {
		where = append(where, squirrel.Eq{"member_id": *filter.MemberID})
	}
	if filter.TrainerID != nil {
		where = append(where, squirrel.Eq{"trainer_id": *filter.TrainerID})
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.From != "" {
		where = append(where, squirrel.GtOrEq{"date": filter.From})
	}
	if filter.To != "" {
		where = append(where, squirrel.LtOrEq{"date": filter.To})
	}

	q := r.conn(ctx).Model(&models.Appointment{})
	if len(where) > 0 {
		sql, args, err := where.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build appointment filter: %w", err)
		}
		q = q.Where(sql, args...)
	}

	var apps []models.Appointment
	if err := q.Order("date ASC, start_time ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) CountOverlapping(
	ctx context.Context,
	trainerID uint,
	date string,
	slot domain.TimeSlot,
	exclude uuid.UUID,
) (int64, error) {

	active := make([]string, 0, len(domain.ActiveStatuses))
	for _, s := range domain.ActiveStatuses {
		active = append(active, string(s))
	}

	sql, args, err := squirrel.And{
		squirrel.Eq{"trainer_id": trainerID},
		squirrel.Eq{"date": date},
		squirrel.Eq{"status": active},
		squirrel.Lt{"start_time": slot.End},
		squirrel.Gt{"end_time": slot.Start},
		squirrel.NotEq{"id": exclude.String()},
	}.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build overlap filter: %w", err)
	}

	var count int64
	if err := r.conn(ctx).
		Model(&models.Appointment{}).
		Where(sql, args...).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count overlapping appointments: %w", err)
	}

	return count, nil
}

// Compile-time check
var (
	_ domain.Repository       = (*AppointmentGormRepository)(nil)
	_ domain.TrainerDirectory = (*AppointmentGormRepository)(nil)
	_ domain.TxManager        = (*AppointmentGormRepository)(nil)
)
