package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

func newMockRepo(t *testing.T) (*repository.AppointmentGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return repository.NewAppointmentGormRepository(db), mock
}

func TestAppointmentGormRepository_GetAppointment_NotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "appointments" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ap, err := r.GetAppointment(context.Background(), uuid.New())
	require.Nil(t, ap)
	require.True(t, errors.Is(err, domain.ErrNotFound))
	require.True(t, errors.Is(err, domain.ErrAppointmentNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentGormRepository_GetTrainer_NotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "trainers" WHERE "trainers"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tr, err := r.GetTrainer(context.Background(), 7)
	require.Nil(t, tr)
	require.ErrorIs(t, err, domain.ErrTrainerNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentGormRepository_ListAppointments_MemberScope(t *testing.T) {
	r, mock := newMockRepo(t)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "member_id", "membership_id", "trainer_id", "date", "start_time", "end_time",
		"location", "notes", "status", "created_at", "updated_at",
	}).AddRow(id.String(), 5, 9, 3, "2025-04-10", "09:00", "10:00", "Studio A", "", "confirmed", now, now)

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE .*member_id = \$1.*date >= \$2.*ORDER BY date ASC, start_time ASC`).
		WithArgs(uint(5), "2025-04-01").
		WillReturnRows(rows)

	member := uint(5)
	apps, err := r.ListAppointments(context.Background(), domain.ListFilter{
		MemberID: &member,
		From:     "2025-04-01",
	})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, id, apps[0].ID)
	require.Equal(t, "09:00", apps[0].StartTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentGormRepository_UpdateAppointment_Stale(t *testing.T) {
	r, mock := newMockRepo(t)

	ap := &models.Appointment{
		ID:        uuid.New(),
		Date:      "2025-04-10",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    "cancelled",
		UpdatedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET .* WHERE id = \$\d+ AND updated_at = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := r.UpdateAppointment(context.Background(), ap, ap.UpdatedAt.Add(-time.Minute))
	require.ErrorIs(t, err, domain.ErrStaleAppointment)
	require.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentGormRepository_SaveTrainer_KeepsInactive(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "trainers" \("name","email","active","created_at","updated_at","id"\) VALUES .* ON CONFLICT \("id"\) DO UPDATE SET`).
		WithArgs("Rita", "", false, sqlmock.AnyArg(), sqlmock.AnyArg(), uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	err := r.SaveTrainer(context.Background(), &models.Trainer{ID: 7, Name: "Rita", Active: false})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
