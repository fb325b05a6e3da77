package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// Memory is an in-process store for local runs (STORAGE_DRIVER=memory) and
// tests. Transactions are serialized with a single lock.
type Memory struct {
	txMu sync.Mutex

	mu           sync.RWMutex
	trainers     map[uint]models.Trainer
	weekly       map[uint]domain.WeeklyAvailability
	appointments map[uuid.UUID]models.Appointment
}

func NewMemory() *Memory {
	return &Memory{
		trainers:     map[uint]models.Trainer{},
		weekly:       map[uint]domain.WeeklyAvailability{},
		appointments: map[uuid.UUID]models.Appointment{},
	}
}

type memoryTxKey struct{}

func (m *Memory) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memoryTxKey{}) != nil {
		return fn(ctx)
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(context.WithValue(ctx, memoryTxKey{}, true))
}

// PutTrainer seeds the trainer directory.
func (m *Memory) PutTrainer(t models.Trainer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trainers[t.ID] = t
}

func (m *Memory) SaveTrainer(_ context.Context, t *models.Trainer) error {
	m.PutTrainer(*t)
	return nil
}

func (m *Memory) GetTrainer(_ context.Context, trainerID uint) (*models.Trainer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.trainers[trainerID]
	if !ok {
		return nil, domain.ErrTrainerNotFound
	}
	return &t, nil
}

func (m *Memory) GetWeeklyAvailability(_ context.Context, trainerID uint) (domain.WeeklyAvailability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneWeekly(m.weekly[trainerID]), nil
}

func (m *Memory) ReplaceWeeklyAvailability(_ context.Context, trainerID uint, weekly domain.WeeklyAvailability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.weekly[trainerID] = cloneWeekly(weekly)
	return nil
}

func (m *Memory) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	now := time.Now()
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}
	if ap.UpdatedAt.IsZero() {
		ap.UpdatedAt = now
	}
	m.appointments[ap.ID] = *ap
	return nil
}

func (m *Memory) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ap, ok := m.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return &ap, nil
}

func (m *Memory) UpdateAppointment(_ context.Context, ap *models.Appointment, prevUpdatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.appointments[ap.ID]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	if !stored.UpdatedAt.Equal(prevUpdatedAt) {
		return domain.ErrStaleAppointment
	}

	updated := *ap
	updated.CreatedAt = stored.CreatedAt
	m.appointments[ap.ID] = updated
	return nil
}

func (m *Memory) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range m.appointments {
		if filter.MemberID != nil && ap.MemberID != *filter.MemberID {
			continue
		}
		if filter.TrainerID != nil && ap.TrainerID != *filter.TrainerID {
			continue
		}
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		if filter.From != "" && ap.Date < filter.From {
			continue
		}
		if filter.To != "" && ap.Date > filter.To {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (m *Memory) CountOverlapping(
	_ context.Context,
	trainerID uint,
	date string,
	slot domain.TimeSlot,
	exclude uuid.UUID,
) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, ap := range m.appointments {
		if ap.ID == exclude || ap.TrainerID != trainerID || ap.Date != date {
			continue
		}
		if !domain.Status(ap.Status).IsActive() {
			continue
		}
		if slot.Overlaps(domain.TimeSlot{Start: ap.StartTime, End: ap.EndTime}) {
			count++
		}
	}
	return count, nil
}

func cloneWeekly(w domain.WeeklyAvailability) domain.WeeklyAvailability {
	out := make(domain.WeeklyAvailability, 0, len(w))
	for _, d := range w {
		d.WorkingHours = append([]domain.TimeSlot(nil), d.WorkingHours...)
		out = append(out, d)
	}
	return out
}

var (
	_ domain.Repository       = (*Memory)(nil)
	_ domain.TrainerDirectory = (*Memory)(nil)
	_ domain.TxManager        = (*Memory)(nil)
)
