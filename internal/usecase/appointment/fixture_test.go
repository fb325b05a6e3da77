package appointment_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/gym-scheduler/internal/metrics"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
	usecase "github.com/BruksfildServices01/gym-scheduler/internal/usecase/appointment"
)

const trainerID uint = 7

var (
	member  = domain.Actor{ID: 21, Role: domain.RoleMember}
	other   = domain.Actor{ID: 22, Role: domain.RoleMember}
	trainer = domain.Actor{ID: trainerID, Role: domain.RoleTrainer}
)

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAuditor) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingAuditor) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

type fixture struct {
	deps  usecase.Deps
	clock *timezone.FixedClock
	store *repository.Memory
	audit *recordingAuditor
}

func at(date, hm string) time.Time {
	t, err := domain.At(date, hm, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func slot(start, end string) domain.TimeSlot {
	return domain.TimeSlot{Start: start, End: end}
}

// newFixture seeds one active trainer working Tuesdays and Thursdays.
func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	store := repository.NewMemory()
	store.PutTrainer(models.Trainer{ID: trainerID, Name: "Rita", Active: true})

	week := domain.WeeklyAvailability{
		{Weekday: time.Monday, Available: false},
		{Weekday: time.Tuesday, Available: true, WorkingHours: []domain.TimeSlot{
			slot("09:00", "10:00"), slot("10:00", "11:00"), slot("18:00", "19:00"),
		}},
		{Weekday: time.Thursday, Available: true, WorkingHours: []domain.TimeSlot{
			slot("09:00", "10:00"), slot("18:00", "19:00"),
		}},
	}
	require.NoError(t, week.Validate())
	require.NoError(t, store.ReplaceWeeklyAvailability(context.Background(), trainerID, week))

	clock := &timezone.FixedClock{T: now}
	rec := &recordingAuditor{}

	return &fixture{
		deps: usecase.Deps{
			Repo:     store,
			Trainers: store,
			Tx:       store,
			Cache:    cache.NewLRUCalendarCache(32, time.Minute),
			Clock:    clock,
			Audit:    rec,
			Metrics:  metrics.New(prometheus.NewRegistry(), "test"),
			Logger:   zerolog.Nop(),
			Policy:   domain.DefaultPolicy(),
		},
		clock: clock,
		store: store,
		audit: rec,
	}
}

func (f *fixture) book(t *testing.T, date string, s domain.TimeSlot) *models.Appointment {
	t.Helper()
	ap, err := usecase.NewBookAppointment(f.deps).Execute(context.Background(), member, usecase.BookAppointmentInput{
		TrainerID:    trainerID,
		MembershipID: 3,
		Date:         date,
		Slot:         s,
		Location:     "Main gym",
	})
	require.NoError(t, err)
	return ap
}
