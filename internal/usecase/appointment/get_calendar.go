package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
)

type CalendarPurpose string

const (
	PurposeBook       CalendarPurpose = "book"
	PurposeReschedule CalendarPurpose = "reschedule"
)

func ParseCalendarPurpose(raw string) (CalendarPurpose, error) {
	switch CalendarPurpose(raw) {
	case "", PurposeBook:
		return PurposeBook, nil
	case PurposeReschedule:
		return PurposeReschedule, nil
	}
	return "", domain.Validation("invalid_purpose", "purpose must be book or reschedule")
}

type GetCalendar struct {
	deps Deps
}

func NewGetCalendar(deps Deps) *GetCalendar {
	return &GetCalendar{deps: deps}
}

// Execute returns the trainer's bookable calendar: from today for new
// bookings, from tomorrow for reschedules.
func (uc *GetCalendar) Execute(
	ctx context.Context,
	trainerID uint,
	purpose CalendarPurpose,
) (domain.Calendar, error) {

	if _, err := uc.deps.Trainers.GetTrainer(ctx, trainerID); err != nil {
		return nil, err
	}

	now := uc.deps.Clock.Now()
	from := domain.BookingFrom(now)
	if purpose == PurposeReschedule {
		from = domain.RescheduleFrom(now)
	}

	return uc.calendarFrom(ctx, trainerID, from)
}

func (uc *GetCalendar) calendarFrom(
	ctx context.Context,
	trainerID uint,
	from time.Time,
) (domain.Calendar, error) {

	horizon := uc.deps.Policy.HorizonDays
	fromDate := domain.FormatDate(from)

	if uc.deps.Cache != nil {
		cal, ok := uc.deps.Cache.GetCalendar(ctx, trainerID, fromDate, horizon)
		uc.deps.Metrics.CacheLookup(ok)
		if ok {
			return cal, nil
		}
	}

	weekly, err := uc.deps.Trainers.GetWeeklyAvailability(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	cal := domain.GenerateCalendar(weekly, from, horizon)

	if uc.deps.Cache != nil {
		uc.deps.Cache.StoreCalendar(ctx, trainerID, fromDate, horizon, cal)
	}
	return cal, nil
}
