package appointment

import (
	"fmt"
	"time"
)

const DefaultCancelLeadTime = 24 * time.Hour

// Policy holds the tunable scheduling rules.
type Policy struct {
	HorizonDays    int
	CancelLeadTime time.Duration
	// InitialStatus is what Book and Reschedule leave the appointment in:
	// pending when trainers confirm by hand, confirmed otherwise.
	InitialStatus Status
	// RejectOverlap turns detected double bookings into SlotUnavailable.
	RejectOverlap bool
}

func DefaultPolicy() Policy {
	return Policy{
		HorizonDays:    DefaultHorizonDays,
		CancelLeadTime: DefaultCancelLeadTime,
		InitialStatus:  StatusPending,
	}
}

func (p Policy) Validate() error {
	if p.HorizonDays <= 0 || p.HorizonDays > 90 {
		return fmt.Errorf("horizon days must be within 1..90, got %d", p.HorizonDays)
	}
	if p.CancelLeadTime < 0 {
		return fmt.Errorf("cancel lead time must not be negative, got %s", p.CancelLeadTime)
	}
	if p.InitialStatus != StatusPending && p.InitialStatus != StatusConfirmed {
		return fmt.Errorf("initial status must be pending or confirmed, got %q", p.InitialStatus)
	}
	return nil
}

// BookingFrom is the first calendar day offered for new bookings.
func BookingFrom(now time.Time) time.Time {
	return StartOfDay(now)
}

// RescheduleFrom is the first calendar day offered for reschedules; starting
// tomorrow is what enforces the next-day lead time.
func RescheduleFrom(now time.Time) time.Time {
	return StartOfDay(now).AddDate(0, 0, 1)
}
