package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type BookAppointmentInput struct {
	TrainerID    uint
	MembershipID uint
	Date         string
	Slot         domain.TimeSlot
	Location     string
	Notes        string
}

func (in BookAppointmentInput) validate() error {
	if in.TrainerID == 0 {
		return domain.Validation("trainer_required", "trainer_id is required")
	}
	if _, err := domain.ParseDate(in.Date, time.UTC); err != nil {
		return err
	}
	if err := in.Slot.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(in.Location) == "" {
		return domain.Validation("location_required", "location is required")
	}
	return nil
}

type BookAppointment struct {
	deps Deps
}

func NewBookAppointment(deps Deps) *BookAppointment {
	return &BookAppointment{deps: deps}
}

// Execute books one of the trainer's offered slots for the calling member.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.book(ctx, actor, in)

	id := ""
	if ap != nil {
		id = ap.ID.String()
	}
	uc.deps.finish("book", actor, id, err)
	if err != nil {
		return nil, err
	}

	uc.deps.dispatch("appointment_booked", actor, ap, map[string]any{
		"date":       ap.Date,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
	})

	return ap, nil
}

func (uc *BookAppointment) book(
	ctx context.Context,
	actor domain.Actor,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}

	now := uc.deps.Clock.Now()

	start, err := domain.At(in.Date, in.Slot.Start, now.Location())
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		MemberID:     actor.ID,
		MembershipID: in.MembershipID,
		TrainerID:    in.TrainerID,
		Date:         in.Date,
		StartTime:    in.Slot.Start,
		EndTime:      in.Slot.End,
		Location:     strings.TrimSpace(in.Location),
		Notes:        in.Notes,
		Status:       string(uc.deps.Policy.InitialStatus),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if uc.deps.Policy.InitialStatus == domain.StatusConfirmed {
		ap.ConfirmedAt = &now
	}

	err = uc.deps.Tx.Do(ctx, func(ctx context.Context) error {
		trainer, err := uc.deps.Trainers.GetTrainer(ctx, in.TrainerID)
		if err != nil {
			return err
		}
		if !trainer.Active {
			return domain.SlotUnavailable("trainer_inactive", "the trainer is not taking bookings")
		}

		cal, err := uc.deps.offeredCalendar(ctx, in.TrainerID, domain.BookingFrom(now))
		if err != nil {
			return err
		}
		if err := domain.RequireSlot(cal, in.Date, in.Slot); err != nil {
			return err
		}
		if !start.After(now) {
			return domain.SlotUnavailable("slot_started",
				fmt.Sprintf("the %s slot on %s has already started", in.Slot, in.Date))
		}

		if err := uc.deps.checkOverlap(ctx, ap.TrainerID, ap.Date, in.Slot, ap.ID); err != nil {
			return err
		}
		return uc.deps.Repo.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	return ap, nil
}
