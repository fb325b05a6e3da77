package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// ===============================
// Time windows
// ===============================

// Bounds returns the appointment's start and end in loc.
func Bounds(ap *models.Appointment, loc *time.Location) (time.Time, time.Time, error) {
	start, err := At(ap.Date, ap.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := At(ap.Date, ap.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// CompletionDeadline is 23:59:59 of the day after the appointment date.
func CompletionDeadline(date string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	next := day.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 23, 59, 59, 0, loc), nil
}

// ===============================
// Domain Actions
// ===============================

// Cancel succeeds only while now is more than lead before the start.
func Cancel(ap *models.Appointment, now time.Time, lead time.Duration) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	start, _, err := Bounds(ap, now.Location())
	if err != nil {
		return err
	}

	if !now.Before(start.Add(-lead)) {
		return WindowClosed("cancel_window_closed", fmt.Sprintf(
			"appointments can only be cancelled more than %s before they start; this one starts %s %s",
			formatLead(lead), ap.Date, ap.StartTime))
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.UpdatedAt = now
	return nil
}

// Complete is allowed from the session end until 23:59:59 of the next day.
func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	_, end, err := Bounds(ap, now.Location())
	if err != nil {
		return err
	}
	if now.Before(end) {
		return WindowClosed("session_not_ended", fmt.Sprintf(
			"cannot mark completed before the session ends at %s on %s", ap.EndTime, ap.Date))
	}

	deadline, err := CompletionDeadline(ap.Date, now.Location())
	if err != nil {
		return err
	}
	if now.After(deadline) {
		return WindowClosed("completion_window_closed", fmt.Sprintf(
			"the completion window closed at 23:59 on %s", FormatDate(deadline)))
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.UpdatedAt = now
	return nil
}

// Confirm accepts a pending appointment that has not started yet.
func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	start, _, err := Bounds(ap, now.Location())
	if err != nil {
		return err
	}
	if !now.Before(start) {
		return WindowClosed("session_started", "cannot confirm an appointment that has already started")
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	ap.UpdatedAt = now
	return nil
}

// RescheduleInput carries the new slot. Notes is only replaced when non-nil.
type RescheduleInput struct {
	Date     string
	Slot     TimeSlot
	Location string
	Notes    *string
}

// Reschedule moves the appointment onto a slot of cal, which must have been
// generated from RescheduleFrom(now). Identity and CreatedAt are kept.
func Reschedule(ap *models.Appointment, cal Calendar, in RescheduleInput, now time.Time, initial Status) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}
	if err := RequireSlot(cal, in.Date, in.Slot); err != nil {
		return err
	}

	ap.Date = in.Date
	ap.StartTime = in.Slot.Start
	ap.EndTime = in.Slot.End
	ap.Location = in.Location
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	ap.Status = string(initial)
	if initial == StatusConfirmed {
		ap.ConfirmedAt = &now
	} else {
		ap.ConfirmedAt = nil
	}
	ap.UpdatedAt = now
	return nil
}

// RequireSlot checks that date/slot is offered by cal.
func RequireSlot(cal Calendar, date string, slot TimeSlot) error {
	day, ok := cal.Find(date)
	if !ok {
		return SlotUnavailable("date_outside_horizon",
			fmt.Sprintf("%s is outside the bookable range", date))
	}
	if !day.Available {
		return SlotUnavailable("trainer_unavailable",
			fmt.Sprintf("the trainer does not work on %s", date))
	}
	if !day.HasSlot(slot) {
		return SlotUnavailable("slot_not_offered",
			fmt.Sprintf("%s is not an offered time slot on %s", slot, date))
	}
	return nil
}

func formatLead(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	}
	return d.String()
}
