package appointment

import (
	"fmt"
	"strings"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	// StatusMissed is set by an external no-show process, never by this service.
	StatusMissed Status = "missed"
)

var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusMissed,
}

// ActiveStatuses are the statuses that still hold a trainer's time.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

// synonyms maps inbound vocabulary used by other screens onto the canonical
// statuses. displayLabels is the reverse, display-only direction.
var synonyms = map[string]Status{
	"upcoming":  StatusConfirmed,
	"scheduled": StatusConfirmed,
	"canceled":  StatusCancelled,
	"no_show":   StatusMissed,
}

var displayLabels = map[Status]string{
	StatusConfirmed: "upcoming",
}

func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusMissed
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// DisplayLabel is the single place where a canonical status is turned into
// the label shown to members.
func (s Status) DisplayLabel() string {
	if label, ok := displayLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseStatus accepts canonical names and known synonyms, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if s := Status(v); s.Valid() {
		return s, nil
	}
	if s, ok := synonyms[v]; ok {
		return s, nil
	}
	return "", Validation("invalid_status", fmt.Sprintf("unknown appointment status %q", raw))
}

// ===============================
// Validations
// ===============================

// CanCancel rejects terminal statuses.
func CanCancel(current Status) error {
	switch current {
	case StatusPending, StatusConfirmed:
		return nil
	case StatusCancelled:
		return InvalidTransition("already_cancelled", "the appointment is already cancelled")
	case StatusCompleted:
		return InvalidTransition("invalid_state", "a completed appointment cannot be cancelled")
	case StatusMissed:
		return InvalidTransition("invalid_state", "a missed appointment cannot be cancelled")
	}
	return InvalidTransition("invalid_state", fmt.Sprintf("status %q cannot be cancelled", current))
}

// CanComplete only accepts confirmed appointments.
func CanComplete(current Status) error {
	switch current {
	case StatusConfirmed:
		return nil
	case StatusCompleted:
		return InvalidTransition("already_completed", "the appointment is already marked completed")
	}
	return InvalidTransition("invalid_state", "only confirmed appointments can be marked completed")
}

func CanConfirm(current Status) error {
	switch current {
	case StatusPending:
		return nil
	case StatusConfirmed:
		return InvalidTransition("already_confirmed", "the appointment is already confirmed")
	}
	return InvalidTransition("invalid_state", "only pending appointments can be confirmed")
}

func CanReschedule(current Status) error {
	if current.IsActive() {
		return nil
	}
	return InvalidTransition("invalid_state",
		fmt.Sprintf("a %s appointment cannot be rescheduled", current))
}
