package appointment

import "errors"

// Error kinds. Every *Error unwraps to exactly one of these, so callers can
// branch with errors.Is(err, ErrWindowClosed) while still showing Reason.
var (
	ErrNotFound          = errors.New("not_found")
	ErrSlotUnavailable   = errors.New("slot_unavailable")
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrWindowClosed      = errors.New("window_closed")
	ErrValidation        = errors.New("validation")
	ErrConflict          = errors.New("conflict")
)

// Error is a recoverable user-facing rejection.
type Error struct {
	Kind   error
	Code   string
	Reason string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Reason
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, code, reason string) *Error {
	return &Error{Kind: kind, Code: code, Reason: reason}
}

func NotFound(code, reason string) error          { return newError(ErrNotFound, code, reason) }
func SlotUnavailable(code, reason string) error   { return newError(ErrSlotUnavailable, code, reason) }
func InvalidTransition(code, reason string) error { return newError(ErrInvalidTransition, code, reason) }
func WindowClosed(code, reason string) error      { return newError(ErrWindowClosed, code, reason) }
func Validation(code, reason string) error        { return newError(ErrValidation, code, reason) }

var (
	ErrAppointmentNotFound = newError(ErrNotFound, "appointment_not_found", "appointment not found")
	ErrTrainerNotFound     = newError(ErrNotFound, "trainer_not_found", "trainer not found")
	ErrStaleAppointment    = newError(ErrConflict, "appointment_modified",
		"the appointment was changed by another request, reload it and try again")
)

// AsError extracts the *Error carried by err, if any.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
