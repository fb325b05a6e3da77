package dto

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// ===============================
// Requests
// ===============================

type TimeSlotRequest struct {
	Start string `json:"start" binding:"required,hhmm"`
	End   string `json:"end" binding:"required,hhmm"`
}

func (r TimeSlotRequest) Slot() domain.TimeSlot {
	return domain.TimeSlot{Start: r.Start, End: r.End}
}

type CreateAppointmentRequest struct {
	TrainerID    uint            `json:"trainer_id" binding:"required"`
	MembershipID uint            `json:"membership_id"`
	Date         string          `json:"date" binding:"required,isodate"`
	Time         TimeSlotRequest `json:"time" binding:"required"`
	Location     string          `json:"location" binding:"required,max=120"`
	Notes        string          `json:"notes" binding:"max=500"`
}

type RescheduleAppointmentRequest struct {
	Date     string          `json:"date" binding:"required,isodate"`
	Time     TimeSlotRequest `json:"time" binding:"required"`
	Location string          `json:"location" binding:"required,max=120"`
	Notes    *string         `json:"notes" binding:"omitempty,max=500"`
}

// ===============================
// Responses
// ===============================

type TimeSlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AppointmentDTO struct {
	ID            uuid.UUID   `json:"id"`
	MemberID      uint        `json:"member_id"`
	MembershipID  uint        `json:"membership_id"`
	TrainerID     uint        `json:"trainer_id"`
	Date          string      `json:"date"`
	Time          TimeSlotDTO `json:"time"`
	Location      string      `json:"location"`
	Notes         string      `json:"notes"`
	Status        string      `json:"status"`
	DisplayStatus string      `json:"display_status"`
	TimeOfDay     string      `json:"time_of_day,omitempty"`
	ConfirmedAt   *time.Time  `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time  `json:"cancelled_at,omitempty"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	bucket, _ := domain.BucketFor(ap.StartTime)

	return AppointmentDTO{
		ID:            ap.ID,
		MemberID:      ap.MemberID,
		MembershipID:  ap.MembershipID,
		TrainerID:     ap.TrainerID,
		Date:          ap.Date,
		Time:          TimeSlotDTO{Start: ap.StartTime, End: ap.EndTime},
		Location:      ap.Location,
		Notes:         ap.Notes,
		Status:        ap.Status,
		DisplayStatus: domain.Status(ap.Status).DisplayLabel(),
		TimeOfDay:     string(bucket),
		ConfirmedAt:   ap.ConfirmedAt,
		CancelledAt:   ap.CancelledAt,
		CompletedAt:   ap.CompletedAt,
		CreatedAt:     ap.CreatedAt,
		UpdatedAt:     ap.UpdatedAt,
	}
}

func NewAppointmentDTOs(apps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(apps))
	for i := range apps {
		out = append(out, NewAppointmentDTO(&apps[i]))
	}
	return out
}
