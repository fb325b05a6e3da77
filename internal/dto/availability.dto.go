package dto

import (
	"time"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
)

type DayAvailabilityRequest struct {
	DayOfWeek    *int              `json:"day_of_week" binding:"required,min=0,max=6"`
	Available    bool              `json:"available"`
	WorkingHours []TimeSlotRequest `json:"working_hours" binding:"dive"`
}

type WeeklyAvailabilityRequest struct {
	Days []DayAvailabilityRequest `json:"days" binding:"max=7,dive"`
}

func (r WeeklyAvailabilityRequest) Weekly() domain.WeeklyAvailability {
	out := make(domain.WeeklyAvailability, 0, len(r.Days))
	for _, d := range r.Days {
		hours := make([]domain.TimeSlot, 0, len(d.WorkingHours))
		for _, h := range d.WorkingHours {
			hours = append(hours, h.Slot())
		}
		out = append(out, domain.DayAvailability{
			Weekday:      time.Weekday(*d.DayOfWeek),
			Available:    d.Available,
			WorkingHours: hours,
		})
	}
	return out
}

type WeeklyAvailabilityDTO struct {
	TrainerID uint                      `json:"trainer_id"`
	Days      domain.WeeklyAvailability `json:"days"`
}

type CalendarDTO struct {
	TrainerID   uint            `json:"trainer_id"`
	Purpose     string          `json:"purpose"`
	HorizonDays int             `json:"horizon_days"`
	Days        domain.Calendar `json:"days"`
}
