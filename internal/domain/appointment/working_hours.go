package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// DayAvailability is one day-of-week entry of a trainer's recurring schedule.
type DayAvailability struct {
	Weekday      time.Weekday `json:"day_of_week"`
	Available    bool         `json:"available"`
	WorkingHours []TimeSlot   `json:"working_hours"`
}

// WeeklyAvailability is keyed by weekday; at most one entry per day.
type WeeklyAvailability []DayAvailability

func (w WeeklyAvailability) ForWeekday(d time.Weekday) (DayAvailability, bool) {
	for _, day := range w {
		if day.Weekday == d {
			return day, true
		}
	}
	return DayAvailability{}, false
}

// Validate rejects malformed schedules: weekday out of range, duplicate
// weekdays, bad HH:MM values, empty or inverted ranges and overlapping
// ranges within a day. Ordering is not enforced.
func (w WeeklyAvailability) Validate() error {
	seen := make(map[time.Weekday]bool, len(w))
	for _, day := range w {
		if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
			return Validation("invalid_weekday",
				fmt.Sprintf("day of week %d is outside 0..6", day.Weekday))
		}
		if seen[day.Weekday] {
			return Validation("duplicate_weekday",
				fmt.Sprintf("%s is listed more than once", day.Weekday))
		}
		seen[day.Weekday] = true

		for i, slot := range day.WorkingHours {
			if err := slot.Validate(); err != nil {
				return err
			}
			for _, other := range day.WorkingHours[:i] {
				if slot.Overlaps(other) {
					return Validation("overlapping_working_hours",
						fmt.Sprintf("%s: %s overlaps %s", day.Weekday, slot, other))
				}
			}
		}
	}
	return nil
}

func WeeklyFromModels(days []models.TrainerDay) WeeklyAvailability {
	out := make(WeeklyAvailability, 0, len(days))
	for _, d := range days {
		hours := make([]TimeSlot, 0, len(d.WorkingHours))
		for _, r := range d.WorkingHours {
			hours = append(hours, TimeSlot{Start: r.Start, End: r.End})
		}
		out = append(out, DayAvailability{
			Weekday:      time.Weekday(d.Weekday),
			Available:    d.Available,
			WorkingHours: hours,
		})
	}
	return out
}

func (w WeeklyAvailability) ToModels(trainerID uint) []models.TrainerDay {
	out := make([]models.TrainerDay, 0, len(w))
	for _, d := range w {
		hours := make([]models.TimeRange, 0, len(d.WorkingHours))
		for _, s := range d.WorkingHours {
			hours = append(hours, models.TimeRange{Start: s.Start, End: s.End})
		}
		out = append(out, models.TrainerDay{
			TrainerID:    trainerID,
			Weekday:      int(d.Weekday),
			Available:    d.Available,
			WorkingHours: hours,
		})
	}
	return out
}
