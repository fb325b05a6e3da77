package appointment

import "time"

const DefaultHorizonDays = 14

// CalendarDay is one derived, never persisted day of a booking calendar.
// Available is true iff TimeSlots is non-empty.
type CalendarDay struct {
	Date      string       `json:"date"`
	DayOfWeek time.Weekday `json:"day_of_week"`
	Available bool         `json:"available"`
	TimeSlots []TimeSlot   `json:"time_slots"`
}

type Calendar []CalendarDay

// GenerateCalendar expands weekly into horizonDays consecutive days starting
// at from's calendar day. Working hours are copied in declared order.
func GenerateCalendar(weekly WeeklyAvailability, from time.Time, horizonDays int) Calendar {
	if horizonDays <= 0 {
		return Calendar{}
	}

	start := StartOfDay(from)
	out := make(Calendar, 0, horizonDays)

	for i := 0; i < horizonDays; i++ {
		date := start.AddDate(0, 0, i)

		day := CalendarDay{
			Date:      FormatDate(date),
			DayOfWeek: date.Weekday(),
			TimeSlots: []TimeSlot{},
		}

		if entry, ok := weekly.ForWeekday(date.Weekday()); ok && entry.Available && len(entry.WorkingHours) > 0 {
			day.TimeSlots = append(day.TimeSlots, entry.WorkingHours...)
			day.Available = true
		}

		out = append(out, day)
	}

	return out
}

func (c Calendar) Find(date string) (CalendarDay, bool) {
	for _, day := range c {
		if day.Date == date {
			return day, true
		}
	}
	return CalendarDay{}, false
}

func (d CalendarDay) HasSlot(slot TimeSlot) bool {
	for _, s := range d.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// AvailableDays returns the subset of days that offer at least one slot.
func (c Calendar) AvailableDays() Calendar {
	out := Calendar{}
	for _, day := range c {
		if day.Available {
			out = append(out, day)
		}
	}
	return out
}
