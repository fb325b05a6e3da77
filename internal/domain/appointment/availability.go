package appointment

import (
	"fmt"
	"time"
)

const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TimeSlot is a half-open [Start, End) interval within one day.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (s TimeSlot) String() string {
	return s.Start + "-" + s.End
}

// Minutes returns start and end as minutes since midnight.
func (s TimeSlot) Minutes() (int, int, error) {
	start, err := ParseHM(s.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseHM(s.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func (s TimeSlot) Validate() error {
	start, end, err := s.Minutes()
	if err != nil {
		return err
	}
	if start >= end {
		return Validation("invalid_time_range",
			fmt.Sprintf("time range %s must start before it ends", s))
	}
	return nil
}

// Overlaps reports whether two valid slots share any minute. Touching
// slots (09:00-10:00, 10:00-11:00) do not overlap.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	aStart, aEnd, err := s.Minutes()
	if err != nil {
		return false
	}
	bStart, bEnd, err := o.Minutes()
	if err != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// ParseHM parses a strict 24-hour HH:MM string into minutes since midnight.
func ParseHM(hm string) (int, error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, Validation("invalid_time", fmt.Sprintf("%q is not a HH:MM time", hm))
	}
	t, err := time.Parse(TimeFormat, hm)
	if err != nil {
		return 0, Validation("invalid_time", fmt.Sprintf("%q is not a HH:MM time", hm))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseDate parses an ISO calendar date at midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return time.Time{}, Validation("invalid_date", fmt.Sprintf("%q is not a YYYY-MM-DD date", date))
	}
	return t, nil
}

// At combines an ISO date and an HH:MM time in loc.
func At(date, hm string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ParseHM(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
