package appointment

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// TimeBucket is a coarse time-of-day group derived from the start hour.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"   // 06-12
	BucketMidday    TimeBucket = "midday"    // 12-15
	BucketAfternoon TimeBucket = "afternoon" // 15-18
	BucketEvening   TimeBucket = "evening"   // 18-22
)

var buckets = []struct {
	bucket   TimeBucket
	from, to int
}{
	{BucketMorning, 6, 12},
	{BucketMidday, 12, 15},
	{BucketAfternoon, 15, 18},
	{BucketEvening, 18, 22},
}

// BucketFor returns the bucket of an HH:MM start time. Starts before 06:00
// or from 22:00 on belong to no bucket.
func BucketFor(start string) (TimeBucket, bool) {
	minutes, err := ParseHM(start)
	if err != nil {
		return "", false
	}
	hour := minutes / 60
	for _, b := range buckets {
		if hour >= b.from && hour < b.to {
			return b.bucket, true
		}
	}
	return "", false
}

func ParseBucket(raw string) (TimeBucket, error) {
	v := TimeBucket(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" || v == "all" {
		return "", nil
	}
	for _, b := range buckets {
		if b.bucket == v {
			return v, nil
		}
	}
	return "", Validation("invalid_bucket", fmt.Sprintf("unknown time of day %q", raw))
}

// ParseStatusFilter maps "" and "all" to nil (no status filter).
func ParseStatusFilter(raw string) (*Status, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" || v == "all" {
		return nil, nil
	}
	s, err := ParseStatus(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// QueryFilter narrows a list of appointments. Zero values mean "any".
// From and To are inclusive ISO dates.
type QueryFilter struct {
	Status    *Status
	From      string
	To        string
	TrainerID *uint
	Bucket    TimeBucket
}

func (f QueryFilter) Validate() error {
	if f.From != "" {
		if _, err := ParseDate(f.From, time.UTC); err != nil {
			return err
		}
	}
	if f.To != "" {
		if _, err := ParseDate(f.To, time.UTC); err != nil {
			return err
		}
	}
	if f.From != "" && f.To != "" && f.From > f.To {
		return Validation("invalid_date_range", "the range start must not be after its end")
	}
	return nil
}

func (f QueryFilter) Match(ap *models.Appointment) bool {
	if f.Status != nil && Status(ap.Status) != *f.Status {
		return false
	}
	if f.From != "" && ap.Date < f.From {
		return false
	}
	if f.To != "" && ap.Date > f.To {
		return false
	}
	if f.TrainerID != nil && ap.TrainerID != *f.TrainerID {
		return false
	}
	if f.Bucket != "" {
		b, ok := BucketFor(ap.StartTime)
		if !ok || b != f.Bucket {
			return false
		}
	}
	return true
}

// Query filters appointments and orders them for display: appointments
// dated today or later come first, then past ones, each group ascending by
// date and start time. today is an ISO date.
func Query(appointments []models.Appointment, f QueryFilter, today string) []models.Appointment {
	out := make([]models.Appointment, 0, len(appointments))
	for i := range appointments {
		if f.Match(&appointments[i]) {
			out = append(out, appointments[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Date < today, out[j].Date < today
		if pi != pj {
			return !pi
		}
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})

	return out
}
