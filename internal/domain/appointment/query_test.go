package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

func TestBucketFor(t *testing.T) {
	cases := map[string]TimeBucket{
		"06:00": BucketMorning,
		"11:59": BucketMorning,
		"12:00": BucketMidday,
		"14:30": BucketMidday,
		"15:00": BucketAfternoon,
		"18:00": BucketEvening,
		"21:59": BucketEvening,
	}
	for start, want := range cases {
		got, ok := BucketFor(start)
		require.True(t, ok, start)
		assert.Equal(t, want, got, start)
	}

	for _, start := range []string{"05:59", "22:00", "bad"} {
		_, ok := BucketFor(start)
		assert.False(t, ok, start)
	}
}

func TestParseFilters(t *testing.T) {
	b, err := ParseBucket("all")
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = ParseBucket("night")
	assert.ErrorIs(t, err, ErrValidation)

	s, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = ParseStatusFilter("upcoming")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, *s)
}

func sample() []models.Appointment {
	return []models.Appointment{
		{Date: "2025-04-01", StartTime: "18:00", Status: "confirmed", TrainerID: 1},
		{Date: "2025-04-05", StartTime: "09:00", Status: "pending", TrainerID: 2},
		{Date: "2025-03-28", StartTime: "07:00", Status: "completed", TrainerID: 1},
		{Date: "2025-04-05", StartTime: "07:30", Status: "confirmed", TrainerID: 1},
		{Date: "2025-04-02", StartTime: "13:00", Status: "cancelled", TrainerID: 2},
	}
}

func TestQuery_OrdersUpcomingFirst(t *testing.T) {
	got := Query(sample(), QueryFilter{}, "2025-04-02")

	var order []string
	for _, ap := range got {
		order = append(order, ap.Date+" "+ap.StartTime)
	}
	assert.Equal(t, []string{
		"2025-04-02 13:00",
		"2025-04-05 07:30",
		"2025-04-05 09:00",
		"2025-03-28 07:00",
		"2025-04-01 18:00",
	}, order)
}

func TestQuery_Filters(t *testing.T) {
	confirmed := StatusConfirmed
	trainer := uint(1)

	got := Query(sample(), QueryFilter{Status: &confirmed}, "2025-04-02")
	assert.Len(t, got, 2)

	got = Query(sample(), QueryFilter{TrainerID: &trainer, Bucket: BucketMorning}, "2025-04-02")
	require.Len(t, got, 2)
	assert.Equal(t, "2025-04-05", got[0].Date)

	got = Query(sample(), QueryFilter{From: "2025-04-01", To: "2025-04-02"}, "2025-04-02")
	assert.Len(t, got, 2)

	assert.Empty(t, Query(nil, QueryFilter{}, "2025-04-02"))
}

func TestQueryFilter_Validate(t *testing.T) {
	assert.NoError(t, QueryFilter{From: "2025-04-01", To: "2025-04-01"}.Validate())
	assert.ErrorIs(t, QueryFilter{From: "2025-04-02", To: "2025-04-01"}.Validate(), ErrValidation)
	assert.ErrorIs(t, QueryFilter{From: "04/01/2025"}.Validate(), ErrValidation)
}
