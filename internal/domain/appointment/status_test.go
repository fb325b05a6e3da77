package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"pending":   StatusPending,
		"Confirmed": StatusConfirmed,
		"upcoming":  StatusConfirmed,
		"scheduled": StatusConfirmed,
		"canceled":  StatusCancelled,
		" no_show ": StatusMissed,
		"completed": StatusCompleted,
	}
	for raw, want := range cases {
		got, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseStatus("archived")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStatus_DisplayLabel(t *testing.T) {
	assert.Equal(t, "upcoming", StatusConfirmed.DisplayLabel())
	assert.Equal(t, "pending", StatusPending.DisplayLabel())
	assert.Equal(t, "cancelled", StatusCancelled.DisplayLabel())
}

func TestStatus_Classes(t *testing.T) {
	for _, s := range AllStatuses {
		assert.NotEqual(t, s.IsActive(), s.IsTerminal(), s)
	}
}

func TestPolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultPolicy().Validate())

	p := DefaultPolicy()
	p.HorizonDays = 0
	assert.Error(t, p.Validate())

	p = DefaultPolicy()
	p.InitialStatus = StatusCompleted
	assert.Error(t, p.Validate())

	p = DefaultPolicy()
	p.CancelLeadTime = -1
	assert.Error(t, p.Validate())
}
