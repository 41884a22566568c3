package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to no_show", StatusConfirmed, StatusNoShow, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"no_show is terminal", StatusNoShow, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus())
}
