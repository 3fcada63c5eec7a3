package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUrgency(t *testing.T) {
	tests := []struct {
		in      string
		want    Urgency
		wantErr bool
	}{
		{in: "", want: UrgencyWeek},
		{in: "immediate", want: UrgencyImmediate},
		{in: "day", want: UrgencyDay},
		{in: "week", want: UrgencyWeek},
		{in: "Week", wantErr: true},
		{in: "month", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUrgency(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusPending.CanTransitionTo(StatusBroken))
	assert.False(t, StatusPending.CanTransitionTo(StatusPending))

	for _, from := range []TaskStatus{StatusCompleted, StatusBroken} {
		for _, to := range []TaskStatus{StatusPending, StatusCompleted, StatusBroken} {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, TaskStatus("archived").Valid())
}
