package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblemStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ProblemStatus
		wantErr bool
	}{
		{
			name:  "valid open status",
			input: "open",
			want:  StatusOpen,
		},
		{
			name:  "valid in_progress status",
			input: "in_progress",
			want:  StatusInProgress,
		},
		{
			name:  "valid resolved status",
			input: "resolved",
			want:  StatusResolved,
		},
		{
			name:  "valid closed status",
			input: "closed",
			want:  StatusClosed,
		},
		{
			name:    "invalid status",
			input:   "pending",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "case sensitive - uppercase",
			input:   "OPEN",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewProblemStatus(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestProblemStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ProblemStatus
		to   ProblemStatus
		want bool
	}{
		{"open to in_progress", StatusOpen, StatusInProgress, true},
		{"open to resolved", StatusOpen, StatusResolved, true},
		{"open to closed", StatusOpen, StatusClosed, true},
		{"in_progress to resolved", StatusInProgress, StatusResolved, true},
		{"in_progress to closed", StatusInProgress, StatusClosed, true},
		{"resolved to closed", StatusResolved, StatusClosed, true},
		{"in_progress to open", StatusInProgress, StatusOpen, false},
		{"resolved to open", StatusResolved, StatusOpen, false},
		{"resolved to in_progress", StatusResolved, StatusInProgress, false},
		{"closed is terminal", StatusClosed, StatusOpen, false},
		{"closed to resolved", StatusClosed, StatusResolved, false},
		{"unknown status", ProblemStatus("pending"), StatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestProblemStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status ProblemStatus
		want   bool
	}{
		{"open is valid", StatusOpen, true},
		{"in_progress is valid", StatusInProgress, true},
		{"resolved is valid", StatusResolved, true},
		{"closed is valid", StatusClosed, true},
		{"invalid status", ProblemStatus("reopened"), false},
		{"empty status", ProblemStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestAllProblemStatuses(t *testing.T) {
	statuses := AllProblemStatuses()

	assert.Len(t, statuses, 4)
	for _, s := range statuses {
		assert.True(t, s.IsValid())
	}
}
