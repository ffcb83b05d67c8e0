package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jetdesk/internal/shared/biztime"
)

func TestNewSolution(t *testing.T) {
	tests := []struct {
		name      string
		problemID uint
		title     string
		steps     string
		details   SolutionDetails
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid solution with defaults",
			problemID: 1,
			title:     "Clean head",
			steps:     "1. Power off. 2. Wipe the print head.",
		},
		{
			name:      "valid solution with all details",
			problemID: 1,
			title:     "Replace print head",
			steps:     "1. Power off. 2. Remove old head. 3. Fit new head. 4. Calibrate.",
			details: SolutionDetails{
				ToolsNeeded:     "screwdriver, calibration kit",
				TimeRequired:    "45m",
				SolutionType:    "hardware",
				DifficultyLevel: 4,
				Notes:           "order part HJ-250-PH",
				CreatedBy:       "jane",
			},
		},
		{
			name:      "missing problem ID",
			problemID: 0,
			title:     "Clean head",
			steps:     "wipe it",
			wantErr:   true,
			errMsg:    "problem ID is required",
		},
		{
			name:      "missing title",
			problemID: 1,
			title:     "",
			steps:     "wipe it",
			wantErr:   true,
			errMsg:    "title is required",
		},
		{
			name:      "missing steps",
			problemID: 1,
			title:     "Clean head",
			steps:     "",
			wantErr:   true,
			errMsg:    "steps are required",
		},
		{
			name:      "difficulty below range",
			problemID: 1,
			title:     "Clean head",
			steps:     "wipe it",
			details:   SolutionDetails{DifficultyLevel: -1},
			wantErr:   true,
			errMsg:    "difficulty level must be between",
		},
		{
			name:      "difficulty above range",
			problemID: 1,
			title:     "Clean head",
			steps:     "wipe it",
			details:   SolutionDetails{DifficultyLevel: 6},
			wantErr:   true,
			errMsg:    "difficulty level must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSolution(tt.problemID, tt.title, tt.steps, tt.details)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.problemID, s.ProblemID())
			assert.Equal(t, tt.title, s.Title())
			assert.Equal(t, tt.steps, s.Steps())
			assert.Empty(t, s.Ratings())
		})
	}
}

func TestNewSolution_DefaultDifficulty(t *testing.T) {
	s, err := NewSolution(1, "Clean head", "wipe it", SolutionDetails{})
	require.NoError(t, err)
	assert.Equal(t, DefaultDifficultyLevel, s.DifficultyLevel())
}

func TestSolution_AverageRating(t *testing.T) {
	s, err := ReconstructSolution(3, 1, "Clean head", "wipe it",
		SolutionDetails{DifficultyLevel: 2}, biztime.NowUTC())
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.AverageRating())
	assert.Equal(t, 0, s.RatingCount())

	for _, score := range []int{5, 4, 3} {
		r, err := NewRating(3, score, "", "")
		require.NoError(t, err)
		require.NoError(t, s.AddRating(r))
	}

	assert.Equal(t, 3, s.RatingCount())
	assert.InDelta(t, 4.0, s.AverageRating(), 0.0001)
}

func TestSolution_AddRating_Mismatch(t *testing.T) {
	s, err := ReconstructSolution(3, 1, "Clean head", "wipe it",
		SolutionDetails{DifficultyLevel: 2}, biztime.NowUTC())
	require.NoError(t, err)

	r, err := NewRating(99, 5, "", "")
	require.NoError(t, err)

	err = s.AddRating(r)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestNewRating(t *testing.T) {
	tests := []struct {
		name       string
		solutionID uint
		score      int
		wantErr    bool
	}{
		{"minimum score", 1, 1, false},
		{"maximum score", 1, 5, false},
		{"score below range", 1, 0, true},
		{"score above range", 1, 6, true},
		{"negative score", 1, -3, true},
		{"missing solution ID", 0, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRating(tt.solutionID, tt.score, "works great", "acme")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.score, r.Score())
			assert.Equal(t, "works great", r.Feedback())
			assert.Equal(t, "acme", r.RatedBy())
		})
	}
}
