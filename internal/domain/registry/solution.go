package registry

import (
	"fmt"
	"time"

	"jetdesk/internal/shared/biztime"
)

const (
	// DefaultDifficultyLevel is assigned when a solution is proposed without one.
	DefaultDifficultyLevel = 2

	MinDifficultyLevel = 1
	MaxDifficultyLevel = 5
)

// Solution is a proposed fix belonging to exactly one problem. It is created
// once and never edited; it accumulates ratings over time.
type Solution struct {
	id              uint
	problemID       uint
	title           string
	steps           string
	toolsNeeded     string
	timeRequired    string
	solutionType    string
	difficultyLevel int
	notes           string
	createdBy       string
	createdAt       time.Time
	ratings         []*Rating
}

// SolutionDetails carries the optional attributes of a solution: zero-value
// strings mean "not provided", a zero DifficultyLevel falls back to
// DefaultDifficultyLevel.
type SolutionDetails struct {
	ToolsNeeded     string
	TimeRequired    string
	SolutionType    string
	DifficultyLevel int
	Notes           string
	CreatedBy       string
}

func NewSolution(
	problemID uint,
	title string,
	steps string,
	details SolutionDetails,
) (*Solution, error) {
	if problemID == 0 {
		return nil, fmt.Errorf("problem ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("steps are required")
	}

	difficulty := details.DifficultyLevel
	if difficulty == 0 {
		difficulty = DefaultDifficultyLevel
	}
	if difficulty < MinDifficultyLevel || difficulty > MaxDifficultyLevel {
		return nil, fmt.Errorf("difficulty level must be between %d and %d",
			MinDifficultyLevel, MaxDifficultyLevel)
	}

	return &Solution{
		problemID:       problemID,
		title:           title,
		steps:           steps,
		toolsNeeded:     details.ToolsNeeded,
		timeRequired:    details.TimeRequired,
		solutionType:    details.SolutionType,
		difficultyLevel: difficulty,
		notes:           details.Notes,
		createdBy:       details.CreatedBy,
		createdAt:       biztime.NowUTC(),
		ratings:         []*Rating{},
	}, nil
}

func ReconstructSolution(
	id uint,
	problemID uint,
	title string,
	steps string,
	details SolutionDetails,
	createdAt time.Time,
) (*Solution, error) {
	if id == 0 {
		return nil, fmt.Errorf("solution ID cannot be zero")
	}
	if problemID == 0 {
		return nil, fmt.Errorf("problem ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Solution{
		id:              id,
		problemID:       problemID,
		title:           title,
		steps:           steps,
		toolsNeeded:     details.ToolsNeeded,
		timeRequired:    details.TimeRequired,
		solutionType:    details.SolutionType,
		difficultyLevel: details.DifficultyLevel,
		notes:           details.Notes,
		createdBy:       details.CreatedBy,
		createdAt:       createdAt,
		ratings:         []*Rating{},
	}, nil
}

func (s *Solution) ID() uint {
	return s.id
}

func (s *Solution) ProblemID() uint {
	return s.problemID
}

func (s *Solution) Title() string {
	return s.title
}

func (s *Solution) Steps() string {
	return s.steps
}

func (s *Solution) ToolsNeeded() string {
	return s.toolsNeeded
}

func (s *Solution) TimeRequired() string {
	return s.timeRequired
}

func (s *Solution) SolutionType() string {
	return s.solutionType
}

func (s *Solution) DifficultyLevel() int {
	return s.difficultyLevel
}

func (s *Solution) Notes() string {
	return s.notes
}

func (s *Solution) CreatedBy() string {
	return s.createdBy
}

func (s *Solution) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Solution) Ratings() []*Rating {
	ratingsCopy := make([]*Rating, len(s.ratings))
	copy(ratingsCopy, s.ratings)
	return ratingsCopy
}

func (s *Solution) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("solution ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("solution ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Solution) AddRating(rating *Rating) error {
	if rating == nil {
		return fmt.Errorf("rating cannot be nil")
	}
	if rating.SolutionID() != s.id {
		return fmt.Errorf("rating solution ID mismatch")
	}

	s.ratings = append(s.ratings, rating)
	return nil
}

// RatingCount returns the number of ratings recorded for this solution.
func (s *Solution) RatingCount() int {
	return len(s.ratings)
}

// AverageRating derives the mean of the loaded ratings. Ratings are stored as
// individual rows and averaged on read, so the value never drifts. Returns 0
// when the solution has not been rated yet.
func (s *Solution) AverageRating() float64 {
	if len(s.ratings) == 0 {
		return 0
	}

	var sum int
	for _, r := range s.ratings {
		sum += r.Score()
	}
	return float64(sum) / float64(len(s.ratings))
}
