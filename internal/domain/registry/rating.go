package registry

import (
	"fmt"
	"time"

	"jetdesk/internal/shared/biztime"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a 1-5 score applied to a solution, with optional feedback.
// Every rating is persisted as its own row so the solution average can be
// recomputed from source data at any time.
type Rating struct {
	id         uint
	solutionID uint
	score      int
	feedback   string
	ratedBy    string
	createdAt  time.Time
}

func NewRating(
	solutionID uint,
	score int,
	feedback string,
	ratedBy string,
) (*Rating, error) {
	if solutionID == 0 {
		return nil, fmt.Errorf("solution ID is required")
	}
	if score < MinRatingScore || score > MaxRatingScore {
		return nil, fmt.Errorf("rating must be between %d and %d", MinRatingScore, MaxRatingScore)
	}

	return &Rating{
		solutionID: solutionID,
		score:      score,
		feedback:   feedback,
		ratedBy:    ratedBy,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructRating(
	id uint,
	solutionID uint,
	score int,
	feedback string,
	ratedBy string,
	createdAt time.Time,
) (*Rating, error) {
	if id == 0 {
		return nil, fmt.Errorf("rating ID cannot be zero")
	}
	if solutionID == 0 {
		return nil, fmt.Errorf("solution ID is required")
	}

	return &Rating{
		id:         id,
		solutionID: solutionID,
		score:      score,
		feedback:   feedback,
		ratedBy:    ratedBy,
		createdAt:  createdAt,
	}, nil
}

func (r *Rating) ID() uint {
	return r.id
}

func (r *Rating) SolutionID() uint {
	return r.solutionID
}

func (r *Rating) Score() int {
	return r.score
}

func (r *Rating) Feedback() string {
	return r.feedback
}

func (r *Rating) RatedBy() string {
	return r.ratedBy
}

func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rating ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("rating ID cannot be zero")
	}
	r.id = id
	return nil
}
