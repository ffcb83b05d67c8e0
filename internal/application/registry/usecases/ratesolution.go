package usecases

import (
	"context"
	"fmt"
	"time"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type RateSolutionCommand struct {
	SolutionID uint
	Score      int
	Feedback   string
	RatedBy    string
}

type RateSolutionResult struct {
	RatingID   uint
	SolutionID uint
	CreatedAt  time.Time
}

type RateSolutionUseCase struct {
	solutionRepo registry.SolutionRepository
	txMgr        TransactionRunner
	logger       logger.Interface
}

func NewRateSolutionUseCase(
	solutionRepo registry.SolutionRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *RateSolutionUseCase {
	return &RateSolutionUseCase{
		solutionRepo: solutionRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *RateSolutionUseCase) Execute(ctx context.Context, cmd RateSolutionCommand) (*RateSolutionResult, error) {
	uc.logger.Infow("executing rate solution use case", "solution_id", cmd.SolutionID, "score", cmd.Score)

	rating, err := registry.NewRating(cmd.SolutionID, cmd.Score, cmd.Feedback, cmd.RatedBy)
	if err != nil {
		uc.logger.Errorw("failed to create rating entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.solutionRepo.Exists(txCtx, cmd.SolutionID)
		if err != nil {
			uc.logger.Errorw("failed to check solution reference", "solution_id", cmd.SolutionID, "error", err)
			return errors.NewStorageError("failed to check solution reference")
		}
		if !exists {
			return errors.NewReferenceError(fmt.Sprintf("solution %d does not exist", cmd.SolutionID))
		}

		if err := uc.solutionRepo.SaveRating(txCtx, rating); err != nil {
			uc.logger.Errorw("failed to save rating", "error", err)
			return errors.NewStorageError("failed to save rating")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("solution rated successfully", "rating_id", rating.ID(), "solution_id", cmd.SolutionID)

	return &RateSolutionResult{
		RatingID:   rating.ID(),
		SolutionID: cmd.SolutionID,
		CreatedAt:  rating.CreatedAt(),
	}, nil
}
