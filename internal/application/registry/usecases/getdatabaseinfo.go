package usecases

import (
	"context"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type GetDatabaseInfoQuery struct{}

// StoreInfo describes the live store connection. Path and SizeBytes are only
// meaningful for file-backed drivers.
type StoreInfo struct {
	Driver    string
	Path      string
	SizeBytes int64
}

// StoreInfoFunc supplies connection metadata from the infrastructure layer.
type StoreInfoFunc func() StoreInfo

type GetDatabaseInfoResult struct {
	Driver      string
	Path        string
	SizeBytes   int64
	TableCounts map[string]int64
}

type GetDatabaseInfoUseCase struct {
	inspector registry.StoreInspector
	storeInfo StoreInfoFunc
	logger    logger.Interface
}

func NewGetDatabaseInfoUseCase(
	inspector registry.StoreInspector,
	storeInfo StoreInfoFunc,
	logger logger.Interface,
) *GetDatabaseInfoUseCase {
	return &GetDatabaseInfoUseCase{
		inspector: inspector,
		storeInfo: storeInfo,
		logger:    logger,
	}
}

func (uc *GetDatabaseInfoUseCase) Execute(ctx context.Context, _ GetDatabaseInfoQuery) (*GetDatabaseInfoResult, error) {
	uc.logger.Debugw("executing get database info use case")

	counts, err := uc.inspector.TableCounts(ctx)
	if err != nil {
		uc.logger.Errorw("failed to collect table counts", "error", err)
		return nil, errors.NewStorageError("failed to collect table counts")
	}

	info := uc.storeInfo()

	return &GetDatabaseInfoResult{
		Driver:      info.Driver,
		Path:        info.Path,
		SizeBytes:   info.SizeBytes,
		TableCounts: counts,
	}, nil
}
