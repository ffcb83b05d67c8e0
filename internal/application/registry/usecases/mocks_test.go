package usecases

import (
	"context"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/logger"
)

type mockClientRepository struct {
	SaveFunc     func(ctx context.Context, c *registry.Client) error
	FindByIDFunc func(ctx context.Context, id uint) (*registry.Client, error)
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	ListFunc     func(ctx context.Context) ([]*registry.Client, error)
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *registry.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, id uint) (*registry.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockClientRepository) List(ctx context.Context) ([]*registry.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockClientRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockTechnicianRepository struct {
	SaveFunc     func(ctx context.Context, t *registry.Technician) error
	FindByIDFunc func(ctx context.Context, id uint) (*registry.Technician, error)
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	ListFunc     func(ctx context.Context) ([]*registry.Technician, error)
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *mockTechnicianRepository) Save(ctx context.Context, t *registry.Technician) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTechnicianRepository) FindByID(ctx context.Context, id uint) (*registry.Technician, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockTechnicianRepository) List(ctx context.Context) ([]*registry.Technician, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockProblemRepository struct {
	SaveFunc            func(ctx context.Context, p *registry.Problem) error
	UpdateFunc          func(ctx context.Context, p *registry.Problem) error
	FindByIDFunc        func(ctx context.Context, id uint) (*registry.Problem, error)
	ExistsFunc          func(ctx context.Context, id uint) (bool, error)
	ListFunc            func(ctx context.Context) ([]*registry.Problem, error)
	CountFunc           func(ctx context.Context) (int64, error)
	CountByStatusFunc   func(ctx context.Context) (map[string]int64, error)
	CountUnassignedFunc func(ctx context.Context) (int64, error)
}

func (m *mockProblemRepository) Save(ctx context.Context, p *registry.Problem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProblemRepository) Update(ctx context.Context, p *registry.Problem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProblemRepository) FindByID(ctx context.Context, id uint) (*registry.Problem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProblemRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockProblemRepository) List(ctx context.Context) ([]*registry.Problem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockProblemRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockProblemRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *mockProblemRepository) CountUnassigned(ctx context.Context) (int64, error) {
	if m.CountUnassignedFunc != nil {
		return m.CountUnassignedFunc(ctx)
	}
	return 0, nil
}

type mockSolutionRepository struct {
	SaveFunc                      func(ctx context.Context, s *registry.Solution) error
	FindByIDFunc                  func(ctx context.Context, id uint) (*registry.Solution, error)
	ExistsFunc                    func(ctx context.Context, id uint) (bool, error)
	FindByProblemIDFunc           func(ctx context.Context, problemID uint) ([]*registry.Solution, error)
	SaveRatingFunc                func(ctx context.Context, r *registry.Rating) error
	CountFunc                     func(ctx context.Context) (int64, error)
	AverageRatingFunc             func(ctx context.Context) (float64, int64, error)
	AverageRatingByDifficultyFunc func(ctx context.Context) (map[int]float64, error)
}

func (m *mockSolutionRepository) Save(ctx context.Context, s *registry.Solution) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSolutionRepository) FindByID(ctx context.Context, id uint) (*registry.Solution, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSolutionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockSolutionRepository) FindByProblemID(ctx context.Context, problemID uint) ([]*registry.Solution, error) {
	if m.FindByProblemIDFunc != nil {
		return m.FindByProblemIDFunc(ctx, problemID)
	}
	return nil, nil
}

func (m *mockSolutionRepository) SaveRating(ctx context.Context, r *registry.Rating) error {
	if m.SaveRatingFunc != nil {
		return m.SaveRatingFunc(ctx, r)
	}
	return nil
}

func (m *mockSolutionRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockSolutionRepository) AverageRating(ctx context.Context) (float64, int64, error) {
	if m.AverageRatingFunc != nil {
		return m.AverageRatingFunc(ctx)
	}
	return 0, 0, nil
}

func (m *mockSolutionRepository) AverageRatingByDifficulty(ctx context.Context) (map[int]float64, error) {
	if m.AverageRatingByDifficultyFunc != nil {
		return m.AverageRatingByDifficultyFunc(ctx)
	}
	return map[int]float64{}, nil
}

type mockStoreInspector struct {
	TableCountsFunc func(ctx context.Context) (map[string]int64, error)
}

func (m *mockStoreInspector) TableCounts(ctx context.Context) (map[string]int64, error) {
	if m.TableCountsFunc != nil {
		return m.TableCountsFunc(ctx)
	}
	return map[string]int64{}, nil
}

// mockTxRunner executes the callback directly without a database.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
