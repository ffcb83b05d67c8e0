package usecases

import "context"

// TransactionRunner abstracts the shared/db TransactionManager so use cases
// can be tested without a live database.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AddClientExecutor interface {
	Execute(ctx context.Context, cmd AddClientCommand) (*AddClientResult, error)
}

type AddTechnicianExecutor interface {
	Execute(ctx context.Context, cmd AddTechnicianCommand) (*AddTechnicianResult, error)
}

type AddProblemExecutor interface {
	Execute(ctx context.Context, cmd AddProblemCommand) (*AddProblemResult, error)
}

type UpdateProblemStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateProblemStatusCommand) (*UpdateProblemStatusResult, error)
}

type UpdateProblemExecutor interface {
	Execute(ctx context.Context, cmd UpdateProblemCommand) (*UpdateProblemResult, error)
}

type ListProblemsExecutor interface {
	Execute(ctx context.Context, query ListProblemsQuery) (*ListProblemsResult, error)
}

type AddSolutionExecutor interface {
	Execute(ctx context.Context, cmd AddSolutionCommand) (*AddSolutionResult, error)
}

type ListSolutionsForProblemExecutor interface {
	Execute(ctx context.Context, query ListSolutionsForProblemQuery) (*ListSolutionsForProblemResult, error)
}

type RateSolutionExecutor interface {
	Execute(ctx context.Context, cmd RateSolutionCommand) (*RateSolutionResult, error)
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error)
}

type ListTechniciansExecutor interface {
	Execute(ctx context.Context, query ListTechniciansQuery) (*ListTechniciansResult, error)
}

type GetSystemStatisticsExecutor interface {
	Execute(ctx context.Context, query GetSystemStatisticsQuery) (*GetSystemStatisticsResult, error)
}

type GetDatabaseInfoExecutor interface {
	Execute(ctx context.Context, query GetDatabaseInfoQuery) (*GetDatabaseInfoResult, error)
}
