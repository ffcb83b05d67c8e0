package registry

import "context"

// ClientRepository persists clients. Clients are append-only; List returns
// them ordered by id ascending.
type ClientRepository interface {
	Save(ctx context.Context, client *Client) error
	FindByID(ctx context.Context, clientID uint) (*Client, error)
	Exists(ctx context.Context, clientID uint) (bool, error)
	List(ctx context.Context) ([]*Client, error)
	Count(ctx context.Context) (int64, error)
}

// TechnicianRepository persists technicians, ordered by id ascending.
type TechnicianRepository interface {
	Save(ctx context.Context, technician *Technician) error
	FindByID(ctx context.Context, technicianID uint) (*Technician, error)
	Exists(ctx context.Context, technicianID uint) (bool, error)
	List(ctx context.Context) ([]*Technician, error)
	Count(ctx context.Context) (int64, error)
}

// ProblemRepository persists problems. List returns the full table ordered by
// id ascending, which matches insertion order since ids are monotonic.
type ProblemRepository interface {
	Save(ctx context.Context, problem *Problem) error
	Update(ctx context.Context, problem *Problem) error
	FindByID(ctx context.Context, problemID uint) (*Problem, error)
	Exists(ctx context.Context, problemID uint) (bool, error)
	List(ctx context.Context) ([]*Problem, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountUnassigned(ctx context.Context) (int64, error)
}

// SolutionRepository persists solutions and their rating rows. Loaded
// solutions carry their ratings so averages can be derived on read.
type SolutionRepository interface {
	Save(ctx context.Context, solution *Solution) error
	FindByID(ctx context.Context, solutionID uint) (*Solution, error)
	Exists(ctx context.Context, solutionID uint) (bool, error)
	FindByProblemID(ctx context.Context, problemID uint) ([]*Solution, error)
	SaveRating(ctx context.Context, rating *Rating) error
	Count(ctx context.Context) (int64, error)
	AverageRating(ctx context.Context) (float64, int64, error)
	AverageRatingByDifficulty(ctx context.Context) (map[int]float64, error)
}

// StoreInspector reports diagnostic metadata about the underlying store.
type StoreInspector interface {
	TableCounts(ctx context.Context) (map[string]int64, error)
}
