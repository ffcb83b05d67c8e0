package system

type StatisticsResponse struct {
	TotalProblems       int64            `json:"total_problems"`
	ProblemsByStatus    map[string]int64 `json:"problems_by_status"`
	UnassignedProblems  int64            `json:"unassigned_problems"`
	TotalClients        int64            `json:"total_clients"`
	TotalTechnicians    int64            `json:"total_technicians"`
	TotalSolutions      int64            `json:"total_solutions"`
	TotalRatings        int64            `json:"total_ratings"`
	AverageRating       float64          `json:"average_rating"`
	RatingsByDifficulty map[int]float64  `json:"ratings_by_difficulty"`
}

type DatabaseInfoResponse struct {
	Driver      string           `json:"driver"`
	Path        string           `json:"path,omitempty"`
	SizeBytes   int64            `json:"size_bytes"`
	TableCounts map[string]int64 `json:"table_counts"`
}
