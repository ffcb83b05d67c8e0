package system

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/infrastructure/persistence/seeds"
	"jetdesk/internal/interfaces/http/handlers/testutil"
	"jetdesk/internal/shared/errors"
)

type mockStatisticsUC struct {
	result *usecases.GetSystemStatisticsResult
	err    error
}

func (m *mockStatisticsUC) Execute(_ context.Context, _ usecases.GetSystemStatisticsQuery) (*usecases.GetSystemStatisticsResult, error) {
	return m.result, m.err
}

type mockDatabaseInfoUC struct {
	result *usecases.GetDatabaseInfoResult
	err    error
}

func (m *mockDatabaseInfoUC) Execute(_ context.Context, _ usecases.GetDatabaseInfoQuery) (*usecases.GetDatabaseInfoResult, error) {
	return m.result, m.err
}

type mockSeeder struct {
	summary *seeds.Summary
	err     error
}

func (m *mockSeeder) Run(_ context.Context) (*seeds.Summary, error) {
	return m.summary, m.err
}

func TestSystemHandler_Health(t *testing.T) {
	handler := NewSystemHandler(&mockStatisticsUC{}, &mockDatabaseInfoUC{}, &mockSeeder{})

	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

	handler.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestSystemHandler_GetStatistics_Success(t *testing.T) {
	statsUC := &mockStatisticsUC{
		result: &usecases.GetSystemStatisticsResult{
			TotalProblems: 3,
			ProblemsByStatus: map[string]int64{
				"open":        1,
				"in_progress": 1,
				"resolved":    1,
				"closed":      0,
			},
			UnassignedProblems: 2,
			TotalClients:       2,
			TotalTechnicians:   2,
			TotalSolutions:     3,
			TotalRatings:       3,
			AverageRating:      4.0,
			RatingsByDifficulty: map[int]float64{
				2: 4.5,
				3: 3.0,
			},
		},
	}
	handler := NewSystemHandler(statsUC, &mockDatabaseInfoUC{}, &mockSeeder{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/statistics", nil)

	handler.GetStatistics(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var data StatisticsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(3), data.TotalProblems)
	assert.Equal(t, int64(2), data.UnassignedProblems)
	assert.InDelta(t, 4.0, data.AverageRating, 0.001)

	// Every status appears, including the empty one
	assert.Len(t, data.ProblemsByStatus, 4)
	assert.Equal(t, int64(0), data.ProblemsByStatus["closed"])
}

func TestSystemHandler_GetStatistics_Error(t *testing.T) {
	handler := NewSystemHandler(
		&mockStatisticsUC{err: errors.NewStorageError("aggregation failed")},
		&mockDatabaseInfoUC{},
		&mockSeeder{},
	)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/statistics", nil)

	handler.GetStatistics(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSystemHandler_GetDatabaseInfo_Success(t *testing.T) {
	infoUC := &mockDatabaseInfoUC{
		result: &usecases.GetDatabaseInfoResult{
			Driver:    "sqlite",
			Path:      "data/jetdesk.db",
			SizeBytes: 16384,
			TableCounts: map[string]int64{
				"clients":  2,
				"problems": 3,
			},
		},
	}
	handler := NewSystemHandler(&mockStatisticsUC{}, infoUC, &mockSeeder{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/db_info", nil)

	handler.GetDatabaseInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data DatabaseInfoResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "sqlite", data.Driver)
	assert.Equal(t, int64(16384), data.SizeBytes)
	assert.Equal(t, int64(3), data.TableCounts["problems"])
}

func TestSystemHandler_SeedDemoData_Success(t *testing.T) {
	seeder := &mockSeeder{
		summary: &seeds.Summary{
			ClientIDs:     []uint{1, 2},
			TechnicianIDs: []uint{1, 2},
			ProblemIDs:    []uint{1, 2, 3},
			SolutionIDs:   []uint{1, 2, 3},
		},
	}
	handler := NewSystemHandler(&mockStatisticsUC{}, &mockDatabaseInfoUC{}, seeder)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/demo_data", nil)

	handler.SeedDemoData(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var data struct {
		ClientIDs  []uint `json:"client_ids"`
		ProblemIDs []uint `json:"problem_ids"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data.ClientIDs, 2)
	assert.Len(t, data.ProblemIDs, 3)
}

func TestSystemHandler_SeedDemoData_Error(t *testing.T) {
	handler := NewSystemHandler(
		&mockStatisticsUC{},
		&mockDatabaseInfoUC{},
		&mockSeeder{err: errors.NewStorageError("insert failed")},
	)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/demo_data", nil)

	handler.SeedDemoData(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
