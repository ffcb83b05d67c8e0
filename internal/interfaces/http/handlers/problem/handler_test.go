package problem

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/interfaces/http/handlers/testutil"
	"jetdesk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockAddProblemUC struct {
	result *usecases.AddProblemResult
	err    error
}

func (m *mockAddProblemUC) Execute(_ context.Context, _ usecases.AddProblemCommand) (*usecases.AddProblemResult, error) {
	return m.result, m.err
}

type mockUpdateStatusUC struct {
	result *usecases.UpdateProblemStatusResult
	err    error
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, _ usecases.UpdateProblemStatusCommand) (*usecases.UpdateProblemStatusResult, error) {
	return m.result, m.err
}

type mockUpdateProblemUC struct {
	result  *usecases.UpdateProblemResult
	err     error
	lastCmd usecases.UpdateProblemCommand
}

func (m *mockUpdateProblemUC) Execute(_ context.Context, cmd usecases.UpdateProblemCommand) (*usecases.UpdateProblemResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListProblemsUC struct {
	result *usecases.ListProblemsResult
	err    error
}

func (m *mockListProblemsUC) Execute(_ context.Context, _ usecases.ListProblemsQuery) (*usecases.ListProblemsResult, error) {
	return m.result, m.err
}

type mockAddSolutionUC struct {
	result *usecases.AddSolutionResult
	err    error
}

func (m *mockAddSolutionUC) Execute(_ context.Context, _ usecases.AddSolutionCommand) (*usecases.AddSolutionResult, error) {
	return m.result, m.err
}

type mockListSolutionsUC struct {
	result *usecases.ListSolutionsForProblemResult
	err    error
}

func (m *mockListSolutionsUC) Execute(_ context.Context, _ usecases.ListSolutionsForProblemQuery) (*usecases.ListSolutionsForProblemResult, error) {
	return m.result, m.err
}

type mockRateSolutionUC struct {
	result *usecases.RateSolutionResult
	err    error
}

func (m *mockRateSolutionUC) Execute(_ context.Context, _ usecases.RateSolutionCommand) (*usecases.RateSolutionResult, error) {
	return m.result, m.err
}

type mockListClientsUC struct {
	result *usecases.ListClientsResult
	err    error
}

func (m *mockListClientsUC) Execute(_ context.Context, _ usecases.ListClientsQuery) (*usecases.ListClientsResult, error) {
	return m.result, m.err
}

type mockListTechniciansUC struct {
	result *usecases.ListTechniciansResult
	err    error
}

func (m *mockListTechniciansUC) Execute(_ context.Context, _ usecases.ListTechniciansQuery) (*usecases.ListTechniciansResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	addProblemUC      usecases.AddProblemExecutor
	updateStatusUC    usecases.UpdateProblemStatusExecutor
	updateProblemUC   usecases.UpdateProblemExecutor
	listProblemsUC    usecases.ListProblemsExecutor
	addSolutionUC     usecases.AddSolutionExecutor
	listSolutionsUC   usecases.ListSolutionsForProblemExecutor
	rateSolutionUC    usecases.RateSolutionExecutor
	listClientsUC     usecases.ListClientsExecutor
	listTechniciansUC usecases.ListTechniciansExecutor
}

func newTestProblemHandler(deps testDeps) *ProblemHandler {
	if deps.listClientsUC == nil {
		deps.listClientsUC = &mockListClientsUC{result: &usecases.ListClientsResult{}}
	}
	if deps.listTechniciansUC == nil {
		deps.listTechniciansUC = &mockListTechniciansUC{result: &usecases.ListTechniciansResult{}}
	}

	return NewProblemHandler(
		deps.addProblemUC,
		deps.updateStatusUC,
		deps.updateProblemUC,
		deps.listProblemsUC,
		deps.addSolutionUC,
		deps.listSolutionsUC,
		deps.rateSolutionUC,
		deps.listClientsUC,
		deps.listTechniciansUC,
	)
}

// =====================================================================
// TestProblemHandler_AddProblem
// =====================================================================

func TestProblemHandler_AddProblem_Success(t *testing.T) {
	mockUC := &mockAddProblemUC{
		result: &usecases.AddProblemResult{
			ProblemID: 1,
			Status:    "open",
			CreatedAt: time.Now().UTC(),
		},
	}
	handler := newTestProblemHandler(testDeps{addProblemUC: mockUC})

	reqBody := AddProblemRequest{
		Title:        "Print head misfires",
		Model:        "HandJet EBS-260",
		SerialNumber: "SN-1001",
		ClientID:     1,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/problems", reqBody)

	handler.AddProblem(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestProblemHandler_AddProblem_BindError(t *testing.T) {
	handler := newTestProblemHandler(testDeps{})

	// Missing model, serial_number and client_id
	reqBody := map[string]string{"title": "only title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/problems", reqBody)

	handler.AddProblem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestProblemHandler_AddProblem_UnknownClient(t *testing.T) {
	mockUC := &mockAddProblemUC{
		err: errors.NewReferenceError("client 99 does not exist"),
	}
	handler := newTestProblemHandler(testDeps{addProblemUC: mockUC})

	reqBody := AddProblemRequest{
		Title:        "Print head misfires",
		Model:        "HandJet EBS-260",
		SerialNumber: "SN-1001",
		ClientID:     99,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/problems", reqBody)

	handler.AddProblem(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "reference_error", resp.Error.Type)
}

// =====================================================================
// TestProblemHandler_ListProblems
// =====================================================================

func TestProblemHandler_ListProblems_JoinsNames(t *testing.T) {
	techID := uint(7)
	listUC := &mockListProblemsUC{
		result: &usecases.ListProblemsResult{
			Problems: []usecases.ProblemData{
				{ID: 1, Title: "Nozzle clog", ClientID: 3, TechnicianID: &techID, Status: "in_progress"},
				{ID: 2, Title: "No power", ClientID: 99, Status: "open"},
			},
			Total: 2,
		},
	}
	clientsUC := &mockListClientsUC{
		result: &usecases.ListClientsResult{
			Clients: []usecases.ClientData{
				{ID: 3, Name: "Fast Print Co.", ContactPhone: "0501234567"},
			},
			Total: 1,
		},
	}
	techniciansUC := &mockListTechniciansUC{
		result: &usecases.ListTechniciansResult{
			Technicians: []usecases.TechnicianData{
				{ID: 7, Name: "Ahmed Saleh"},
			},
			Total: 1,
		},
	}
	handler := newTestProblemHandler(testDeps{
		listProblemsUC:    listUC,
		listClientsUC:     clientsUC,
		listTechniciansUC: techniciansUC,
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/problems", nil)

	handler.ListProblems(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.True(t, resp.Success)

	var data struct {
		Problems []ProblemResponse `json:"problems"`
		Total    int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Problems, 2)
	assert.Equal(t, 2, data.Total)

	assert.Equal(t, "Fast Print Co.", data.Problems[0].ClientName)
	assert.Equal(t, "0501234567", data.Problems[0].ClientPhoneNumber)
	assert.Equal(t, "Ahmed Saleh", data.Problems[0].TechnicianName)

	// Unknown client and no technician fall back to placeholders
	assert.Equal(t, "Unknown", data.Problems[1].ClientName)
	assert.Equal(t, "Unassigned", data.Problems[1].TechnicianName)
}

func TestProblemHandler_ListProblems_LookupFailureDegradesNames(t *testing.T) {
	listUC := &mockListProblemsUC{
		result: &usecases.ListProblemsResult{
			Problems: []usecases.ProblemData{
				{ID: 1, Title: "Nozzle clog", ClientID: 3, Status: "open"},
			},
			Total: 1,
		},
	}
	handler := newTestProblemHandler(testDeps{
		listProblemsUC:    listUC,
		listClientsUC:     &mockListClientsUC{err: errors.NewStorageError("clients unavailable")},
		listTechniciansUC: &mockListTechniciansUC{err: errors.NewStorageError("technicians unavailable")},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/problems", nil)

	handler.ListProblems(c)

	// The listing itself still succeeds
	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var data struct {
		Problems []ProblemResponse `json:"problems"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Problems, 1)
	assert.Equal(t, "Unknown", data.Problems[0].ClientName)
}

func TestProblemHandler_ListProblems_UseCaseError(t *testing.T) {
	handler := newTestProblemHandler(testDeps{
		listProblemsUC: &mockListProblemsUC{err: errors.NewStorageError("query failed")},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/problems", nil)

	handler.ListProblems(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// =====================================================================
// TestProblemHandler_UpdateProblemStatus
// =====================================================================

func TestProblemHandler_UpdateProblemStatus_Success(t *testing.T) {
	mockUC := &mockUpdateStatusUC{
		result: &usecases.UpdateProblemStatusResult{
			ProblemID: 1,
			OldStatus: "open",
			NewStatus: "in_progress",
			UpdatedAt: time.Now().UTC(),
		},
	}
	handler := newTestProblemHandler(testDeps{updateStatusUC: mockUC})

	reqBody := UpdateProblemStatusRequest{Status: "in_progress"}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/problems/1/status", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateProblemStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data struct {
		OldStatus string `json:"old_status"`
		NewStatus string `json:"new_status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "open", data.OldStatus)
	assert.Equal(t, "in_progress", data.NewStatus)
}

func TestProblemHandler_UpdateProblemStatus_InvalidID(t *testing.T) {
	handler := newTestProblemHandler(testDeps{})

	reqBody := UpdateProblemStatusRequest{Status: "resolved"}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/problems/abc/status", reqBody)
	testutil.SetURLParam(c, "id", "abc")

	handler.UpdateProblemStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProblemHandler_UpdateProblemStatus_NotFound(t *testing.T) {
	handler := newTestProblemHandler(testDeps{
		updateStatusUC: &mockUpdateStatusUC{err: errors.NewNotFoundError("problem 42 not found")},
	})

	reqBody := UpdateProblemStatusRequest{Status: "resolved"}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/problems/42/status", reqBody)
	testutil.SetURLParam(c, "id", "42")

	handler.UpdateProblemStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestProblemHandler_UpdateProblem
// =====================================================================

func TestProblemHandler_UpdateProblem_Success(t *testing.T) {
	mockUC := &mockUpdateProblemUC{
		result: &usecases.UpdateProblemResult{
			ProblemID: 1,
			Status:    "in_progress",
			UpdatedAt: time.Now().UTC(),
		},
	}
	handler := newTestProblemHandler(testDeps{updateProblemUC: mockUC})

	desc := "Updated description"
	techID := uint(2)
	reqBody := UpdateProblemRequest{Description: &desc, TechnicianID: &techID}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/problems/1", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateProblem(c)

	assert.Equal(t, http.StatusOK, w.Code)

	// Only the provided fields reach the command
	require.NotNil(t, mockUC.lastCmd.Description)
	assert.Equal(t, "Updated description", *mockUC.lastCmd.Description)
	require.NotNil(t, mockUC.lastCmd.TechnicianID)
	assert.Equal(t, uint(2), *mockUC.lastCmd.TechnicianID)
	assert.Nil(t, mockUC.lastCmd.Status)
	assert.Nil(t, mockUC.lastCmd.Priority)
}

func TestProblemHandler_UpdateProblem_UnknownTechnician(t *testing.T) {
	handler := newTestProblemHandler(testDeps{
		updateProblemUC: &mockUpdateProblemUC{err: errors.NewReferenceError("technician 99 does not exist")},
	})

	techID := uint(99)
	reqBody := UpdateProblemRequest{TechnicianID: &techID}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/problems/1", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateProblem(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// =====================================================================
// TestProblemHandler_AddSolution
// =====================================================================

func TestProblemHandler_AddSolution_Success(t *testing.T) {
	mockUC := &mockAddSolutionUC{
		result: &usecases.AddSolutionResult{SolutionID: 5, CreatedAt: time.Now().UTC()},
	}
	handler := newTestProblemHandler(testDeps{addSolutionUC: mockUC})

	reqBody := AddSolutionRequest{
		Title: "Clean the nozzle",
		Steps: "1. Power off\n2. Flush with solvent",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/problems/1/solutions", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.AddSolution(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProblemHandler_AddSolution_BindError(t *testing.T) {
	handler := newTestProblemHandler(testDeps{})

	// Missing steps
	reqBody := map[string]string{"title": "Clean the nozzle"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/problems/1/solutions", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.AddSolution(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestProblemHandler_ListSolutions
// =====================================================================

func TestProblemHandler_ListSolutions_Success(t *testing.T) {
	mockUC := &mockListSolutionsUC{
		result: &usecases.ListSolutionsForProblemResult{
			ProblemID: 1,
			Solutions: []usecases.SolutionData{
				{ID: 5, ProblemID: 1, Title: "Clean the nozzle", Steps: "Flush", AverageRating: 4.5, RatingCount: 2},
			},
			Total: 1,
		},
	}
	handler := newTestProblemHandler(testDeps{listSolutionsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/problems/1/solutions", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.ListSolutions(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data struct {
		Solutions []SolutionResponse `json:"solutions"`
		Total     int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Solutions, 1)
	assert.InDelta(t, 4.5, data.Solutions[0].AverageRating, 0.001)
	assert.Equal(t, 2, data.Solutions[0].RatingCount)
}

func TestProblemHandler_ListSolutions_ProblemNotFound(t *testing.T) {
	handler := newTestProblemHandler(testDeps{
		listSolutionsUC: &mockListSolutionsUC{err: errors.NewNotFoundError("problem 42 not found")},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/problems/42/solutions", nil)
	testutil.SetURLParam(c, "id", "42")

	handler.ListSolutions(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestProblemHandler_RateSolution
// =====================================================================

func TestProblemHandler_RateSolution_Success(t *testing.T) {
	mockUC := &mockRateSolutionUC{
		result: &usecases.RateSolutionResult{RatingID: 9, SolutionID: 5, CreatedAt: time.Now().UTC()},
	}
	handler := newTestProblemHandler(testDeps{rateSolutionUC: mockUC})

	reqBody := RateSolutionRequest{Score: 5, Feedback: "Worked perfectly"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/solutions/5/rate", reqBody)
	testutil.SetURLParam(c, "id", "5")

	handler.RateSolution(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProblemHandler_RateSolution_ScoreOutOfRange(t *testing.T) {
	handler := newTestProblemHandler(testDeps{})

	reqBody := map[string]int{"rating": 6}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/solutions/5/rate", reqBody)
	testutil.SetURLParam(c, "id", "5")

	handler.RateSolution(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
