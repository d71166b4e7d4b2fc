package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/hint"
	"svw.info/sudoku-cp/internal/solver"
	"svw.info/sudoku-cp/internal/usecase"
	"svw.info/sudoku-cp/internal/validator"
)

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	s := solver.NewConstraintSolver()
	uc := usecase.NewService(s, nil, validator.New(), hint.NewSingles(), nil)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestSolveWithGridString(t *testing.T) {
	mux := newTestMux(t)
	w := postJSON(t, mux, "/api/solve", map[string]string{"grid": classic})
	require.Equal(t, http.StatusOK, w.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Error)
	require.Len(t, resp.Grid, domain.GridLen)
	assert.NotContains(t, resp.Grid, "0")
	assert.Equal(t, byte('5'), resp.Grid[0])
	assert.Equal(t, byte('3'), resp.Grid[1])
}

func TestSolveWithBoardArray(t *testing.T) {
	mux := newTestMux(t)
	b, err := domain.ParseGrid(classic)
	require.NoError(t, err)

	w := postJSON(t, mux, "/api/solve", map[string]any{"board": b.Values})
	require.Equal(t, http.StatusOK, w.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Error)
	assert.NotContains(t, resp.Grid, "0")
}

func TestSolveUnsolvableReturnsError(t *testing.T) {
	mux := newTestMux(t)
	grid := "550" + classic[3:]
	w := postJSON(t, mux, "/api/solve", map[string]string{"grid": grid})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.Grid)
}

func TestSolveRejectsBadGrid(t *testing.T) {
	mux := newTestMux(t)
	w := postJSON(t, mux, "/api/solve", map[string]string{"grid": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateReportsConflicts(t *testing.T) {
	mux := newTestMux(t)
	var vals [9][9]uint8
	vals[0][0], vals[0][5] = 7, 7

	w := postJSON(t, mux, "/api/validate", map[string]any{"board": vals})
	require.Equal(t, http.StatusOK, w.Code)

	var resp validateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestHintEndpoint(t *testing.T) {
	mux := newTestMux(t)
	b, err := domain.ParseGrid(classic)
	require.NoError(t, err)

	w := postJSON(t, mux, "/api/hint", map[string]any{"board": b.Values})
	require.Equal(t, http.StatusOK, w.Code)

	var resp hintResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.NotEmpty(t, resp.Hint.Cells)
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
