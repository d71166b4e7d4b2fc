package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board,omitempty"`
	Grid       string       `json:"grid,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, generateResp{Error: "method not allowed"})
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := parseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Board:      p.Board,
		Grid:       p.Board.Grid(),
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

// solveReq carries the board either as a 9x9 value array or as the
// flat 81-character grid string; the string wins when both are set.
type solveReq struct {
	Board [9][9]uint8 `json:"board,omitempty"`
	Grid  string      `json:"grid,omitempty"`
}
type solveResp struct {
	Board      [9][9]uint8 `json:"board,omitempty"`
	Grid       string      `json:"grid,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Guesses    int         `json:"guesses,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, solveResp{Error: "method not allowed"})
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in := &domain.Board{Values: req.Board}
	if req.Grid != "" {
		b, err := domain.ParseGrid(req.Grid)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
			return
		}
		in = b
	}
	out, st, err := h.UC.Solve(r.Context(), in)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{
			Error:      err.Error(),
			DurationMs: st.Duration.Milliseconds(),
			Nodes:      st.Nodes,
			Guesses:    st.Guesses,
		})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{
		Board:      out.Values,
		Grid:       out.Grid(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
		Guesses:    st.Guesses,
	})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, validateResp{Error: "method not allowed"})
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	ok, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board   [9][9]uint8 `json:"board"`
	MaxTier string      `json:"maxTier,omitempty"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	case "xwing":
		return domain.StrategyXWing
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, hintResp{Error: "method not allowed"})
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	hh, ok, err := h.UC.Hint(r.Context(), b, parseTier(req.MaxTier))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, saveResp{Error: "method not allowed"})
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, loadResp{Error: "method not allowed"})
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, listResp{Error: "method not allowed"})
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
