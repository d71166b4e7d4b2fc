package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "svw.info/sudoku-cp/internal/adapters/http"
	"svw.info/sudoku-cp/internal/generator"
	"svw.info/sudoku-cp/internal/hint"
	"svw.info/sudoku-cp/internal/infrastructure/storage"
	"svw.info/sudoku-cp/internal/ports"
	"svw.info/sudoku-cp/internal/solver"
	"svw.info/sudoku-cp/internal/usecase"
	"svw.info/sudoku-cp/internal/validator"
)

func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	case "parallel":
		return solver.NewParallelSolver()
	default:
		return solver.NewConstraintSolver()
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "constraint", "solver to use: constraint|backtrack|parallel")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	s := pickSolver(*solverKind)

	// Wire providers → use cases → HTTP adapter
	g := generator.NewUniqueGenerator(s)
	v := validator.New()
	st := storage.NewFS(*persist)
	hin := hint.NewSingles()
	uc := usecase.NewService(s, g, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpadapter.Logging(logger, httpadapter.Instrument(mux)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "solver", *solverKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
