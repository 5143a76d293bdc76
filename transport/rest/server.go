package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

type gameUseCase interface {
	NewGame(ctx context.Context, request usecase.NewGameRequest) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeMove(ctx context.Context, id string, at entity.Coordinate) (*entity.Game, error)
	Undo(ctx context.Context, id string) (*entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
	Hint(ctx context.Context, id, difficulty string) (entity.Coordinate, error)
	DeleteGame(ctx context.Context, id string) error
}

type Server struct {
	logger *slog.Logger
	srv    *http.Server

	games       gameUseCase
	leaderboard usecase.LeaderboardUseCase
	saves       usecase.SaveUseCase
	names       usecase.NameUseCase
}

func New(logger *slog.Logger, port string, games gameUseCase, leaderboard usecase.LeaderboardUseCase, saves usecase.SaveUseCase, names usecase.NameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),

		games:       games,
		leaderboard: leaderboard,
		saves:       saves,
		names:       names,
	}

	server.srv = &http.Server{
		Addr:         ":" + port,
		Handler:      server.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	return server
}

// Router returns the HTTP routes of the API.
func (that *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(that.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)

	r.Route("/games", func(r chi.Router) {
		r.Post("/", that.createGame)

		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", that.getGame)
			r.Delete("/", that.deleteGame)
			r.Post("/moves", that.makeMove)
			r.Post("/undo", that.undo)
			r.Post("/reset", that.reset)
			r.Get("/hint", that.hint)
			r.Post("/saves", that.saveGame)
		})
	})

	r.Route("/saves", func(r chi.Router) {
		r.Get("/", that.listSaves)
		r.Post("/{timestamp}/load", that.loadSave)
		r.Delete("/{timestamp}", that.deleteSave)
	})

	r.Get("/leaderboard", that.getLeaderboard)
	r.Get("/players/{name}", that.getPlayer)

	r.Route("/names", func(r chi.Router) {
		r.Get("/", that.listNames)
		r.Delete("/{name}", that.forgetName)
	})

	return r
}

func (that *Server) Start() error {
	that.logger.Info("http server listening", "addr", that.srv.Addr)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	return that.srv.Shutdown(ctx)
}

func (that *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		that.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
