// Package server provides the REST API over the tracker view-models.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/viewmodel"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/events.go -pkg mocks -skip-ensure -fmt goimports . EventsModel
//go:generate moq -out mocks/dungeons.go -pkg mocks -skip-ensure -fmt goimports . DungeonsModel
//go:generate moq -out mocks/items.go -pkg mocks -skip-ensure -fmt goimports . ItemsModel
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingsModel

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	events   EventsModel
	dungeons DungeonsModel
	items    ItemsModel
	settings SettingsModel
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	jobsCtx    context.Context // parent of background jobs started by requests
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// EventsModel is the world events view-model
type EventsModel interface {
	Events() []domain.EventStatus
	AllEvents() []domain.EventStatus
	HideCommand(id uuid.UUID) error
	UnhideCommand(id uuid.UUID) error
	ResetHiddenCommand() error
	NextReset() time.Time
}

// DungeonsModel is the dungeons view-model
type DungeonsModel interface {
	Dungeons(ctx context.Context) ([]domain.DungeonStatus, error)
	AllDungeons(ctx context.Context) ([]domain.DungeonStatus, error)
	TogglePathCommand(id uuid.UUID) (bool, error)
	CompletePathCommand(ctx context.Context, id uuid.UUID, d time.Duration) (*domain.PathRun, error)
	RunsCommand(ctx context.Context, id uuid.UUID, limit int) ([]domain.PathRun, error)
	ClearRunsCommand(ctx context.Context, id uuid.UUID) (int64, error)
	HideDungeonCommand(id uuid.UUID, hidden bool) error
	ResetCommand() error
}

// ItemsModel is the item database view-model
type ItemsModel interface {
	RebuildCommand(ctx context.Context, locale domain.Locale) error
	CancelCommand()
	Progress() viewmodel.Progress
	Item(id int) (domain.ItemEntry, bool)
	Loaded() (domain.Locale, int)
	LastRebuild(ctx context.Context, locale domain.Locale) (time.Time, error)
}

// SettingsModel is the user switches view-model
type SettingsModel interface {
	Settings() viewmodel.Settings
	Update(p viewmodel.SettingsPatch) (viewmodel.Settings, error)
}

// Params defines server dependencies
type Params struct {
	Config   ConfigProvider
	Events   EventsModel
	Dungeons DungeonsModel
	Items    ItemsModel
	Settings SettingsModel
	Version  string
	Debug    bool
}

// New initializes a new server instance
func New(params Params) *Server {
	s := &Server{
		config:   params.Config,
		events:   params.Events,
		dungeons: params.Dungeons,
		items:    params.Items,
		settings: params.Settings,
		version:  params.Version,
		debug:    params.Debug,
		router:   routegroup.New(http.NewServeMux()),
		jobsCtx:  context.Background(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown.
// Background jobs started through the API are bound to ctx.
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.jobsCtx = ctx
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("gw2tracker", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /events", s.eventsHandler)
		r.HandleFunc("POST /events/reset", s.resetEventsHandler)
		r.HandleFunc("POST /events/{id}/hide", s.hideEventHandler)
		r.HandleFunc("POST /events/{id}/unhide", s.unhideEventHandler)

		r.HandleFunc("GET /dungeons", s.dungeonsHandler)
		r.HandleFunc("POST /dungeons/reset", s.resetDungeonsHandler)
		r.HandleFunc("POST /dungeons/{id}/hide", s.hideDungeonHandler)
		r.HandleFunc("POST /dungeons/{id}/show", s.showDungeonHandler)
		r.HandleFunc("POST /paths/{id}/toggle", s.togglePathHandler)
		r.HandleFunc("POST /paths/{id}/run", s.completePathHandler)
		r.HandleFunc("GET /paths/{id}/runs", s.pathRunsHandler)
		r.HandleFunc("DELETE /paths/{id}/runs", s.clearPathRunsHandler)

		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("PUT /settings", s.updateSettingsHandler)

		r.HandleFunc("GET /items/rebuild", s.rebuildStatusHandler)
		r.HandleFunc("POST /items/rebuild", s.rebuildHandler)
		r.HandleFunc("DELETE /items/rebuild", s.cancelRebuildHandler)
		r.HandleFunc("GET /items/{id}", s.itemHandler)
	})

	s.router.Handle("GET /metrics", promhttp.Handler())
}

func (s *Server) backgroundCtx() context.Context {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.jobsCtx
}
