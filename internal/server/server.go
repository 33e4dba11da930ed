package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
	"github.com/mergington/activities/internal/feed"
)

// ActivityService is the application surface the handlers need.
// Satisfied by *registry.Service.
type ActivityService interface {
	List(ctx context.Context) (map[string]*domain.Activity, error)
	Signup(ctx context.Context, name, email string) (*domain.Activity, error)
	Unregister(ctx context.Context, name, email string) (*domain.Activity, error)
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       ActivityService
	hub       *feed.Hub
	upgrader  websocket.Upgrader
	startTime time.Time
}

func NewServer(cfg *config.Config, app ActivityService, hub *feed.Hub) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:   e,
		config: cfg,
		app:    app,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
