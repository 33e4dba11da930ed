package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

// handleReadiness has no backing services to probe; the in-memory store is
// ready as soon as the process accepts connections.
func (s *Server) handleReadiness(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ready"})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
