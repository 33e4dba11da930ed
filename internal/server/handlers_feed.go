package server

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/feed"
)

// handleFeed upgrades the connection and attaches it to the event hub.
// The read loop exists only to detect client disconnects; the feed is
// one-directional and inbound messages are discarded.
func (s *Server) handleFeed(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote its own error response.
		slog.Info("Websocket upgrade failed", "error", err)
		return nil
	}

	if err := s.hub.Register(conn); err != nil {
		if !errors.Is(err, feed.ErrHubFull) && !errors.Is(err, feed.ErrHubStopped) {
			slog.Error("Failed to register feed client", "error", err)
		}
		return nil
	}

	go func() {
		defer s.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}
