// Package server implements the HTTP server using Echo framework.
//
// Routes: activity listing and roster mutations (/activities...), the static
// landing page, the websocket event feed (/ws/feed), and observability
// endpoints (/health, /metrics, /version).
// Handlers split by concern: handlers_activities.go, handlers_feed.go, handlers_health.go.
package server
