package feed

import "errors"

var (
	// ErrHubFull indicates the feed client cap has been reached.
	ErrHubFull = errors.New("feed hub is full")
	// ErrHubStopped indicates the hub has shut down.
	ErrHubStopped = errors.New("feed hub is stopped")
)
