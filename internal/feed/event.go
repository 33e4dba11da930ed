package feed

import (
	"time"

	"github.com/google/uuid"
)

// Actions carried by feed events.
const (
	ActionSignup     = "signup"
	ActionUnregister = "unregister"
)

// Event is one roster change, broadcast as JSON to every connected client.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	Activity  string    `json:"activity"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
