package registry

import (
	"context"

	"github.com/mergington/activities/internal/domain"
)

// Store abstracts activity roster storage.
// All methods return deep copies; callers never observe later mutations.
type Store interface {
	// List returns every activity keyed by name.
	List(ctx context.Context) (map[string]*domain.Activity, error)
	// Get returns a single activity or domain.ErrActivityNotFound.
	Get(ctx context.Context, name string) (*domain.Activity, error)
	// Signup adds email to the activity roster and returns the updated record.
	// Fails with domain.ErrActivityNotFound or domain.ErrAlreadySignedUp.
	Signup(ctx context.Context, name, email string) (*domain.Activity, error)
	// Unregister removes email from the activity roster and returns the updated record.
	// Fails with domain.ErrActivityNotFound or domain.ErrNotSignedUp.
	Unregister(ctx context.Context, name, email string) (*domain.Activity, error)
}
