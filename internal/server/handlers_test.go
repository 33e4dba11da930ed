package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/feed"
	"github.com/mergington/activities/internal/registry"
)

// --- Mock implementations ---

type mockActivityService struct {
	listFn       func(ctx context.Context) (map[string]*domain.Activity, error)
	signupFn     func(ctx context.Context, name, email string) (*domain.Activity, error)
	unregisterFn func(ctx context.Context, name, email string) (*domain.Activity, error)
}

func (m *mockActivityService) List(ctx context.Context) (map[string]*domain.Activity, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockActivityService) Signup(ctx context.Context, name, email string) (*domain.Activity, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, name, email)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockActivityService) Unregister(ctx context.Context, name, email string) (*domain.Activity, error) {
	if m.unregisterFn != nil {
		return m.unregisterFn(ctx, name, email)
	}
	return nil, fmt.Errorf("not implemented")
}

// --- Test server helpers ---

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:         "test",
		Port:           "0",
		LogLevel:       "error",
		LogFormat:      "text",
		StaticDir:      "testdata/static",
		FeedMaxClients: 10,
	}
}

// newTestServer builds a Server around the given service with a live feed hub.
func newTestServer(t *testing.T, app ActivityService) *Server {
	t.Helper()
	hub := feed.NewHub(10)
	t.Cleanup(hub.Stop)
	return NewServer(testConfig(), app, hub)
}

// newSeededServer builds a Server over a freshly seeded in-memory registry
// with the service publishing into the server's feed hub, the closest
// analogue of the real process.
func newSeededServer(t *testing.T) *Server {
	t.Helper()
	hub := feed.NewHub(10)
	t.Cleanup(hub.Stop)
	svc := registry.NewService(registry.NewMemoryStore(registry.SeedCatalog()), hub, clockwork.NewFakeClock())
	return NewServer(testConfig(), svc, hub)
}
