package registry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/feed"
	"github.com/mergington/activities/internal/metrics"
)

// EventSink receives roster-change events. Satisfied by *feed.Hub.
type EventSink interface {
	Publish(ev feed.Event)
}

// Service is the application layer over a Store. It records metrics and
// publishes feed events for successful mutations; lookups pass straight
// through.
type Service struct {
	store Store
	sink  EventSink
	clock clockwork.Clock
}

// NewService creates the application service. sink may be nil when no event
// feed is wired (tests, one-off tooling).
func NewService(store Store, sink EventSink, clock clockwork.Clock) *Service {
	s := &Service{
		store: store,
		sink:  sink,
		clock: clock,
	}
	s.initRosterGauges()
	return s
}

// List returns a snapshot of every activity keyed by name.
func (s *Service) List(ctx context.Context) (map[string]*domain.Activity, error) {
	return s.store.List(ctx)
}

// Signup adds email to the named activity's roster.
func (s *Service) Signup(ctx context.Context, name, email string) (*domain.Activity, error) {
	act, err := s.store.Signup(ctx, name, email)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(signupResult(err)).Inc()
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("ok").Inc()
	metrics.ActivityParticipants.WithLabelValues(name).Set(float64(len(act.Participants)))
	slog.Info("Signed up participant", "activity", name, "email", email, "roster_size", len(act.Participants))
	s.publish(feed.ActionSignup, name, email)
	return act, nil
}

// Unregister removes email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, name, email string) (*domain.Activity, error) {
	act, err := s.store.Unregister(ctx, name, email)
	if err != nil {
		metrics.UnregistersTotal.WithLabelValues(unregisterResult(err)).Inc()
		return nil, err
	}

	metrics.UnregistersTotal.WithLabelValues("ok").Inc()
	metrics.ActivityParticipants.WithLabelValues(name).Set(float64(len(act.Participants)))
	slog.Info("Unregistered participant", "activity", name, "email", email, "roster_size", len(act.Participants))
	s.publish(feed.ActionUnregister, name, email)
	return act, nil
}

func (s *Service) publish(action, name, email string) {
	if s.sink == nil {
		return
	}
	s.sink.Publish(feed.Event{
		ID:        uuid.New(),
		Action:    action,
		Activity:  name,
		Email:     email,
		Timestamp: s.clock.Now().UTC(),
	})
}

// initRosterGauges seeds the per-activity gauge so dashboards see the
// seeded roster sizes before the first mutation.
func (s *Service) initRosterGauges() {
	acts, err := s.store.List(context.Background())
	if err != nil {
		return
	}
	for name, act := range acts {
		metrics.ActivityParticipants.WithLabelValues(name).Set(float64(len(act.Participants)))
	}
}

func signupResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadySignedUp):
		return "duplicate"
	default:
		return "error"
	}
}

func unregisterResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrNotSignedUp):
		return "not_signed_up"
	default:
		return "error"
	}
}
