package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Signup Metrics
var (
	// SignupsTotal tracks signup attempts by result (ok/not_found/duplicate)
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_total",
			Help: "Total signup attempts by result",
		},
		[]string{"result"},
	)

	// UnregistersTotal tracks unregister attempts by result (ok/not_found/not_signed_up)
	UnregistersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregisters_total",
			Help: "Total unregister attempts by result",
		},
		[]string{"result"},
	)

	// ActivityParticipants tracks the current roster size per activity
	ActivityParticipants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activity_participants_current",
			Help: "Current number of participants per activity",
		},
		[]string{"activity"},
	)
)

// Feed Metrics
var (
	// FeedClientsCurrent tracks current connected feed clients
	FeedClientsCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_clients_current",
			Help: "Current number of connected event feed clients",
		},
	)

	// FeedEventsTotal tracks events broadcast to the feed
	FeedEventsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_events_total",
			Help: "Total events broadcast over the event feed",
		},
	)

	// FeedSlowClientsEvicted tracks clients evicted due to full send buffers
	FeedSlowClientsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_slow_clients_evicted_total",
			Help: "Total slow feed clients evicted due to buffer full",
		},
	)

	// FeedClientsRejected tracks connections rejected at the client cap
	FeedClientsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_clients_rejected_total",
			Help: "Total feed connections rejected because the client cap was reached",
		},
	)
)

// HTTP Error Metrics
// Note: http_errors_total{type} is provided by internal/errors package
