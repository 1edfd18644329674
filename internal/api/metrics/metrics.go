// Package metrics defines the custom Prometheus metrics for the pet-sitting
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petsitting"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role the account registered with ("user" or "sitter")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations.",
	},
	[]string{"role"},
)

// BookingsCreatedTotal counts booking requests accepted into the pending state.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of booking requests created.",
	},
)

// BookingTransitionsTotal counts booking state transitions.
// Label:
//   - status: the status applied ("accepted" or "rejected")
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_total",
		Help:      "Total number of booking state transitions, labelled by resulting status.",
	},
	[]string{"status"},
)

// PostsCreatedTotal counts feed posts published.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of feed posts published.",
	},
)

// UploadsTotal counts successful image uploads.
// Label:
//   - content_type: the stored image MIME type
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of successful image uploads.",
	},
	[]string{"content_type"},
)

// DirectoryCacheTotal counts sitter directory cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (queried the database)
var DirectoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_cache_total",
		Help:      "Total number of sitter directory cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
