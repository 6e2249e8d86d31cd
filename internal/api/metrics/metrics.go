// Package metrics defines all custom Prometheus metrics for the blog
// API. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default
// registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure" (failure covers both unknown
//     identifier and wrong password; they are not distinguished here
//     either).
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// PostsMutatedTotal counts successful post mutations.
// Label:
//   - action: "created", "updated", or "deleted"
var PostsMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_mutated_total",
		Help:      "Total number of successful post mutations, by action.",
	},
	[]string{"action"},
)

// MutationsDeniedTotal counts refused post mutations.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var MutationsDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_denied_total",
		Help:      "Total number of post mutations refused by the authorization gate.",
	},
	[]string{"reason"},
)

// ActivityQueueDepth tracks events waiting in each dispatcher worker
// channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
