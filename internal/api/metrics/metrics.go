// Package metrics defines and registers the CRM API's custom Prometheus
// metrics. It is the single source of truth for metric names, labels, and
// help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "bad_credentials", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the authentication gate.
// Label:
//   - reason: "missing_credential", "malformed_credential", "invalid_token", "unknown_user"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authentication gate, by reason.",
	},
	[]string{"reason"},
)

// UsersTotal tracks the number of user accounts. Primed from the store at
// startup and adjusted on user management changes.
var UsersTotal = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users_total",
		Help:      "Current number of user accounts.",
	},
)
