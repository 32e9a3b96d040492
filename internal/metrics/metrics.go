// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strayaid_http_requests_total",
		Help: "HTTP requests served, by method and status code.",
	}, []string{"method", "code"})

	// ReportsCreated counts reports filed.
	ReportsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "strayaid_reports_created_total",
		Help: "Animal rescue reports filed.",
	})

	// NotificationsCreated counts notification rows persisted, by event kind.
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strayaid_notifications_created_total",
		Help: "Notifications persisted, by triggering event.",
	}, []string{"event"})

	// LivePushes counts live delivery attempts. "delivered" means the
	// payload was handed to a session's send buffer; "dropped" means the
	// user had no live session or the buffer was full.
	LivePushes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strayaid_live_pushes_total",
		Help: "Live notification pushes, by result.",
	}, []string{"result"})

	// LiveSessions tracks currently connected websocket sessions.
	LiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "strayaid_live_sessions",
		Help: "Currently connected live sessions.",
	})
)
