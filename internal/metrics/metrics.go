package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector of the service. A dedicated registry keeps
// tests free of duplicate-registration panics from the default one.
var Registry = prometheus.NewRegistry()

var (
	// HTTP
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Session
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_logins_total",
			Help: "Login attempts by outcome.",
		},
		[]string{"outcome"}, // fixture|fallback|rejected
	)
	GuardRedirectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guard_redirects_total",
			Help: "Views redirected by the route guard.",
		},
		[]string{"target"},
	)

	// Auctions
	BidsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_bids_total",
			Help: "Bid submissions by result.",
		},
		[]string{"result"}, // accepted|closed|below_minimum|invalid
	)
	OpenAuctions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "auctions_open",
			Help: "Auctions still accepting bids as of the last sweep.",
		},
	)
	AuctionsClosedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auctions_closed_total",
			Help: "Auctions latched closed by the sweep.",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		RequestLatency,
		LoginsTotal,
		GuardRedirectsTotal,
		BidsTotal,
		OpenAuctions,
		AuctionsClosedTotal,
	)
}

// Handler serves the registry in the prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
