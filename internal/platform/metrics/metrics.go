// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "restaurant_search_total",
		Help: "Successful restaurant searches by how the origin was resolved",
	}, []string{"resolution"})
	SearchErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "restaurant_search_errors_total",
		Help: "Failed restaurant searches by error kind",
	}, []string{"kind"})
	SearchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "restaurant_search_results",
		Help:    "Number of restaurants returned per search",
		Buckets: []float64{0, 1, 2, 3, 4, 5},
	})
	FavoritesMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "favorites_mutations_total",
		Help: "Favorites add/remove operations",
	}, []string{"op"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(SearchTotal)
	prometheus.MustRegister(SearchErrorsTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(FavoritesMutationsTotal)
	prometheus.MustRegister(RequestDurationMs)
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
