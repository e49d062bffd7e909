package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// query results
const (
	RESULT_FOUND     = "found"
	RESULT_NOT_FOUND = "not_found"
	RESULT_ERROR     = "error"
)

// Metric. prometheus collectors of the routing engine.
type Metric struct {
	queryTotal    *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	settledNodes  *prometheus.HistogramVec
	diagnostics   *prometheus.CounterVec
	cacheTotal    *prometheus.CounterVec
}

// NewMetric registers the collectors on reg. pass prometheus.DefaultRegisterer to expose them on promhttp.Handler.
func NewMetric(reg prometheus.Registerer) *Metric {
	factory := promauto.With(reg)
	return &Metric{
		queryTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "escolar_route_queries_total",
			Help: "Total route queries by kind and result",
		}, []string{"kind", "result"}),
		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "escolar_route_query_duration_seconds",
			Help:    "Route query duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"kind"}),
		settledNodes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "escolar_route_settled_nodes",
			Help:    "Vertices settled per search",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
		}, []string{"route"}),
		diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "escolar_search_diagnostics_total",
			Help: "Search diagnostics by kind",
		}, []string{"kind"}),
		cacheTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "escolar_route_cache_lookups_total",
			Help: "Route cache lookups by outcome",
		}, []string{"outcome"}),
	}
}

func (met *Metric) ObserveQuery(kind, result string, d time.Duration) {
	met.queryTotal.WithLabelValues(kind, result).Inc()
	met.queryDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveSettledNodes. route is "primary" or "alternative".
func (met *Metric) ObserveSettledNodes(route string, n int) {
	met.settledNodes.WithLabelValues(route).Observe(float64(n))
}

func (met *Metric) IncDiagnostic(kind string) {
	met.diagnostics.WithLabelValues(kind).Inc()
}

func (met *Metric) IncCache(hit bool) {
	if hit {
		met.cacheTotal.WithLabelValues("hit").Inc()
		return
	}
	met.cacheTotal.WithLabelValues("miss").Inc()
}
