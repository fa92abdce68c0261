package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records catalog fetch and cart mutation activity.
type StoreMetrics struct {
	fetchDuration *prometheus.HistogramVec
	fetchTotal    *prometheus.CounterVec
	cartMutations *prometheus.CounterVec
	checkouts     prometheus.Counter
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	fetchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_fetch_duration_seconds",
		Help:    "Duration of catalog collaborator fetches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"fetch", "outcome"})
	fetchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fetch_total",
		Help: "Catalog collaborator fetches by outcome.",
	}, []string{"fetch", "outcome"})
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart store mutations by operation.",
	}, []string{"op"})
	checkouts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_total",
		Help: "Completed local checkout echoes.",
	})
	reg.MustRegister(fetchDuration, fetchTotal, cartMutations, checkouts)
	return &StoreMetrics{
		fetchDuration: fetchDuration,
		fetchTotal:    fetchTotal,
		cartMutations: cartMutations,
		checkouts:     checkouts,
	}
}

// ObserveFetch records one catalog fetch attempt.
func (s *StoreMetrics) ObserveFetch(fetch, outcome string, duration time.Duration) {
	if s == nil || s.fetchDuration == nil {
		return
	}
	s.fetchDuration.WithLabelValues(normalizeLabel(fetch), normalizeLabel(outcome)).Observe(duration.Seconds())
	s.fetchTotal.WithLabelValues(normalizeLabel(fetch), normalizeLabel(outcome)).Inc()
}

// IncCartMutation increments the mutation counter for the named operation.
func (s *StoreMetrics) IncCartMutation(op string) {
	if s == nil || s.cartMutations == nil {
		return
	}
	s.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncCheckout increments the completed checkout counter.
func (s *StoreMetrics) IncCheckout() {
	if s == nil || s.checkouts == nil {
		return
	}
	s.checkouts.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
