package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes.
const (
	OutcomeRendered   = "rendered"
	OutcomeEmpty      = "empty"
	OutcomeNoContext  = "no_context"
	OutcomeQueryError = "query_error"
)

// GiftsMetrics records gifts resolution outcomes.
type GiftsMetrics struct {
	resolutions *prometheus.CounterVec
	gifts       prometheus.Histogram
	misaligned  prometheus.Counter
}

// NewGiftsMetrics registers the gifts metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewGiftsMetrics(reg prometheus.Registerer) *GiftsMetrics {
	if reg == nil {
		return &GiftsMetrics{}
	}
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gifts_resolutions_total",
		Help: "Gifts resolutions by outcome.",
	}, []string{"outcome"})
	gifts := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gifts_returned",
		Help:    "Number of gifts in rendered resolutions.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
	})
	misaligned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gifts_misaligned_offers_total",
		Help: "Seller offers whose gift id and gift record counts differ.",
	})
	reg.MustRegister(resolutions, gifts, misaligned)
	return &GiftsMetrics{
		resolutions: resolutions,
		gifts:       gifts,
		misaligned:  misaligned,
	}
}

// IncOutcome counts one resolution with the given outcome.
func (m *GiftsMetrics) IncOutcome(outcome string) {
	if m == nil || m.resolutions == nil {
		return
	}
	m.resolutions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveGifts records the gift count of a rendered resolution.
func (m *GiftsMetrics) ObserveGifts(n int) {
	if m == nil || m.gifts == nil {
		return
	}
	m.gifts.Observe(float64(n))
}

// IncMisaligned counts one misaligned seller offer.
func (m *GiftsMetrics) IncMisaligned() {
	if m == nil || m.misaligned == nil {
		return
	}
	m.misaligned.Inc()
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}
