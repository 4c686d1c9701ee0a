package socow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics is the optional Prometheus instrumentation for a single Vector:
// counters registered via promauto, all at once when WithMetrics is
// applied, against whatever registerer the caller supplies.
type metrics struct {
	promotions prometheus.Counter
	detaches   prometheus.Counter
	detachCopy prometheus.Counter
	reallocs   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		promotions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "socow",
			Name:      "small_to_large_promotions_total",
			Help:      "Number of times a Vector crossed from small to large storage.",
		}),
		detaches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "socow",
			Name:      "detaches_total",
			Help:      "Number of times a Vector detached from a shared large buffer.",
		}),
		detachCopy: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "socow",
			Name:      "detach_element_copies_total",
			Help:      "Number of times detach had to copy (rather than move) elements because the buffer was shared.",
		}),
		reallocs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "socow",
			Name:      "reallocations_total",
			Help:      "Number of times a Vector's large buffer was reallocated to a new capacity.",
		}),
	}
}

func (m *metrics) promoted() {
	if m != nil {
		m.promotions.Inc()
	}
}

func (m *metrics) detached(copied bool) {
	if m == nil {
		return
	}
	m.detaches.Inc()
	if copied {
		m.detachCopy.Inc()
	}
}

func (m *metrics) reallocated() {
	if m != nil {
		m.reallocs.Inc()
	}
}
