package socow

import (
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

// WithLogger attaches a structured logger used to trace storage-mode
// transitions (promote to large, detach, shrink back to small) at debug
// level. A Vector built without WithLogger logs nothing.
func WithLogger[T any, A arrayOf[T]](logger log.Logger) Option[T, A] {
	return func(v *Vector[T, A]) {
		v.logger = logger
	}
}

// WithMetrics registers Prometheus instrumentation for detach/grow/promote
// events against reg, following the friggdb/pool package's promauto
// pattern. A Vector built without WithMetrics records nothing.
func WithMetrics[T any, A arrayOf[T]](reg prometheus.Registerer) Option[T, A] {
	return func(v *Vector[T, A]) {
		v.metrics = newMetrics(reg)
	}
}
