// Package observability holds the application's Prometheus collectors and
// OpenTelemetry tracer setup.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainly_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// TagsCreated counts tags inserted by the tag normalizer.
	TagsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brainly_tags_created_total",
		Help: "Total number of tags created on first reference",
	})

	// ShareResolutions counts public share-link lookups by outcome.
	ShareResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainly_share_resolutions_total",
		Help: "Total number of public share link resolutions by result",
	}, []string{"result"})
)
