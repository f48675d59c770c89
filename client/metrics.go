package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/apierr"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cybershield_client",
			Name:      "requests_total",
			Help:      "API operations attempted, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cybershield_client",
			Name:      "request_failures_total",
			Help:      "API operations that returned an error, by operation and failure kind.",
		},
		[]string{"operation", "kind"},
	)
)

// instrument records one attempt and, when err is non-nil, its failure
// kind. Non-API errors (ctx cancellation, marshal bugs) count as "other".
func instrument(operation string, err error) {
	requestsTotal.WithLabelValues(operation).Inc()
	if err == nil {
		return
	}
	kind := "other"
	for _, k := range []apierr.Kind{apierr.KindValidation, apierr.KindNetwork, apierr.KindServer, apierr.KindParse} {
		if apierr.IsKind(err, k) {
			kind = k.String()
			break
		}
	}
	requestFailuresTotal.WithLabelValues(operation, kind).Inc()
}
