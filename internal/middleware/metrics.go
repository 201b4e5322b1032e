package middleware

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RPCRequests counts finished RPCs by procedure and result code.
var RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rental",
	Subsystem: "rpc",
	Name:      "requests_total",
	Help:      "Total RPCs handled, by procedure and code.",
}, []string{"procedure", "code"})

// RPCDuration tracks RPC latency.
var RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "rental",
	Subsystem: "rpc",
	Name:      "duration_seconds",
	Help:      "RPC handling latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"procedure"})

// codeOf maps an RPC result to its metric label.
func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}

// MetricsInterceptor returns a Connect interceptor that records request
// counts and latency for every RPC.
func MetricsInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			RPCDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			RPCRequests.WithLabelValues(procedure, codeOf(err)).Inc()
			return resp, err
		}
	}
}
