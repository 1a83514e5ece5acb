// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"orion-teams/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation results used as the result label of team_operations_total.
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	registry = prometheus.DefaultRegisterer

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by path/method/code.",
		},
		[]string{"path", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by path/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "code"},
	)

	teamOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "team_operations_total",
			Help: "Team operations by op and result.",
		},
		[]string{"op", "result"},
	)

	teamOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "team_operation_duration_seconds",
			Help:    "Duration of team operations by op and result.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "result"},
	)
)

// FiberMiddleware counts requests and their latency by route template.
// The metrics endpoint itself is skipped.
func FiberMiddleware(metricsPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		if path == "" || path == "/" {
			path = c.Path()
		}
		if path == metricsPath {
			return err
		}

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		code := strconv.Itoa(status)
		method := c.Method()
		httpRequests.WithLabelValues(path, method, code).Inc()
		httpDuration.WithLabelValues(path, method, code).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// Result classifies err for the result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, entities.ErrTeamNotFound), errors.Is(err, entities.ErrUserNotFound):
		return ResultNotFound
	default:
		return ResultError
	}
}

// ObserveTeamOp records one finished team operation.
func ObserveTeamOp(op string, start time.Time, err error) {
	result := Result(err)
	teamOps.WithLabelValues(op, result).Inc()
	teamOpDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}

func init() {
	collectors := []prometheus.Collector{
		httpRequests,
		httpDuration,
		teamOps,
		teamOpDuration,
	}

	for _, c := range collectors {
		_ = registry.Register(c)
	}
}
