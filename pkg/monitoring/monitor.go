package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	AssessmentsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_generated_total",
			Help: "Assessments generated, by difficulty",
		},
		[]string{"difficulty"},
	)

	AssessmentsEvaluated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_evaluated_total",
			Help: "Assessments evaluated, by outcome",
		},
		[]string{"passed"},
	)

	UsersInitialized = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_initialized_total",
			Help: "Progress records created or reset",
		},
	)

	AchievementsUnlocked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "achievements_unlocked_total",
			Help: "Achievements unlocked for the first time",
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(register)
}

func register() {
	prometheus.MustRegister(
		RequestCounter,
		RequestDuration,
		AssessmentsGenerated,
		AssessmentsEvaluated,
		UsersInitialized,
		AchievementsUnlocked,
	)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
