package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ecotrack"

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	grpcRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "gRPC calls by full method and status code.",
	}, []string{"method", "code"})

	recordsLogged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "records_logged_total",
		Help:      "Records created by kind (activity, renewable, plastic).",
	}, []string{"kind"})

	emissionsLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "emissions_kg_total",
		Help:      "Sum of carbon emissions of created activities, kg CO2e.",
	})

	notificationsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notify",
		Name:      "notifications_total",
		Help:      "Notifications stored by category.",
	}, []string{"category"})

	publishFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notify",
		Name:      "publish_failures_total",
		Help:      "Failed realtime deliveries by publisher.",
	}, []string{"publisher"})

	wsConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "notify",
		Name:      "websocket_connections",
		Help:      "Currently connected websocket clients.",
	})

	classifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "waste",
		Name:      "classifications_total",
		Help:      "Waste classifications by source and category.",
	}, []string{"source", "category"})
)

func init() {
	prometheus.MustRegister(
		httpRequests,
		httpDuration,
		grpcRequests,
		recordsLogged,
		emissionsLogged,
		notificationsSent,
		publishFailures,
		wsConnections,
		classifications,
	)
}

func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordGRPCRequest(method, code string) {
	grpcRequests.WithLabelValues(method, code).Inc()
}

func RecordLogged(kind string) {
	recordsLogged.WithLabelValues(kind).Inc()
}

func RecordEmissions(kg float64) {
	if kg <= 0 {
		return
	}
	emissionsLogged.Add(kg)
}

func RecordNotification(category string) {
	notificationsSent.WithLabelValues(category).Inc()
}

func RecordPublishFailure(publisher string) {
	publishFailures.WithLabelValues(publisher).Inc()
}

func WebsocketConnected() {
	wsConnections.Inc()
}

func WebsocketDisconnected() {
	wsConnections.Dec()
}

func RecordClassification(source, category string) {
	classifications.WithLabelValues(source, category).Inc()
}
