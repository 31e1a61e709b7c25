package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics owns a dedicated Prometheus registry, the storage client
// collectors registered on it and the HTTP server exposing /metrics.
type Metrics struct {
	// Server serves the registry at /metrics.
	Server *http.Server

	// Registry holds every collector of this instance. It is isolated from
	// the global default registry.
	Registry *prometheus.Registry

	bucketValidations     *prometheus.CounterVec
	validationDuration    *prometheus.HistogramVec
	credentialResolutions *prometheus.CounterVec
}

// NewMetrics creates the registry, registers the storage collectors (and the
// default runtime collectors when enabled) and prepares, but does not start,
// the HTTP server.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    Namespace:   "s3connect",
//	    ServiceName: "ingest",
//	})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	var registerer prometheus.Registerer = registry
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			registry,
		)
	}

	m := &Metrics{Registry: registry}

	m.bucketValidations = createCounterVec(cfg.Namespace, "bucket_validations_total",
		"Total number of bucket existence checks by result", []string{"result"})
	m.validationDuration = createHistogramVec(cfg.Namespace, "bucket_validation_duration_seconds",
		"Duration of bucket existence checks in seconds", []string{"result"}, prometheus.DefBuckets)
	m.credentialResolutions = createCounterVec(cfg.Namespace, "credential_resolutions_total",
		"Total number of credential lookups by mode and result", []string{"mode", "result"})

	registerer.MustRegister(
		m.bucketValidations,
		m.validationDuration,
		m.credentialResolutions,
	)

	if cfg.EnableDefaultCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	addr := cfg.Address
	if addr == "" {
		addr = DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return m
}
