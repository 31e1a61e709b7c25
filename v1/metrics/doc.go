// Package metrics exposes Prometheus metrics for the storage client.
//
// A Metrics instance owns an isolated registry (no collisions with the global
// default registry) and an HTTP server that serves it at /metrics. The
// collectors it registers describe the storage client:
//
//   - bucket_validations_total{result}: bucket existence checks, where result
//     is one of "success", "not_found" or "error"
//   - bucket_validation_duration_seconds{result}: latency of those checks
//   - credential_resolutions_total{mode,result}: credential lookups performed
//     by storage clients
//
// Every metric carries the constant label service="<ServiceName>" when a
// service name is configured, and Namespace prefixes every metric name.
//
// Direct Usage:
//
//	import "github.com/Aleph-Alpha/s3connect/v1/metrics"
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		Namespace:               "s3connect",
//		ServiceName:             "ingest",
//	})
//	go m.Server.ListenAndServe()
//
//	start := time.Now()
//	// ... check a bucket ...
//	m.ObserveBucketValidation(start, metrics.ResultSuccess)
//
// FX Usage:
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Supply(metrics.Config{Address: ":9090"}),
//	)
//
// The module starts the server on application start and shuts it down
// gracefully on stop.
package metrics
