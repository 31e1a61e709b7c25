// Package logger provides structured logging for s3connect and its host applications.
//
// It wraps Uber's zap with the leveled (msg, err, fields) API that the other
// packages in this module accept through their own Logger interfaces, so a
// *logger.Logger can be passed to s3config.Resolver, s3client.Factory and
// s3client.Validator without adapters.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "s3probe",
//	})
//
//	log.Info("bucket validated", nil, map[string]interface{}{
//		"bucket": "assets",
//	})
//
//	// With trace correlation (adds trace_id and span_id when ctx carries a span)
//	log.ErrorWithContext(ctx, "bucket validation failed", err, map[string]interface{}{
//		"bucket": "assets",
//	})
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Debug}
//		}),
//	)
//
// Configuration:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	LOGGER_ENABLE_TRACING=true      # Attach OpenTelemetry trace/span IDs
//
// Thread Safety:
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
