package s3client

import (
	"context"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"
)

// CredentialRecorder receives one observation per credential lookup.
// *metrics.Metrics implements it.
type CredentialRecorder interface {
	IncrementCredentialResolutions(mode, result string)
}

// ValidationRecorder receives one observation per bucket check.
// *metrics.Metrics implements it.
type ValidationRecorder interface {
	ObserveBucketValidation(start time.Time, result string)
}

// SpanTracer creates spans around bucket checks. *tracer.Tracer implements it.
type SpanTracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span)
	RecordErrorOnSpan(span traceSpan.Span, err error)
	SetAttributes(span traceSpan.Span, attrs map[string]interface{})
}

// ContextLogger is implemented by loggers that can attach the span carried by
// a context to an entry. *logger.Logger implements it. The Validator uses it
// when its Logger also satisfies this interface.
type ContextLogger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
