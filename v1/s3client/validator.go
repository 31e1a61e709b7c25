package s3client

import (
	"context"
	"errors"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/s3connect/v1/metrics"
)

// BucketChecker is the single capability validation needs. Both *Client and
// *minio.Client satisfy it.
//
//go:generate mockgen -source=validator.go -destination=mock_bucket_checker.go -package=s3client
type BucketChecker interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
}

// ValidateBucketExists confirms bucket exists with exactly one call to
// client. It returns nil on success and a *BucketValidationError otherwise:
// a missing bucket has ErrBucketNotFound as its cause, any other failure is
// carried as the cause unchanged. Nothing is retried.
func ValidateBucketExists(ctx context.Context, bucket string, client BucketChecker) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return &BucketValidationError{Bucket: bucket, Err: err}
	}
	if !exists {
		return &BucketValidationError{Bucket: bucket, Err: ErrBucketNotFound}
	}
	return nil
}

// Validator runs ValidateBucketExists and reports each check to the attached
// logger, metrics and tracer. Every collaborator is optional.
type Validator struct {
	logger  Logger
	metrics ValidationRecorder
	tracer  SpanTracer
}

// NewValidator creates a Validator. Any argument may be nil.
func NewValidator(logger Logger, metrics ValidationRecorder, tracer SpanTracer) *Validator {
	return &Validator{logger: logger, metrics: metrics, tracer: tracer}
}

// ValidateBucketExists behaves like the package-level function of the same
// name and additionally records the outcome.
func (v *Validator) ValidateBucketExists(ctx context.Context, bucket string, client BucketChecker) error {
	start := time.Now()

	var span traceSpan.Span
	if v.tracer != nil {
		ctx, span = v.tracer.StartSpan(ctx, "s3.validate_bucket")
		defer span.End()
		v.tracer.SetAttributes(span, map[string]interface{}{"s3.bucket": bucket})
	}

	err := ValidateBucketExists(ctx, bucket, client)

	result := resultLabel(err)
	if v.metrics != nil {
		v.metrics.ObserveBucketValidation(start, result)
	}

	fields := map[string]interface{}{
		"bucket":   bucket,
		"result":   result,
		"duration": time.Since(start).String(),
	}
	if err != nil {
		if span != nil {
			v.tracer.RecordErrorOnSpan(span, err)
		}
		v.logError(ctx, "bucket validation failed", err, fields)
		return err
	}

	v.logInfo(ctx, "bucket validated", fields)
	return nil
}

func (v *Validator) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	switch l := v.logger.(type) {
	case nil:
	case ContextLogger:
		l.InfoWithContext(ctx, msg, nil, fields)
	default:
		l.Info(msg, nil, fields)
	}
}

func (v *Validator) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	switch l := v.logger.(type) {
	case nil:
	case ContextLogger:
		l.ErrorWithContext(ctx, msg, err, fields)
	default:
		l.Error(msg, err, fields)
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(Classify(err), ErrBucketNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}
