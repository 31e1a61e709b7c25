package s3client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Aleph-Alpha/s3connect/v1/logger"
	"github.com/Aleph-Alpha/s3connect/v1/metrics"
	"github.com/Aleph-Alpha/s3connect/v1/tracer"
)

func TestValidateBucketExistsSingleCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		checker := NewMockBucketChecker(ctrl)
		checker.EXPECT().BucketExists(ctx, "media").Return(true, nil).Times(1)

		assert.NoError(t, ValidateBucketExists(ctx, "media", checker))
	})

	t.Run("missing", func(t *testing.T) {
		checker := NewMockBucketChecker(ctrl)
		checker.EXPECT().BucketExists(ctx, "media").Return(false, nil).Times(1)

		err := ValidateBucketExists(ctx, "media", checker)

		var vErr *BucketValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "media", vErr.Bucket)
		assert.ErrorIs(t, err, ErrBucketNotFound)
		assert.ErrorIs(t, err, ErrBucketValidation)
	})

	t.Run("error is not retried", func(t *testing.T) {
		cause := errors.New("connection reset")
		checker := NewMockBucketChecker(ctrl)
		checker.EXPECT().BucketExists(ctx, "media").Return(false, cause).Times(1)

		err := ValidateBucketExists(ctx, "media", checker)

		var vErr *BucketValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Same(t, cause, vErr.Err)
		assert.Contains(t, err.Error(), "media")
	})
}

func TestValidateAgainstServiceStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   bool
		wantClass error
	}{
		{"ok", http.StatusOK, false, nil},
		{"not found", http.StatusNotFound, true, ErrBucketNotFound},
		{"forbidden", http.StatusForbidden, true, ErrAccessDenied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s3 := newFakeS3(t, tc.status)
			client := mustBuild(t, explicitConfig(s3.endpoint))

			err := ValidateBucketExists(context.Background(), "media", client)

			assert.Equal(t, int32(1), s3.hits.Load(), "exactly one request")
			req := s3.lastReq.Load()
			require.NotNil(t, req)
			assert.Equal(t, http.MethodHead, req.Method)
			assert.True(t, strings.HasPrefix(req.URL.Path, "/media"))

			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *BucketValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "media", vErr.Bucket)
			assert.Equal(t, tc.wantClass, Classify(err))
		})
	}
}

func TestValidateServerErrorIsNotRetried(t *testing.T) {
	s3 := newFakeS3(t, http.StatusServiceUnavailable)
	client := mustBuild(t, explicitConfig(s3.endpoint))

	err := ValidateBucketExists(context.Background(), "media", client)

	assert.ErrorIs(t, err, ErrBucketValidation)
	assert.Equal(t, int32(1), s3.hits.Load())
}

func TestValidateDelegatedCredentialFailure(t *testing.T) {
	clearIdentityEnv(t)

	unreachable := httptest.NewServer(http.NotFoundHandler())
	metadataURL := unreachable.URL
	unreachable.Close()

	client := mustBuild(t, delegatedConfig(metadataURL))

	err := ValidateBucketExists(context.Background(), "media", client)

	assert.ErrorIs(t, err, ErrBucketValidation)
	assert.ErrorIs(t, err, ErrDelegatedCredentialsUnavailable)
	var credErr *DelegatedCredentialsError
	assert.True(t, errors.As(err, &credErr))
	assert.Equal(t, ErrDelegatedCredentialsUnavailable, Classify(err))
}

func TestClientStaysUsableAfterFailedValidation(t *testing.T) {
	s3 := newFakeS3(t, http.StatusNotFound)
	client := mustBuild(t, explicitConfig(s3.endpoint))

	require.Error(t, ValidateBucketExists(context.Background(), "media", client))

	key, err := client.AccessKeyID()
	require.NoError(t, err)
	assert.Equal(t, "placeholder", key)
	require.Error(t, ValidateBucketExists(context.Background(), "media", client))
	assert.Equal(t, int32(2), s3.hits.Load())
}

func TestValidatorRecordsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := NewMockLogger(ctrl)
	m := metrics.NewMetrics(metrics.Config{})
	recorder := tracetest.NewSpanRecorder()
	tr := tracer.NewClient(tracer.Config{ServiceName: "test"}, nil, trace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })

	v := NewValidator(mockLogger, m, tr)
	ctx := context.Background()

	mockLogger.EXPECT().Info("bucket validated", nil, gomock.Any()).Times(1)
	ok := NewMockBucketChecker(ctrl)
	ok.EXPECT().BucketExists(gomock.Any(), "media").Return(true, nil)
	require.NoError(t, v.ValidateBucketExists(ctx, "media", ok))

	mockLogger.EXPECT().Error("bucket validation failed", gomock.Any(), gomock.Any()).Times(1)
	missing := NewMockBucketChecker(ctrl)
	missing.EXPECT().BucketExists(gomock.Any(), "gone").Return(false, nil)
	require.ErrorIs(t, v.ValidateBucketExists(ctx, "gone", missing), ErrBucketNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "s3.validate_bucket", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "bucket_validations_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{metrics.ResultSuccess: 1, metrics.ResultNotFound: 1}, counts)
}

func TestValidatorWithoutCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := NewMockBucketChecker(ctrl)
	checker.EXPECT().BucketExists(gomock.Any(), "media").Return(false, errors.New("boom"))

	err := NewValidator(nil, nil, nil).ValidateBucketExists(context.Background(), "media", checker)
	assert.ErrorIs(t, err, ErrBucketValidation)
}

func TestValidatorLogsWithSpanContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewWithZap(zap.New(core))
	log.EnableTracing()
	recorder := tracetest.NewSpanRecorder()
	tr := tracer.NewClient(tracer.Config{ServiceName: "test"}, nil, trace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })

	v := NewValidator(log, nil, tr)

	ok := NewMockBucketChecker(ctrl)
	ok.EXPECT().BucketExists(gomock.Any(), "media").Return(true, nil)
	require.NoError(t, v.ValidateBucketExists(context.Background(), "media", ok))

	missing := NewMockBucketChecker(ctrl)
	missing.EXPECT().BucketExists(gomock.Any(), "gone").Return(false, nil)
	require.Error(t, v.ValidateBucketExists(context.Background(), "gone", missing))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	entries := logs.All()
	require.Len(t, entries, 2)
	for i, entry := range entries {
		fields := entry.ContextMap()
		assert.Equal(t, spans[i].SpanContext().TraceID().String(), fields["trace_id"], entry.Message)
		assert.Equal(t, spans[i].SpanContext().SpanID().String(), fields["span_id"], entry.Message)
	}
	assert.Equal(t, "bucket validated", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{nil, nil},
		{&BucketValidationError{Bucket: "b", Err: ErrBucketNotFound}, ErrBucketNotFound},
		{&BucketValidationError{Bucket: "b", Err: minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403}}, ErrAccessDenied},
		{minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: 404}, ErrBucketNotFound},
		{fmt.Errorf("wrapped: %w", &net.OpError{Op: "dial", Err: errors.New("refused")}), ErrConnectionFailed},
		{&DelegatedCredentialsError{Err: errors.New("x")}, ErrDelegatedCredentialsUnavailable},
		{errors.New("strange"), ErrUnknown},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.err), "%v", tc.err)
	}
}
