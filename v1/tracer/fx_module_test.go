package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Aleph-Alpha/s3connect/v1/logger"
)

func TestFXModuleEnablesLogCorrelation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	var (
		tr  *Tracer
		log *logger.Logger
	)
	app := fxtest.New(t,
		fx.Provide(func() *logger.Logger { return logger.NewWithZap(zap.New(core)) }),
		fx.Supply(Config{ServiceName: "test", AppEnv: "test"}),
		FXModule,
		fx.Populate(&tr, &log),
	)
	app.RequireStart()
	defer app.RequireStop()

	ctx, span := tr.StartSpan(context.Background(), "validate")
	log.InfoWithContext(ctx, "bucket validated", nil, map[string]interface{}{"bucket": "media"})
	span.End()

	entries := logs.FilterMessage("bucket validated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
}
