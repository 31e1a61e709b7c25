package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/s3connect/v1/logger"
)

// FXModule provides *Tracer from a tracer.Config in the container and shuts
// the provider down, flushing pending spans, when the application stops.
// It also enables trace correlation on the container's *logger.Logger.
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Supply(tracer.Config{ServiceName: "ingest"}),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		newFromContainer,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

func newFromContainer(cfg Config, log *logger.Logger) *Tracer {
	log.EnableTracing()
	return NewClient(cfg, log)
}

// RegisterTracerLifecycle shuts the tracer down on application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer", nil, nil)
			return t.Shutdown(ctx)
		},
	})
}
