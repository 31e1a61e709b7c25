package s3client

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/s3connect/v1/logger"
	"github.com/Aleph-Alpha/s3connect/v1/metrics"
	"github.com/Aleph-Alpha/s3connect/v1/s3config"
	"github.com/Aleph-Alpha/s3connect/v1/settings"
	"github.com/Aleph-Alpha/s3connect/v1/tracer"
)

// FXModule wires configuration resolution, client construction and bucket
// validation into an fx application.
//
// It provides *s3config.Resolver, *Factory, *Validator and a *Client built
// from the resolved configuration. The container must supply a
// settings.Source, a *logger.Logger and a Config; *s3config.Overrides,
// *metrics.Metrics and *tracer.Tracer are picked up when present.
//
// With Config.ValidateOnStart set, the start hook checks Config.Bucket and
// application start fails with the *BucketValidationError.
//
//	app := fx.New(
//	    logger.FXModule,
//	    s3client.FXModule,
//	    fx.Provide(func(v *viper.Viper) settings.Source { return settings.NewViper(v) }),
//	    fx.Supply(s3client.Config{Bucket: "media", ValidateOnStart: true}),
//	)
var FXModule = fx.Module("s3client",
	fx.Provide(
		newResolver,
		newFactory,
		newValidator,
		newClient,
	),
	fx.Invoke(RegisterLifecycle),
)

type observability struct {
	fx.In

	Metrics *metrics.Metrics `optional:"true"`
	Tracer  *tracer.Tracer   `optional:"true"`
}

type clientParams struct {
	fx.In

	Resolver  *s3config.Resolver
	Factory   *Factory
	Overrides *s3config.Overrides `optional:"true"`
}

func newResolver(src settings.Source, log *logger.Logger) *s3config.Resolver {
	return s3config.NewResolver(src).WithLogger(log)
}

func newFactory(log *logger.Logger, obs observability) *Factory {
	f := NewFactory(log)
	if obs.Metrics != nil {
		f.WithMetrics(obs.Metrics)
	}
	return f
}

func newValidator(log *logger.Logger, obs observability) *Validator {
	v := NewValidator(log, nil, nil)
	if obs.Metrics != nil {
		v.metrics = obs.Metrics
	}
	if obs.Tracer != nil {
		v.tracer = obs.Tracer
	}
	return v
}

func newClient(p clientParams) (*Client, error) {
	return p.Factory.Build(p.Resolver.Resolve(p.Overrides))
}

// RegisterLifecycle validates the configured bucket on start when
// cfg.ValidateOnStart is set.
func RegisterLifecycle(lc fx.Lifecycle, cfg Config, client *Client, validator *Validator, log *logger.Logger) {
	if !cfg.ValidateOnStart {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeout := cfg.ValidationTimeout
			if timeout <= 0 {
				timeout = DefaultValidationTimeout
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			if cfg.Bucket == "" {
				err := &BucketValidationError{Bucket: cfg.Bucket, Err: ErrBucketNotFound}
				log.Error("bucket validation enabled without a bucket name", err, nil)
				return err
			}

			return validator.ValidateBucketExists(ctx, cfg.Bucket, client)
		},
	})
}
