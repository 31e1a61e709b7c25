package tracer

// Config configures the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `mapstructure:"service_name"`

	// AppEnv is reported as deployment.environment, e.g. "production".
	AppEnv string `mapstructure:"app_env"`

	// EnableExport sends spans to an OTLP HTTP collector. The collector is
	// configured through the standard OTEL_EXPORTER_OTLP_* variables.
	// When false spans are created but not exported.
	EnableExport bool `mapstructure:"enable_export"`
}
