package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level selects the minimum log level. Unknown values fall back to info.
	Level string `mapstructure:"level"`

	// EnableTracing adds trace_id and span_id from the context to entries
	// written through InfoWithContext and ErrorWithContext.
	EnableTracing bool `mapstructure:"enable_tracing"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `mapstructure:"service_name"`

	// OutputPaths overrides the sinks entries are written to. Defaults to stderr.
	OutputPaths []string `mapstructure:"output_paths"`
}
