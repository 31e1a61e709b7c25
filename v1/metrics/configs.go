package metrics

// DefaultMetricsAddress is used when Config.Address is empty.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration for the Prometheus metrics server.
type Config struct {
	// Address is the listen address of the /metrics endpoint, e.g. ":9090"
	// or "127.0.0.1:9100".
	//
	// Default: ":9090"
	Address string `mapstructure:"address"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors alongside the storage metrics.
	EnableDefaultCollectors bool `mapstructure:"enable_default_collectors"`

	// Namespace prefixes every metric name, e.g. "s3connect" turns
	// "bucket_validations_total" into "s3connect_bucket_validations_total".
	Namespace string `mapstructure:"namespace"`

	// ServiceName is attached to all metrics as the constant label
	// service="<ServiceName>".
	ServiceName string `mapstructure:"service_name"`
}
