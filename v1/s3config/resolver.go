package s3config

import (
	"strings"

	"github.com/Aleph-Alpha/s3connect/v1/settings"
	"github.com/spf13/cast"
)

// Logger defines the interface for logging operations within the s3config package.
//
//go:generate mockgen -source=resolver.go -destination=mock_logger.go -package=s3config
type Logger interface {
	// Info logs informational messages with optional error and additional fields
	Info(msg string, err error, fields ...map[string]interface{})

	// Debug logs debug-level messages with optional error and additional fields
	Debug(msg string, err error, fields ...map[string]interface{})

	// Warn logs warning messages with optional error and additional fields
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs error messages with the associated error and optional additional fields
	Error(msg string, err error, fields ...map[string]interface{})

	// Fatal logs critical error messages that typically require immediate attention
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Resolver assembles a ClientConfiguration from host settings and optional
// overrides. It performs no I/O beyond reading the settings source and never
// fails: missing values are passed through and surface when the client is used.
type Resolver struct {
	source settings.Source
	logger Logger
}

// NewResolver creates a Resolver reading from src. A nil src behaves as an
// empty settings source.
func NewResolver(src settings.Source) *Resolver {
	if src == nil {
		src = settings.Map(nil)
	}
	return &Resolver{source: src}
}

// WithLogger attaches a logger and returns the resolver for chaining.
func (r *Resolver) WithLogger(logger Logger) *Resolver {
	r.logger = logger
	return r
}

// Resolve reads the settings source and merges overrides on top of it.
//
// Credential precedence, highest first:
//  1. overrides.Credentials, verbatim
//  2. delegated identity when KeyUseEnvironmentIAM is truthy
//  3. KeyAccessKey / KeySecretKey from settings, possibly empty
//
// Transport options start from DefaultTransportOptions and each override key
// replaces only its own entry. Each call returns a new value; the resolver
// keeps no state between calls.
func (r *Resolver) Resolve(overrides *Overrides) ClientConfiguration {
	if overrides == nil {
		overrides = &Overrides{}
	}

	cfg := ClientConfiguration{
		Credentials: r.resolveCredentials(overrides),
		Connection:  r.resolveConnection(overrides.Connection),
		Transport:   r.mergeTransport(overrides.Transport),
	}

	r.logDebug("resolved storage client configuration", map[string]interface{}{
		"credential_mode": cfg.Credentials.Mode.String(),
		"endpoint":        cfg.Connection.Endpoint,
		"region":          cfg.Connection.Region,
		"secure":          cfg.Connection.UseSSL,
	})

	return cfg
}

func (r *Resolver) resolveCredentials(overrides *Overrides) Credentials {
	if oc := overrides.Credentials; oc != nil {
		return Credentials{
			Mode:            ModeExplicit,
			AccessKeyID:     oc.AccessKeyID,
			SecretAccessKey: oc.SecretAccessKey,
		}
	}

	if r.boolSetting(KeyUseEnvironmentIAM, false) {
		return Credentials{Mode: ModeDelegated}
	}

	return Credentials{
		Mode:            ModeExplicit,
		AccessKeyID:     r.stringSetting(KeyAccessKey, ""),
		SecretAccessKey: r.stringSetting(KeySecretKey, ""),
	}
}

func (r *Resolver) resolveConnection(o ConnectionOverrides) Connection {
	conn := Connection{
		Endpoint:         r.stringSetting(KeyEndpoint, DefaultEndpoint),
		Region:           r.stringSetting(KeyRegion, DefaultRegion),
		UseSSL:           r.boolSetting(KeyUseSSL, DefaultUseSSL),
		MetadataEndpoint: r.stringSetting(KeyMetadataEndpoint, ""),
	}

	if o.Endpoint != "" {
		conn.Endpoint = o.Endpoint
	}
	if o.Region != "" {
		conn.Region = o.Region
	}
	if o.UseSSL != nil {
		conn.UseSSL = *o.UseSSL
	}
	if o.MetadataEndpoint != "" {
		conn.MetadataEndpoint = o.MetadataEndpoint
	}

	conn.Endpoint = stripScheme(conn.Endpoint)
	return conn
}

// mergeTransport applies overrides over the defaults one key at a time.
// A known key whose value cannot be normalized keeps its default.
func (r *Resolver) mergeTransport(overrides TransportOptions) TransportOptions {
	merged := DefaultTransportOptions()

	for key, value := range overrides {
		normalized, err := normalizeOption(key, value)
		if err != nil {
			r.logWarn("ignoring invalid transport option", err, map[string]interface{}{
				"option": string(key),
			})
			continue
		}
		if !IsKnownOption(key) {
			r.logDebug("passing through unknown transport option", map[string]interface{}{
				"option": string(key),
			})
		}
		merged[key] = normalized
	}

	return merged
}

func (r *Resolver) stringSetting(key, fallback string) string {
	raw, ok := r.source.Get(key)
	if !ok || raw == nil {
		return fallback
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		r.logWarn("ignoring non-string setting", err, map[string]interface{}{"key": key})
		return fallback
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

func (r *Resolver) boolSetting(key string, fallback bool) bool {
	raw, ok := r.source.Get(key)
	if !ok || raw == nil {
		return fallback
	}
	if s, isString := raw.(string); isString && strings.TrimSpace(s) == "" {
		return fallback
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		r.logWarn("ignoring non-boolean setting", err, map[string]interface{}{"key": key})
		return fallback
	}
	return b
}

// stripScheme removes an http(s):// prefix; the SDK expects host[:port].
func stripScheme(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	return strings.TrimSuffix(endpoint, "/")
}

func (r *Resolver) logDebug(msg string, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, nil, fields)
	}
}

func (r *Resolver) logWarn(msg string, err error, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.Warn(msg, err, fields)
	}
}
