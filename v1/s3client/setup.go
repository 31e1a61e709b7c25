package s3client

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Aleph-Alpha/s3connect/v1/s3config"
)

// Logger defines the interface for logging operations within the s3client package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=s3client
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

// Factory turns a resolved s3config.ClientConfiguration into a *Client.
// Building never touches the network; in delegated mode the identity service
// is contacted lazily, the first time credentials are needed.
type Factory struct {
	logger      Logger
	metrics     CredentialRecorder
	traceOutput io.Writer
}

// NewFactory creates a Factory. logger may be nil.
func NewFactory(logger Logger) *Factory {
	return &Factory{logger: logger}
}

// WithMetrics attaches a recorder that is told about every credential lookup.
func (f *Factory) WithMetrics(m CredentialRecorder) *Factory {
	f.metrics = m
	return f
}

// WithTraceOutput sets where HTTP traces go when the verbose transport
// option is on. The default is os.Stderr.
func (f *Factory) WithTraceOutput(w io.Writer) *Factory {
	f.traceOutput = w
	return f
}

// Build constructs a client for cfg.
//
// The only error Build returns is the SDK rejecting the endpoint (for example
// a malformed host). Missing credentials and unreachable services are not
// detected here; they surface on first use.
//
// Example:
//
//	cfg := s3config.NewResolver(src).Resolve(nil)
//	client, err := s3client.NewFactory(log).Build(cfg)
//	if err != nil {
//	    return err
//	}
func (f *Factory) Build(cfg s3config.ClientConfiguration) (*Client, error) {
	cfg = cfg.Clone()
	if cfg.Transport == nil {
		cfg.Transport = s3config.DefaultTransportOptions()
	}

	transport, err := newTransport(cfg.Transport, cfg.Connection.UseSSL)
	if err != nil {
		f.logError("failed to build storage transport", err, nil)
		return nil, fmt.Errorf("build transport: %w", err)
	}

	creds := credentialsFor(cfg)

	mc, err := minio.New(cfg.Connection.Endpoint, &minio.Options{
		Creds:      creds,
		Secure:     cfg.Connection.UseSSL,
		Region:     cfg.Connection.Region,
		Transport:  transport,
		MaxRetries: 1,
	})
	if err != nil {
		f.logError("failed to create storage client", err, map[string]interface{}{
			"endpoint": cfg.Connection.Endpoint,
			"region":   cfg.Connection.Region,
			"secure":   cfg.Connection.UseSSL,
		})
		return nil, fmt.Errorf("create storage client for %q: %w", cfg.Connection.Endpoint, err)
	}

	if cfg.Transport.Verbose() {
		out := f.traceOutput
		if out == nil {
			out = os.Stderr
		}
		mc.TraceOn(out)
	}

	for _, key := range cfg.Transport.Unknown() {
		f.logDebug("transport option not used by the storage client", map[string]interface{}{
			"option": string(key),
		})
	}

	f.logInfo("storage client constructed", map[string]interface{}{
		"endpoint":        cfg.Connection.Endpoint,
		"region":          cfg.Connection.Region,
		"secure":          cfg.Connection.UseSSL,
		"credential_mode": cfg.Credentials.Mode.String(),
	})

	return &Client{
		minio:   mc,
		creds:   creds,
		cfg:     cfg,
		logger:  f.logger,
		metrics: f.metrics,
	}, nil
}

// credentialsFor picks the provider for the configured mode. Static
// credentials are available immediately; the IAM provider fetches on first
// Get and the SDK caches the result until it expires.
func credentialsFor(cfg s3config.ClientConfiguration) *credentials.Credentials {
	if cfg.Credentials.Mode == s3config.ModeDelegated {
		return credentials.New(&credentials.IAM{
			Client: &http.Client{
				Timeout: cfg.Transport.ConnectTimeout(),
			},
			Endpoint: cfg.Connection.MetadataEndpoint,
		})
	}
	return credentials.NewStaticV4(cfg.Credentials.AccessKeyID, cfg.Credentials.SecretAccessKey, "")
}

func (f *Factory) logInfo(msg string, fields map[string]interface{}) {
	if f.logger != nil {
		f.logger.Info(msg, nil, fields)
	}
}

func (f *Factory) logDebug(msg string, fields map[string]interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, nil, fields)
	}
}

func (f *Factory) logError(msg string, err error, fields map[string]interface{}) {
	if f.logger != nil {
		f.logger.Error(msg, err, fields)
	}
}
