package s3client

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Aleph-Alpha/s3connect/v1/metrics"
	"github.com/Aleph-Alpha/s3connect/v1/s3config"
)

// Client is a constructed storage client. It wraps the SDK client together
// with the credential provider it signs requests with. A Client stays usable
// after a failed bucket validation.
type Client struct {
	minio   *minio.Client
	creds   *credentials.Credentials
	cfg     s3config.ClientConfiguration
	logger  Logger
	metrics CredentialRecorder
}

// Minio returns the underlying SDK client for storage operations.
func (c *Client) Minio() *minio.Client {
	return c.minio
}

// Config returns a copy of the configuration the client was built from.
func (c *Client) Config() s3config.ClientConfiguration {
	return c.cfg.Clone()
}

// Mode returns the credential mode the client was built with.
func (c *Client) Mode() s3config.CredentialMode {
	return c.cfg.Credentials.Mode
}

// Credentials returns the signing credentials.
//
// In explicit mode this never touches the network. In delegated mode the
// first call contacts the identity service; a success is cached by the SDK
// until the credentials expire, a failure is not, so a later call tries
// again. Failures are returned as *DelegatedCredentialsError.
func (c *Client) Credentials() (credentials.Value, error) {
	mode := c.cfg.Credentials.Mode.String()

	v, err := c.creds.Get()
	if err != nil {
		c.recordCredentials(mode, metrics.ResultError)
		if c.cfg.Credentials.Mode == s3config.ModeDelegated {
			err = &DelegatedCredentialsError{Endpoint: c.cfg.Connection.MetadataEndpoint, Err: err}
		} else {
			err = fmt.Errorf("retrieve credentials: %w", err)
		}
		if c.logger != nil {
			c.logger.Error("failed to obtain storage credentials", err, map[string]interface{}{
				"credential_mode": mode,
			})
		}
		return credentials.Value{}, err
	}

	c.recordCredentials(mode, metrics.ResultSuccess)
	return v, nil
}

// AccessKeyID returns the configured access key. In explicit mode it is
// read from the configuration without I/O, so a key configured without a
// secret is still reported even though requests are then signed anonymously.
// In delegated mode it is the key obtained through Credentials.
func (c *Client) AccessKeyID() (string, error) {
	if c.cfg.Credentials.Mode == s3config.ModeExplicit {
		c.recordCredentials(s3config.ModeExplicit.String(), metrics.ResultSuccess)
		return c.cfg.Credentials.AccessKeyID, nil
	}
	v, err := c.Credentials()
	if err != nil {
		return "", err
	}
	return v.AccessKeyID, nil
}

// BucketExists issues a single existence check for bucket. In delegated mode
// credentials are resolved first so that an identity failure comes back as
// a *DelegatedCredentialsError rather than an opaque signing error.
func (c *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	if c.cfg.Credentials.Mode == s3config.ModeDelegated {
		if _, err := c.Credentials(); err != nil {
			return false, err
		}
	}
	return c.minio.BucketExists(ctx, bucket)
}

func (c *Client) recordCredentials(mode, result string) {
	if c.metrics != nil {
		c.metrics.IncrementCredentialResolutions(mode, result)
	}
}
