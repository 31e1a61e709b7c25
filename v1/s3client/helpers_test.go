package s3client

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/s3connect/v1/s3config"
	"github.com/Aleph-Alpha/s3connect/v1/settings"
)

// fakeS3 answers every request with status and counts the requests it saw.
type fakeS3 struct {
	*httptest.Server
	hits     atomic.Int32
	lastReq  atomic.Pointer[http.Request]
	endpoint string
}

func newFakeS3(t *testing.T, status int) *fakeS3 {
	t.Helper()
	f := &fakeS3{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		f.lastReq.Store(r)
		w.Header().Set("x-amz-request-id", "test")
		w.WriteHeader(status)
	}))
	f.endpoint = f.Server.Listener.Addr().String()
	t.Cleanup(f.Server.Close)
	return f
}

// clearIdentityEnv removes the container and web identity variables so the
// IAM provider falls through to the configured metadata endpoint.
func clearIdentityEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AWS_CONTAINER_CREDENTIALS_FULL_URI",
		"AWS_CONTAINER_CREDENTIALS_RELATIVE_URI",
		"AWS_CONTAINER_AUTHORIZATION_TOKEN",
		"AWS_CONTAINER_AUTHORIZATION_TOKEN_FILE",
		"AWS_WEB_IDENTITY_TOKEN_FILE",
		"AWS_ROLE_ARN",
		"AWS_EC2_METADATA_DISABLED",
	} {
		t.Setenv(key, "")
	}
}

func resolve(src settings.Map, overrides *s3config.Overrides) s3config.ClientConfiguration {
	return s3config.NewResolver(src).Resolve(overrides)
}

func explicitConfig(endpoint string) s3config.ClientConfiguration {
	return resolve(settings.Map{
		s3config.KeyAccessKey: "placeholder",
		s3config.KeySecretKey: "placeholder",
		s3config.KeyEndpoint:  endpoint,
		s3config.KeyUseSSL:    false,
	}, &s3config.Overrides{
		Transport: s3config.TransportOptions{s3config.OptionConnectTimeout: 2 * time.Second},
	})
}

func delegatedConfig(metadataEndpoint string) s3config.ClientConfiguration {
	return resolve(settings.Map{
		s3config.KeyUseEnvironmentIAM: true,
		s3config.KeyMetadataEndpoint:  metadataEndpoint,
	}, &s3config.Overrides{
		Transport: s3config.TransportOptions{s3config.OptionConnectTimeout: 2 * time.Second},
	})
}

func mustBuild(t *testing.T, cfg s3config.ClientConfiguration) *Client {
	t.Helper()
	client, err := NewFactory(nil).Build(cfg)
	require.NoError(t, err)
	return client
}
