package s3client

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/Aleph-Alpha/s3connect/v1/s3config"
)

const dialKeepAlive = 30 * time.Second

// newTransport starts from the SDK's default transport and applies the
// known transport options on top of it.
func newTransport(opts s3config.TransportOptions, secure bool) (*http.Transport, error) {
	tr, err := minio.DefaultTransport(secure)
	if err != nil {
		return nil, err
	}

	dialer := &net.Dialer{
		Timeout:   opts.ConnectTimeout(),
		KeepAlive: dialKeepAlive,
	}
	tr.DialContext = dialer.DialContext

	if d := opts.Duration(s3config.OptionTLSHandshakeTimeout); d > 0 {
		tr.TLSHandshakeTimeout = d
	}
	if d := opts.Duration(s3config.OptionResponseHeaderTimeout); d > 0 {
		tr.ResponseHeaderTimeout = d
	}
	if opts.Bool(s3config.OptionInsecureSkipVerify) {
		if tr.TLSClientConfig == nil {
			tr.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		tr.TLSClientConfig.InsecureSkipVerify = true // #nosec G402 -- explicit opt-in
	}

	return tr, nil
}
