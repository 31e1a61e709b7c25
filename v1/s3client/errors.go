package s3client

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/minio/minio-go/v7"
)

var (
	// ErrDelegatedCredentialsUnavailable is matched by every
	// *DelegatedCredentialsError.
	ErrDelegatedCredentialsUnavailable = errors.New("delegated credentials unavailable")

	// ErrBucketValidation is matched by every *BucketValidationError.
	ErrBucketValidation = errors.New("bucket validation failed")

	// ErrBucketNotFound is the cause of a validation failure when the
	// service answers that the bucket does not exist.
	ErrBucketNotFound = errors.New("bucket does not exist")

	// ErrAccessDenied classifies authorization failures reported by the service.
	ErrAccessDenied = errors.New("access denied")

	// ErrConnectionFailed classifies failures to reach the service at all.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnknown classifies every other failure.
	ErrUnknown = errors.New("unknown storage error")
)

// DelegatedCredentialsError reports that the environment identity service
// could not supply credentials. It is only returned in delegated mode, when
// credentials are first needed.
type DelegatedCredentialsError struct {
	// Endpoint is the identity service consulted; empty means the SDK default.
	Endpoint string
	Err      error
}

func (e *DelegatedCredentialsError) Error() string {
	endpoint := e.Endpoint
	if endpoint == "" {
		endpoint = "default instance metadata endpoint"
	}
	return fmt.Sprintf(
		"no credentials available from the environment identity service (%s): %v; "+
			"configure an explicit access key and secret key or grant this environment an identity",
		endpoint, e.Err)
}

// Is makes errors.Is(err, ErrDelegatedCredentialsUnavailable) hold.
func (e *DelegatedCredentialsError) Is(target error) bool {
	return target == ErrDelegatedCredentialsUnavailable
}

func (e *DelegatedCredentialsError) Unwrap() error {
	return e.Err
}

// BucketValidationError reports that a bucket could not be confirmed to
// exist. Err is the underlying cause: ErrBucketNotFound, a
// *DelegatedCredentialsError, a minio.ErrorResponse or a transport error.
type BucketValidationError struct {
	Bucket string
	Err    error
}

func (e *BucketValidationError) Error() string {
	return fmt.Sprintf("bucket %q could not be validated: %v", e.Bucket, e.Err)
}

// Is makes errors.Is(err, ErrBucketValidation) hold.
func (e *BucketValidationError) Is(target error) bool {
	return target == ErrBucketValidation
}

func (e *BucketValidationError) Unwrap() error {
	return e.Err
}

// Classify maps a storage error to one of the package sentinels. It is meant
// for branching and reporting; the original error should still be kept as
// the cause.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrBucketNotFound):
		return ErrBucketNotFound
	case errors.Is(err, ErrDelegatedCredentialsUnavailable):
		return ErrDelegatedCredentialsUnavailable
	}

	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		switch {
		case resp.Code == "NoSuchBucket" || resp.StatusCode == http.StatusNotFound:
			return ErrBucketNotFound
		case resp.Code == "AccessDenied" || resp.StatusCode == http.StatusForbidden:
			return ErrAccessDenied
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrConnectionFailed
	}

	return ErrUnknown
}
