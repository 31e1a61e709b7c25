// Package s3client builds object-storage clients from a resolved
// s3config.ClientConfiguration and validates that buckets are reachable.
//
// Construction and validation are separate steps:
// Factory.Build never performs network I/O, and a bucket is only contacted
// when ValidateBucketExists is called. A client whose validation failed is
// still a usable client.
//
// Credential Modes:
//
// In explicit mode the client signs with the configured key pair, and
// Client.AccessKeyID returns it without any network access, even when it is
// empty or a placeholder. In delegated mode the client obtains temporary
// credentials from the execution environment's identity service (container
// credentials, web identity or the instance metadata endpoint) the first
// time they are needed. If that fails, the caller gets a
// *DelegatedCredentialsError:
//
//	key, err := client.AccessKeyID()
//	if errors.Is(err, s3client.ErrDelegatedCredentialsUnavailable) {
//		// configure s3.access_key / s3.secret_key instead
//	}
//
// Successful lookups are cached by the SDK until the credentials expire.
// Failed lookups are not cached.
//
// Bucket Validation:
//
//	cfg := s3config.NewResolver(src).Resolve(nil)
//	client, err := s3client.NewFactory(log).Build(cfg)
//	if err != nil {
//		return err
//	}
//
//	if err := s3client.ValidateBucketExists(ctx, "media", client); err != nil {
//		var vErr *s3client.BucketValidationError
//		if errors.As(err, &vErr) {
//			log.Error("bucket unavailable", vErr.Err, map[string]interface{}{"bucket": vErr.Bucket})
//		}
//	}
//
// Every failure, including a bucket that does not exist, is a
// *BucketValidationError; Classify maps its cause to ErrBucketNotFound,
// ErrAccessDenied, ErrConnectionFailed, ErrDelegatedCredentialsUnavailable or
// ErrUnknown. Validation makes exactly one request and never retries.
//
// Use NewValidator to get the same check with logging, Prometheus metrics
// and an OpenTelemetry span per call.
//
// FX Integration:
//
// FXModule provides the resolver, factory, validator and client, and can fail
// application start when the configured bucket is unreachable (see Config).
//
// Thread Safety:
//
// Factory, Client and Validator are safe for concurrent use.
package s3client
