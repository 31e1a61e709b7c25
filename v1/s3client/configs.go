package s3client

import "time"

// DefaultValidationTimeout bounds the startup bucket check when
// Config.ValidationTimeout is zero.
const DefaultValidationTimeout = 30 * time.Second

// Config controls the client the FX module provides.
type Config struct {
	// Bucket is checked on start when ValidateOnStart is set.
	Bucket string `mapstructure:"bucket"`

	// ValidateOnStart makes application start fail with a
	// *BucketValidationError when Bucket is not reachable.
	ValidateOnStart bool `mapstructure:"validate_on_start"`

	// ValidationTimeout bounds the startup check.
	ValidationTimeout time.Duration `mapstructure:"validation_timeout"`
}
