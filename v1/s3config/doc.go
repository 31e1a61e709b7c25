// Package s3config resolves the configuration an object-storage client is
// built from.
//
// A Resolver reads host settings through a settings.Source and layers
// caller-supplied Overrides on top. The result is a ClientConfiguration that
// fixes the credential strategy, the connection parameters and the transport
// options. Resolution is pure: it touches no network and never fails. Missing
// or empty credentials are carried through and only surface when the client
// is used.
//
// Credential precedence, highest first:
//   - Overrides.Credentials, used verbatim
//   - the "s3.use_environment_iam" setting, which selects ModeDelegated
//   - the "s3.access_key" and "s3.secret_key" settings
//
// Transport options are merged one key at a time over the defaults
// ({connect_timeout: 30s}); an override never replaces the whole set.
// Known keys are normalized to time.Duration or bool. A known key with an
// unusable value keeps its default, and unknown keys pass through untouched.
//
// Basic Usage:
//
//	import (
//		"github.com/Aleph-Alpha/s3connect/v1/s3config"
//		"github.com/Aleph-Alpha/s3connect/v1/settings"
//	)
//
//	resolver := s3config.NewResolver(settings.Map{
//		s3config.KeyAccessKey: "AKIA...",
//		s3config.KeySecretKey: "secret",
//	})
//
//	cfg := resolver.Resolve(&s3config.Overrides{
//		Transport: s3config.TransportOptions{s3config.OptionVerbose: true},
//	})
//	// cfg.Transport == {connect_timeout: 30s, verbose: true}
//
// Attaching a logger reports ignored or unknown options:
//
//	resolver := s3config.NewResolver(src).WithLogger(log)
//
// Thread Safety:
//
// A Resolver holds no mutable state after construction. Resolve may be called
// concurrently as long as the settings source itself is safe for concurrent
// reads.
package s3config
