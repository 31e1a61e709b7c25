package s3config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// OptionKey names a transport-tunable parameter.
type OptionKey string

const (
	// OptionConnectTimeout bounds TCP connection setup (time.Duration).
	OptionConnectTimeout OptionKey = "connect_timeout"
	// OptionVerbose enables request/response tracing (bool).
	OptionVerbose OptionKey = "verbose"
	// OptionResponseHeaderTimeout bounds the wait for response headers (time.Duration).
	OptionResponseHeaderTimeout OptionKey = "response_header_timeout"
	// OptionTLSHandshakeTimeout bounds the TLS handshake (time.Duration).
	OptionTLSHandshakeTimeout OptionKey = "tls_handshake_timeout"
	// OptionInsecureSkipVerify disables server certificate verification (bool).
	OptionInsecureSkipVerify OptionKey = "insecure_skip_verify"
)

type optionKind int

const (
	kindDuration optionKind = iota
	kindBool
)

var knownOptions = map[OptionKey]optionKind{
	OptionConnectTimeout:        kindDuration,
	OptionVerbose:               kindBool,
	OptionResponseHeaderTimeout: kindDuration,
	OptionTLSHandshakeTimeout:   kindDuration,
	OptionInsecureSkipVerify:    kindBool,
}

// IsKnownOption reports whether the client factory understands key.
func IsKnownOption(key OptionKey) bool {
	_, ok := knownOptions[key]
	return ok
}

// TransportOptions maps option keys to values. Known keys hold normalized
// values (time.Duration or bool); unknown keys are carried through as given.
type TransportOptions map[OptionKey]any

// DefaultTransportOptions returns a fresh copy of the default option set.
func DefaultTransportOptions() TransportOptions {
	return TransportOptions{
		OptionConnectTimeout: DefaultConnectTimeout,
	}
}

// Clone returns a shallow copy of the map. A nil map clones to nil.
func (o TransportOptions) Clone() TransportOptions {
	if o == nil {
		return nil
	}
	out := make(TransportOptions, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Has reports whether key is present.
func (o TransportOptions) Has(key OptionKey) bool {
	_, ok := o[key]
	return ok
}

// Duration returns the duration stored under key, or 0 when absent.
func (o TransportOptions) Duration(key OptionKey) time.Duration {
	d, _ := o[key].(time.Duration)
	return d
}

// Bool returns the bool stored under key, or false when absent.
func (o TransportOptions) Bool(key OptionKey) bool {
	b, _ := o[key].(bool)
	return b
}

// ConnectTimeout returns the connect timeout option.
func (o TransportOptions) ConnectTimeout() time.Duration {
	return o.Duration(OptionConnectTimeout)
}

// Verbose returns the verbosity option.
func (o TransportOptions) Verbose() bool {
	return o.Bool(OptionVerbose)
}

// Unknown returns the keys the factory does not understand, in no particular order.
func (o TransportOptions) Unknown() []OptionKey {
	var out []OptionKey
	for k := range o {
		if !IsKnownOption(k) {
			out = append(out, k)
		}
	}
	return out
}

// normalizeOption converts value to the canonical type for a known key.
// Unknown keys are returned unchanged.
func normalizeOption(key OptionKey, value any) (any, error) {
	kind, ok := knownOptions[key]
	if !ok {
		return value, nil
	}

	switch kind {
	case kindDuration:
		return toDuration(value)
	case kindBool:
		return cast.ToBoolE(value)
	}
	return value, nil
}

// toDuration accepts a time.Duration, a number of seconds, or a duration
// string ("10s", "1m"). Bare numeric strings are read as seconds.
func toDuration(value any) (time.Duration, error) {
	switch v := value.(type) {
	case time.Duration:
		if v < 0 {
			return 0, fmt.Errorf("negative duration %v", v)
		}
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if secs, err := strconv.ParseFloat(s, 64); err == nil {
			return secondsToDuration(secs)
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, err
		}
		if d < 0 {
			return 0, fmt.Errorf("negative duration %q", s)
		}
		return d, nil
	case bool, nil:
		return 0, fmt.Errorf("cannot use %T as a duration", value)
	}

	secs, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, fmt.Errorf("cannot use %T as a duration: %w", value, err)
	}
	return secondsToDuration(secs)
}

// maxDurationSeconds is the largest number of seconds a time.Duration holds.
const maxDurationSeconds = math.MaxInt64 / float64(time.Second)

func secondsToDuration(secs float64) (time.Duration, error) {
	switch {
	case math.IsNaN(secs), math.IsInf(secs, 0):
		return 0, fmt.Errorf("invalid duration %v", secs)
	case secs < 0:
		return 0, fmt.Errorf("negative duration %v", secs)
	case secs >= maxDurationSeconds:
		return 0, fmt.Errorf("duration of %v seconds out of range", secs)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
