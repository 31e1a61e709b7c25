package s3config

import "time"

// Settings keys read from the host settings source.
const (
	// KeyAccessKey holds the explicit access key ID.
	KeyAccessKey = "s3.access_key"
	// KeySecretKey holds the explicit secret access key.
	KeySecretKey = "s3.secret_key"
	// KeyUseEnvironmentIAM selects delegated identity when truthy.
	KeyUseEnvironmentIAM = "s3.use_environment_iam"
	// KeyEndpoint holds the storage endpoint as host[:port].
	KeyEndpoint = "s3.endpoint"
	// KeyRegion holds the bucket region.
	KeyRegion = "s3.region"
	// KeyUseSSL selects https when truthy.
	KeyUseSSL = "s3.use_ssl"
	// KeyMetadataEndpoint holds the URL of the instance identity service.
	KeyMetadataEndpoint = "s3.metadata_endpoint"
)

// Values used when the corresponding setting is absent.
const (
	// DefaultEndpoint is the public AWS S3 endpoint.
	DefaultEndpoint = "s3.amazonaws.com"
	// DefaultRegion is the signing region.
	DefaultRegion = "us-east-1"
	// DefaultUseSSL selects HTTPS.
	DefaultUseSSL = true
	// DefaultConnectTimeout bounds TCP connection setup. It is the value of
	// OptionConnectTimeout unless an override replaces it.
	DefaultConnectTimeout = 30 * time.Second
)

// SettingsKeys lists every key the resolver reads, e.g. for binding
// environment variables or loading a settings snapshot.
func SettingsKeys() []string {
	return []string{
		KeyAccessKey,
		KeySecretKey,
		KeyUseEnvironmentIAM,
		KeyEndpoint,
		KeyRegion,
		KeyUseSSL,
		KeyMetadataEndpoint,
	}
}

// CredentialMode selects where the client obtains its signing credentials.
type CredentialMode int

const (
	// ModeExplicit signs with an access key and secret supplied up front.
	ModeExplicit CredentialMode = iota
	// ModeDelegated resolves credentials from the execution environment's
	// identity service on first use.
	ModeDelegated
)

func (m CredentialMode) String() string {
	switch m {
	case ModeExplicit:
		return "explicit"
	case ModeDelegated:
		return "delegated"
	default:
		return "unknown"
	}
}

// Credentials is the resolved credential strategy. AccessKeyID and
// SecretAccessKey are only meaningful in ModeExplicit and may be empty.
type Credentials struct {
	Mode            CredentialMode
	AccessKeyID     string
	SecretAccessKey string
}

// StaticCredentials is an explicit key pair supplied through Overrides.
type StaticCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// Connection describes where the storage service lives.
type Connection struct {
	Endpoint string // host[:port], without scheme
	Region   string
	UseSSL   bool

	// MetadataEndpoint is the identity service consulted in ModeDelegated.
	// Empty selects the SDK default.
	MetadataEndpoint string
}

// ClientConfiguration is the fully resolved input to client construction.
type ClientConfiguration struct {
	Credentials Credentials
	Connection  Connection
	Transport   TransportOptions
}

// Clone returns a deep copy, so the transport map can be handed to a client
// without sharing it with the caller.
func (c ClientConfiguration) Clone() ClientConfiguration {
	c.Transport = c.Transport.Clone()
	return c
}

// ConnectionOverrides replaces individual connection fields. Empty strings and
// nil pointers leave the resolved value alone.
type ConnectionOverrides struct {
	Endpoint         string
	Region           string
	UseSSL           *bool
	MetadataEndpoint string
}

// Overrides is the caller-supplied partial configuration applied on top of
// host settings. Every field is optional.
type Overrides struct {
	// Credentials, when set, are used verbatim and win over any setting,
	// including the delegated identity flag.
	Credentials *StaticCredentials

	Connection ConnectionOverrides

	// Transport is merged key by key over the defaults.
	Transport TransportOptions
}
