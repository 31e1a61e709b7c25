package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Viper adapts a *viper.Viper to Source. Keys use viper's dotted notation,
// e.g. "s3.access_key", which maps to the S3_ACCESS_KEY environment variable
// when the instance was created by LoadViper.
type Viper struct {
	v *viper.Viper
}

// NewViper wraps v.
func NewViper(v *viper.Viper) *Viper {
	return &Viper{v: v}
}

// Get implements Source. A key is present when viper reports it as set from
// any layer (flag, env, config file, key/value store or default).
func (s *Viper) Get(key string) (any, bool) {
	if s == nil || s.v == nil || !s.v.IsSet(key) {
		return nil, false
	}
	return s.v.Get(key), true
}

// LoadViper builds a viper instance for host settings.
//
// A ".env" file in dir is loaded into the process environment first (missing
// files are ignored). When configFile is not empty it is read as the base
// layer; environment variables override it, with dots in keys replaced by
// underscores. keys are bound explicitly so that AutomaticEnv can see them
// even without a config file.
func LoadViper(dir, configFile string, keys ...string) (*viper.Viper, error) {
	envPath := filepath.Join(dir, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	return v, nil
}

