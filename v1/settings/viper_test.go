package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViperGet(t *testing.T) {
	v := viper.New()
	v.Set("s3.access_key", "from-viper")
	src := NewViper(v)

	got, ok := src.Get("s3.access_key")
	assert.True(t, ok)
	assert.Equal(t, "from-viper", got)

	_, ok = src.Get("s3.secret_key")
	assert.False(t, ok)

	var nilSrc *Viper
	_, ok = nilSrc.Get("s3.access_key")
	assert.False(t, ok)
}

func TestLoadViperLayers(t *testing.T) {
	dir := t.TempDir()

	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("s3:\n  access_key: file-key\n  region: eu-west-1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("S3_SECRET_KEY=dotenv-secret\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("S3_SECRET_KEY") })
	t.Setenv("S3_ACCESS_KEY", "env-key")

	v, err := LoadViper(dir, configFile, "s3.access_key", "s3.secret_key", "s3.use_environment_iam")
	require.NoError(t, err)
	src := NewViper(v)

	got, ok := src.Get("s3.access_key")
	assert.True(t, ok)
	assert.Equal(t, "env-key", got, "environment overrides the config file")

	got, ok = src.Get("s3.secret_key")
	assert.True(t, ok)
	assert.Equal(t, "dotenv-secret", got)

	got, ok = src.Get("s3.region")
	assert.True(t, ok)
	assert.Equal(t, "eu-west-1", got)

	_, ok = src.Get("s3.use_environment_iam")
	assert.False(t, ok)
}

func TestLoadViperWithoutFiles(t *testing.T) {
	v, err := LoadViper(t.TempDir(), "")
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestLoadViperMissingConfigFile(t *testing.T) {
	_, err := LoadViper(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
