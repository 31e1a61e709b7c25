package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapGet(t *testing.T) {
	m := Map{"s3.access_key": "placeholder", "s3.use_environment_iam": false}

	v, ok := m.Get("s3.access_key")
	assert.True(t, ok)
	assert.Equal(t, "placeholder", v)

	v, ok = m.Get("s3.use_environment_iam")
	assert.True(t, ok, "a false value is still present")
	assert.Equal(t, false, v)

	_, ok = m.Get("s3.secret_key")
	assert.False(t, ok)

	var empty Map
	_, ok = empty.Get("anything")
	assert.False(t, ok)
}

func TestChainFirstHitWins(t *testing.T) {
	chain := Chain{
		nil,
		Map{"s3.region": "eu-central-1"},
		Map{"s3.region": "us-east-1", "s3.endpoint": "minio:9000"},
	}

	v, ok := chain.Get("s3.region")
	assert.True(t, ok)
	assert.Equal(t, "eu-central-1", v)

	v, ok = chain.Get("s3.endpoint")
	assert.True(t, ok)
	assert.Equal(t, "minio:9000", v)

	_, ok = chain.Get("s3.access_key")
	assert.False(t, ok)
}
