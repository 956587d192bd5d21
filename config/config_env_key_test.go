package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{
			"access":  "x",
			"refresh": "y",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	assert.Equal(t, "secretKey.access", canonicalizeEnvKey("SECRETKEY_ACCESS", existing))
	assert.Equal(t, "postgres.sslMode", canonicalizeEnvKey("POSTGRES_SSLMODE", existing))
}

func TestCanonicalizeEnvKey_UnknownSegmentsFallBackToLowercase(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{"debug": false},
	}

	assert.Equal(t, "env.debug", canonicalizeEnvKey("ENV_DEBUG", existing))
	assert.Equal(t, "unknown.key", canonicalizeEnvKey("UNKNOWN_KEY", existing))
}

func TestNormalizeToken_StripsSeparators(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "sslmode", normalizeToken("SSL-MODE"))
}
