package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("SOME_CONFIG_KEY", "set-value")
	assert.Equal(t, "set-value", getEnv("SOME_CONFIG_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SOME_MISSING_KEY", "fallback"))
}
