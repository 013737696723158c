package main

import (
	"testing"

	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	assert.Error(t, err)
	_, err = parseSteps([]string{"x"})
	assert.Error(t, err)
}

func TestParseVersionAndTarget(t *testing.T) {
	v, err := parseVersion("7")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	_, err = parseVersion("-1")
	assert.Error(t, err)

	target, err := parseTarget("2")
	require.NoError(t, err)
	assert.Equal(t, uint(2), target)
	_, err = parseTarget("-2")
	assert.Error(t, err)
}

func TestEnvBool(t *testing.T) {
	t.Setenv("MIGRATION_FLAG", "")
	assert.True(t, envBool("MIGRATION_FLAG", true))
	t.Setenv("MIGRATION_FLAG", "off")
	assert.False(t, envBool("MIGRATION_FLAG", true))
	t.Setenv("MIGRATION_FLAG", "YES")
	assert.True(t, envBool("MIGRATION_FLAG", false))
}

func TestRun_Preconditions(t *testing.T) {
	logger := logging.NewNop()

	assert.ErrorIs(t, run(nil, logger), errUsage)

	t.Setenv("DB_URL", "")
	assert.ErrorContains(t, run([]string{"up"}, logger), "DB_URL is required")
}

func TestNormalizeDBURL(t *testing.T) {
	got := normalizeDBURL("postgres://u:p@localhost/seriea", true)
	assert.Contains(t, got, "disable_prepared_binary_result=yes")
	assert.Equal(t, "postgres://u:p@localhost/seriea", normalizeDBURL("postgres://u:p@localhost/seriea", false))
}
