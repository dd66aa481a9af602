package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestResolveOrder(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvVar, "")

	assert.Empty(t, Resolve(""), "no key anywhere")

	require.NoError(t, Save("ring-key-1234567890"))
	assert.Equal(t, "ring-key-1234567890", Resolve(""), "keychain is the last resort")

	t.Setenv(EnvVar, "env-key-1234567890")
	assert.Equal(t, "env-key-1234567890", Resolve(""), "environment beats keychain")

	assert.Equal(t, "explicit-key", Resolve("explicit-key"), "explicit value beats everything")
}

func TestSaveOverwrites(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvVar, "")

	require.NoError(t, Save("first-key-1234567890"))
	require.NoError(t, Save("second-key-1234567890"))
	assert.Equal(t, "second-key-1234567890", Resolve(""))
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, Delete())
}

func TestDeleteRemovesKey(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvVar, "")

	require.NoError(t, Save("doomed-key-1234567890"))
	require.NoError(t, Delete())
	assert.Empty(t, Resolve(""))
}
