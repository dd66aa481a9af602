// Package credentials resolves and stores the AxoDen API key. Lookup
// order: explicit value, then the environment, then the OS keychain. The
// key never touches the config file.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// EnvVar is the environment variable consulted before the OS keychain.
const EnvVar = "AXODEN_API_KEY"

const (
	keyringService = "axoden"
	keyringUser    = "api_key"
)

// Resolve returns the active API key, or empty when none is configured
// anywhere. The caller decides whether absence is fatal.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if key := os.Getenv(EnvVar); key != "" {
		return key
	}
	key, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		return ""
	}
	return key
}

// Save stores the key in the OS keychain. On failure the caller should
// fall back to instructing the user to export EnvVar instead.
func Save(key string) error {
	if err := keyring.Set(keyringService, keyringUser, key); err != nil {
		return fmt.Errorf("store API key in system keychain: %w", err)
	}
	return nil
}

// Delete removes the stored key. A missing entry is not an error.
func Delete() error {
	if err := keyring.Delete(keyringService, keyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("remove API key from system keychain: %w", err)
	}
	return nil
}
