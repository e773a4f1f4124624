// Package osutil seams the OS calls behind config path resolution so
// their failure modes can be reproduced in tests.
package osutil

import "os"

// PathProvider supplies the user config directory lookup and the
// directory creation that resolving the config file path needs.
// Swapping the provider is the only way to make those calls fail
// deterministically.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider calls straight through to the os package.
type DefaultPathProvider struct{}

// UserConfigDir returns the root directory for user configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates the directory at path along with any missing parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}
