// Package shared provides common utility functions used across multiple
// packages in the corepack codebase.
package shared

import (
	"fmt"
	"strings"
)

// EnvKeyForManager returns the environment key a manager's version
// override is read from, e.g. "COREPACK_DEV_ENGINES_YARN" for yarn.
func EnvKeyForManager(name string) string {
	return fmt.Sprintf("COREPACK_DEV_ENGINES_%s", strings.ToUpper(name))
}

// NameFromEnvKey inverts EnvKeyForManager. The boolean is false when
// key is not an override key at all.
func NameFromEnvKey(key string) (string, bool) {
	const prefix = "COREPACK_DEV_ENGINES_"
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return "", false
	}
	return strings.ToLower(key[len(prefix):]), true
}
