package policies

import "os"

// unsafeCustomURLsVar gates URL ranges for known package managers. A
// URL range normally selects a custom manager outside the known set;
// pointing a known manager name at an arbitrary artifact is only
// allowed when the operator opted in explicitly.
const unsafeCustomURLsVar = "COREPACK_ENABLE_UNSAFE_CUSTOM_URLS"

// UnsafeCustomURLsEnabled reports whether the opt-in is active. Only
// the exact value "1" enables it.
func UnsafeCustomURLsEnabled() bool {
	return os.Getenv(unsafeCustomURLsVar) == "1"
}
