package domain

import "strings"

// NewCacheKey joins the lockfile hash, fingerprint hash and directory identity
// into the composite key "{lockfile}-{fingerprint}-{dir}".
// The directory part is kept literal so keys stay legible on disk.
func NewCacheKey(lockfile, fingerprint Hash, dir DirKey) Hash {
	return Hash(strings.Join([]string{lockfile.String(), fingerprint.String(), dir.String()}, "-"))
}
