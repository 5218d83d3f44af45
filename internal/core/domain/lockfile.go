package domain

// Lockfile is a detected lockfile and the dialect that owns it.
type Lockfile struct {
	Kind PackageManagerKind
	// Path is absolute.
	Path string
}
