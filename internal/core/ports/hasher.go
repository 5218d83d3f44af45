package ports

// Hasher digests the contents of a set of files.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeSetHash returns a digest of paths and their contents.
	// Missing files contribute a marker instead of failing.
	ComputeSetHash(paths []string) (string, error)
}
