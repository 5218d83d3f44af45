package config

// NewLoaderWithCacheDir creates a Loader whose default cache directory is fixed.
func NewLoaderWithCacheDir(writer Writer, cacheDir string) *Loader {
	l := NewLoader(writer)
	l.cacheDir = func() (string, error) { return cacheDir, nil }
	return l
}
