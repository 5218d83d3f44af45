package vcs

// NewGitWithLookPath creates a Git source with a custom executable lookup.
func NewGitWithLookPath(lookPath func(string) (string, error)) *Git {
	return &Git{lookPath: lookPath}
}
