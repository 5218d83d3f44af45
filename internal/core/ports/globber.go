package ports

// Globber evaluates workspace patterns.
//
//go:generate mockgen -source=globber.go -destination=mocks/mock_globber.go -package=mocks
type Globber interface {
	// Collect evaluates patterns relative to baseDir in order and returns the
	// matched absolute paths, sorted and deduplicated.
	// When negation is true, patterns prefixed with "!" remove earlier matches.
	Collect(baseDir string, patterns []string, negation bool) ([]string, error)
}
