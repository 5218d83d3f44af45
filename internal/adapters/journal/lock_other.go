//go:build !unix

package journal

// acquire is a no-op where flock is unavailable.
func acquire(_ string, _ bool) (func(), error) {
	return func() {}, nil
}
