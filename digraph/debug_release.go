//go:build !ergmdebug

package digraph

// debugCheck is a no-op outside -tags ergmdebug builds.
func debugCheck(*Graph) {}
