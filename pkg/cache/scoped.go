package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Server deployments use this to give different API clients separate cache
// namespaces while sharing one backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PuzzleKey generates a prefixed key for a puzzle document.
func (k *ScopedKeyer) PuzzleKey(opts PuzzleKeyOpts) string {
	return k.prefix + k.inner.PuzzleKey(opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(puzzleHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(puzzleHash, opts)
}
