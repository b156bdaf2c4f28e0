package cache

// ScopedKeyer wraps a Keyer with a prefix so that independent templates
// or service tenants get separate cache namespaces.
//
// Example usage:
//
//	// Per-template keys, so purging one template's artifacts is cheap
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "tpl:greeting-card:")
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

// AssetKey generates a prefixed key for fetched asset bytes.
func (k *ScopedKeyer) AssetKey(ref string) string {
	return k.prefix + k.inner.AssetKey(ref)
}

// ExportKey generates a prefixed key for a rendered export artifact.
func (k *ScopedKeyer) ExportKey(templateHash string, opts ExportKeyOpts) string {
	return k.prefix + k.inner.ExportKey(templateHash, opts)
}
