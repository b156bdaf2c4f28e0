// Package asset loads the images a template references: the background
// and the per-frame content pictures. Refs are either local paths
// (resolved against a base directory) or http(s) URLs; remote fetches go
// through the byte cache so repeated renders do not refetch.
package asset

import (
	"context"
	"image"
	"strings"

	"github.com/framery/framery/pkg/errors"
)

// Loader resolves an asset ref into a decoded image.
type Loader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// Resolver dispatches refs by scheme: http(s) URLs go to the remote
// loader, everything else is treated as a local path.
type Resolver struct {
	local  Loader
	remote Loader
}

// NewResolver creates a resolver over the given loaders. Either loader
// may be nil; refs routed to a nil loader fail with an invalid-input
// error rather than a panic.
func NewResolver(local, remote Loader) *Resolver {
	return &Resolver{local: local, remote: remote}
}

// Load validates ref and routes it to the matching loader.
func (r *Resolver) Load(ctx context.Context, ref string) (image.Image, error) {
	if err := errors.ValidateAssetRef(ref); err != nil {
		return nil, err
	}
	loader := r.local
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		loader = r.remote
	}
	if loader == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no loader configured for ref: "+ref)
	}
	return loader.Load(ctx, ref)
}
