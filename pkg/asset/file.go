package asset

import (
	"context"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/framery/framery/pkg/errors"
)

// FileLoader loads assets from the local filesystem. Relative refs are
// resolved against Base; absolute refs are rejected upstream by ref
// validation.
type FileLoader struct {
	base string
}

// NewFileLoader creates a loader rooted at base. An empty base resolves
// refs against the current working directory.
func NewFileLoader(base string) *FileLoader {
	return &FileLoader{base: base}
}

// Load reads and decodes the image at ref.
func (l *FileLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	path := ref
	if l.base != "" {
		path = filepath.Join(l.base, filepath.FromSlash(ref))
	}

	img, err := imaging.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeAssetNotFound, err, "asset not found: %s", ref)
		}
		return nil, errors.Wrap(errors.ErrCodeAssetDecode, err, "cannot decode asset: %s", ref)
	}
	return img, nil
}
