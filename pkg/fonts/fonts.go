// Package fonts resolves font families to renderable faces.
//
// Family names are looked up in the system font directories; anything
// that cannot be found falls back to an embedded default face so text
// frames always render. Parsed fonts and sized faces are cached, since
// a template tends to reuse one or two families at a handful of sizes.
package fonts

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/framery/framery/pkg/errors"
)

// DefaultFamily is the family name that always resolves to the embedded
// fallback font.
const DefaultFamily = "default"

const faceDPI = 72

// Resolver turns (family, size) pairs into font faces.
type Resolver struct {
	mu    sync.Mutex
	fonts map[string]*truetype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	family string
	size   float64
}

// NewResolver creates a resolver with empty caches.
func NewResolver() *Resolver {
	return &Resolver{
		fonts: make(map[string]*truetype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// Face returns a face for the given family at the given point size.
// Unknown families resolve to the embedded default rather than failing,
// so a template authored on another machine still renders.
func (r *Resolver) Face(family string, size float64) (font.Face, error) {
	if family == "" {
		family = DefaultFamily
	}
	if err := errors.ValidateFontFamily(family); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %g", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := faceKey{family: normalize(family), size: size}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}

	fnt, err := r.fontLocked(key.family)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(fnt, &truetype.Options{Size: size, DPI: faceDPI})
	r.faces[key] = face
	return face, nil
}

// fontLocked loads the parsed font for a normalized family name.
// Callers must hold r.mu.
func (r *Resolver) fontLocked(family string) (*truetype.Font, error) {
	if fnt, ok := r.fonts[family]; ok {
		return fnt, nil
	}

	data := lookup(family)
	fnt, err := truetype.Parse(data)
	if err != nil {
		// A corrupt system font file should not break rendering.
		fnt, err = truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "cannot parse fallback font")
		}
	}
	r.fonts[family] = fnt
	return fnt, nil
}

// lookup returns raw TTF bytes for a family, or the embedded fallback.
func lookup(family string) []byte {
	if family == DefaultFamily {
		return goregular.TTF
	}
	path, err := findfont.Find(fmt.Sprintf("%s.ttf", family))
	if err != nil {
		return goregular.TTF
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return goregular.TTF
	}
	return data
}

func normalize(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
