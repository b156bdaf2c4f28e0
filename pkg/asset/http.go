package asset

import (
	"bytes"
	"context"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"github.com/framery/framery/pkg/cache"
	"github.com/framery/framery/pkg/errors"
)

const httpTimeout = 15 * time.Second

// maxAssetBytes caps a single remote asset to avoid unbounded reads.
const maxAssetBytes = 32 << 20

// HTTPLoader fetches assets over HTTP with caching and retry. Fetched
// bytes are stored in the cache keyed by ref, so the same URL referenced
// by several frames is downloaded once.
type HTTPLoader struct {
	http  *http.Client
	cache cache.Cache
	keyer cache.Keyer
}

// NewHTTPLoader creates a loader using the given cache. Pass a NullCache
// to disable caching. A nil keyer falls back to the default keyer.
func NewHTTPLoader(c cache.Cache, keyer cache.Keyer) *HTTPLoader {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &HTTPLoader{
		http:  &http.Client{Timeout: httpTimeout},
		cache: c,
		keyer: keyer,
	}
}

// Load fetches and decodes the image at ref, consulting the cache first.
func (l *HTTPLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	data, err := l.fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetDecode, err, "cannot decode asset: %s", ref)
	}
	return img, nil
}

func (l *HTTPLoader) fetch(ctx context.Context, ref string) ([]byte, error) {
	key := l.keyer.AssetKey(ref)
	if data, ok, _ := l.cache.Get(ctx, key); ok {
		return data, nil
	}

	var data []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		var ferr error
		data, ferr = l.doRequest(ctx, ref)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	_ = l.cache.Set(ctx, key, data, cache.DefaultTTL)
	return data, nil
}

func (l *HTTPLoader) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad asset URL: %s", url)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, cache.Retryable(errors.Wrap(errors.ErrCodeAssetNetwork, err, "fetch failed: %s", url))
	}
	defer resp.Body.Close()

	if err := checkStatus(url, resp.StatusCode); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return nil, cache.Retryable(errors.Wrap(errors.ErrCodeAssetNetwork, err, "read failed: %s", url))
	}
	return data, nil
}

func checkStatus(url string, code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeAssetNotFound, "asset not found: %s", url)
	case code >= 500:
		return cache.Retryable(errors.New(errors.ErrCodeAssetNetwork, "status %d fetching %s", code, url))
	default:
		return errors.New(errors.ErrCodeAssetNetwork, "status %d fetching %s", code, url)
	}
}
