// Package server exposes the export pipeline over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/framery/framery/pkg/cache"
	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/export"
	frameio "github.com/framery/framery/pkg/io"
	"github.com/framery/framery/pkg/render"
	"github.com/framery/framery/pkg/watermark"
)

// maxBodyBytes bounds the template JSON a client may post.
const maxBodyBytes = 4 << 20

// Server handles export requests.
type Server struct {
	exporter *export.Exporter
	store    cache.Cache
	keys     cache.Keyer
	logger   *log.Logger
}

// New creates a server around the exporter. Finished artifacts are kept
// in store keyed by template body and options, so identical requests
// skip the render pipeline; a nil store disables that. A nil logger
// falls back to the default logger.
func New(exporter *export.Exporter, store cache.Cache, logger *log.Logger) *Server {
	if store == nil {
		store = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		exporter: exporter,
		store:    store,
		// Artifacts share the store with fetched asset bytes; the scope
		// keeps the two namespaces apart.
		keys:   cache.NewScopedKeyer(nil, "serve:"),
		logger: logger,
	}
}

// Handler builds the HTTP routing table.
//
//	POST /v1/export   template JSON body -> encoded PNG or PDF
//	GET  /healthz     liveness probe
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/export", s.handleExport)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleExport decodes the template from the request body and streams
// the encoded artifact back. Options come from query parameters:
// format (png|pdf), scale, tier, autocrop, rotation (upright|rotated).
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read request body"))
		return
	}

	tpl, err := frameio.ReadJSON(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	opts, err := exportOptions(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	key := s.keys.ExportKey(cache.Hash(body), keyOpts(opts))
	if data, ok, err := s.store.Get(r.Context(), key); err == nil && ok {
		s.writeArtifact(w, opts.Format, data)
		return
	}

	data, err := s.exporter.Export(r.Context(), tpl, opts)
	if err != nil {
		status := http.StatusInternalServerError
		switch errors.GetCode(err) {
		case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidTemplate, errors.ErrCodeInvalidGeometry:
			status = http.StatusBadRequest
		case errors.ErrCodeAssetNotFound, errors.ErrCodeFileNotFound:
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, status, err)
		return
	}

	if err := s.store.Set(r.Context(), key, data, cache.DefaultTTL); err != nil {
		s.logger.Warn("failed to cache artifact", "err", err)
	}
	s.writeArtifact(w, opts.Format, data)
}

func (s *Server) writeArtifact(w http.ResponseWriter, format export.Format, data []byte) {
	if format == export.FormatPDF {
		w.Header().Set("Content-Type", "application/pdf")
	} else {
		w.Header().Set("Content-Type", "image/png")
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

// keyOpts maps export options onto the cache key surface.
func keyOpts(opts export.Options) cache.ExportKeyOpts {
	rotation := "upright"
	if opts.RotationMode == render.RotationContentRotated {
		rotation = "rotated"
	}
	return cache.ExportKeyOpts{
		Format:   string(opts.Format),
		Scale:    opts.Scale,
		Tier:     string(opts.Tier),
		Rotation: rotation,
		Autocrop: opts.Autocrop,
	}
}

func exportOptions(r *http.Request) (export.Options, error) {
	q := r.URL.Query()
	opts := export.Options{
		Format:   export.FormatPNG,
		Tier:     watermark.TierPro,
		Autocrop: true,
	}

	if v := q.Get("format"); v != "" {
		opts.Format = export.Format(v)
		if !opts.Format.Valid() {
			return opts, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", v)
		}
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "bad scale %q", v)
		}
		opts.Scale = scale
	}
	if v := q.Get("tier"); v != "" {
		opts.Tier = watermark.Tier(v)
	}
	if v := q.Get("autocrop"); v != "" {
		autocrop, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "bad autocrop %q", v)
		}
		opts.Autocrop = autocrop
	}
	switch q.Get("rotation") {
	case "", "upright":
		opts.RotationMode = render.RotationContentUpright
	case "rotated":
		opts.RotationMode = render.RotationContentRotated
	default:
		return opts, errors.New(errors.ErrCodeInvalidInput, "bad rotation %q", q.Get("rotation"))
	}

	return opts, nil
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Error("request failed", "status", status, "err", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":  string(errors.GetCode(err)),
		"error": errors.UserMessage(err),
	})
}
