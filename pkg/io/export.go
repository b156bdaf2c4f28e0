package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/frame"
)

// WriteJSON validates the template and encodes it as indented JSON.
// The output can be re-imported with [ReadJSON] without loss.
func WriteJSON(t *frame.Template, w io.Writer) error {
	if err := t.Validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode template")
	}
	return nil
}

// ExportJSON writes a template to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(t *frame.Template, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(t, f)
}
