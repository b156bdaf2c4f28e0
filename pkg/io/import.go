package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/frame"
)

// ReadJSON decodes a template from r and validates it.
//
// ReadJSON returns an error if the JSON is malformed, a frame has a
// duplicate or empty id, or any frame violates geometry or shape
// constraints. The returned template is independent of r and can be
// modified freely. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*frame.Template, error) {
	var t frame.Template
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "decode template")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// ImportJSON reads a template file at path.
//
// It opens the file, decodes it using [ReadJSON], and closes the file.
// Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*frame.Template, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
