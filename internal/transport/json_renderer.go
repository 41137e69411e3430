// Package transport renders decoded transactions for output.
package transport

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ErrSerialization reports a record that could not be rendered.
var ErrSerialization = errors.New("serialization error")

const defaultIndentWidth = 2

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONRenderer renders records as indented JSON.
type JSONRenderer struct {
	indent string
}

// NewJSONRenderer returns a renderer indenting each level by width spaces;
// a width below one selects the default of two.
func NewJSONRenderer(width int) *JSONRenderer {
	if width < 1 {
		width = defaultIndentWidth
	}
	return &JSONRenderer{indent: strings.Repeat(" ", width)}
}

// Render returns v as pretty-printed JSON followed by a newline.
func (r *JSONRenderer) Render(v any) ([]byte, error) {
	out, err := jsonAPI.MarshalIndent(v, "", r.indent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return append(out, '\n'), nil
}
