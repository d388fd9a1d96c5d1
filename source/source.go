// Package source builds treema trees from serialized input. Decoded documents
// consist of the engine's built-in containers ([]any for arrays,
// map[string]any for objects) with json.Number, string, bool and nil leaves;
// the engine itself never depends on this package.
package source

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/i18n"
)

// JSONReader decodes a single JSON document from r into a tree. Numbers are
// kept as json.Number to avoid precision loss.
func JSONReader(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, treema.Issues{treema.Issue{
			Path:    "/",
			Code:    treema.CodeParseError,
			Message: i18n.T(treema.CodeParseError, nil),
			Cause:   err,
			Offset:  dec.InputOffset(),
		}}
	}
	return v, nil
}

// JSONBytes decodes a JSON document from a byte slice into a tree.
func JSONBytes(b []byte) (any, error) { return JSONReader(bytes.NewReader(b)) }
