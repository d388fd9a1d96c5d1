package source

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/i18n"
)

// YAMLReader decodes a single YAML document from r into a tree. Mappings are
// normalized to map[string]any so they are containers for the engine;
// documents with non-string mapping keys are rejected.
func YAMLReader(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r)
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, treema.Issues{treema.Issue{
			Path:    "/",
			Code:    treema.CodeParseError,
			Message: i18n.T(treema.CodeParseError, nil),
			Cause:   err,
			Offset:  -1,
		}}
	}
	return normalizeYAML(v)
}

// YAMLBytes decodes a YAML document from a byte slice into a tree.
func YAMLBytes(b []byte) (any, error) { return YAMLReader(bytes.NewReader(b)) }

func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			nv, err := normalizeYAML(vv)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, treema.Issues{treema.Issue{
					Path:    "/",
					Code:    treema.CodeInvalidType,
					Message: i18n.T(treema.CodeInvalidType, nil),
					Hint:    fmt.Sprintf("mapping key %v is not a string", k),
					Offset:  -1,
				}}
			}
			nv, err := normalizeYAML(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			nv, err := normalizeYAML(vv)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}
