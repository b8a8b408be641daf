package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// Decode parses a product document. name identifies the document in errors
// and picks the format: .yaml and .yml names are read as YAML, anything else
// that starts with an object is read as JSON.
func Decode(name string, data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, showcaseerrors.NewParseError(name, 0, fmt.Errorf("empty document"))
	}

	if isYAMLName(name) || trimmed[0] != '{' {
		return decodeYAML(name, data)
	}
	return decodeJSON(name, data)
}

func decodeJSON(name string, data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, showcaseerrors.NewParseError(name, jsonErrorLine(data, err), err)
	}
	return &doc, nil
}

func decodeYAML(name string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, showcaseerrors.NewParseError(name, showcaseerrors.ExtractLine(err), err)
	}
	return &doc, nil
}

func isYAMLName(name string) bool {
	// URLs may carry a query string after the file name.
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// jsonErrorLine maps the byte offset carried by encoding/json errors to a
// 1-based line number.
func jsonErrorLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset <= 0 || offset > int64(len(data)) {
		return 0
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
