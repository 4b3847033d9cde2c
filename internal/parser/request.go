package parser

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"csgen/internal/model"
)

// FormatFromPath guesses the request format from the file extension,
// defaulting to YAML.
func FormatFromPath(path string) model.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return model.FormatJSON
	case ".toml":
		return model.FormatTOML
	default:
		return model.FormatYAML
	}
}

// ParseRequestFile reads and decodes a request file.
func ParseRequestFile(path string) (*model.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading request file")
	}
	req, err := ParseRequest(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return req, nil
}

// ParseRequest decodes a request. Unknown keys are rejected so that typos in
// hand-written requests surface instead of silently producing less output.
func ParseRequest(data []byte, format model.Format) (*model.Request, error) {
	var req model.Request

	switch format {
	case model.FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, errors.Wrap(err, "decoding JSON request")
		}
	case model.FormatTOML:
		md, err := toml.Decode(string(data), &req)
		if err != nil {
			return nil, errors.Wrap(err, "decoding TOML request")
		}
		for _, key := range md.Undecoded() {
			// expansion items are free-form and decode into interface values
			if !inItems(key) {
				return nil, errors.Newf("decoding TOML request: unknown key %q", key.String())
			}
		}
	case model.FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "decoding YAML request")
		}
	default:
		return nil, errors.Newf("unsupported request format %q", format)
	}

	return &req, nil
}

// inItems reports whether key lies inside classes.repeat.items.
func inItems(key toml.Key) bool {
	return len(key) >= 3 && key[0] == "classes" && key[1] == "repeat" && key[2] == "items"
}
