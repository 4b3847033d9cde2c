package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csgen/internal/model"
)

const yamlRequest = `
classes:
  - name: QuickFab
    namespace: Game.Generated
    kind: sealed
    usings: [UnityEditor]
    fields:
      - {name: count, type: int, default: "0"}
    methods:
      - name: Reset
        static: true
        params:
          - {type: int, name: to, default: "0"}
        attributes:
          - {name: MenuItem, args: '"Tools/Reset"'}
        body: count = to;
    repeat:
      - unique: true
        items:
          - {name: Cube}
          - {name: Sphere}
        method:
          name: Spawn
          expression: true
          body: Spawn({{.Index}});
enums:
  - name: Tags
    namespace: Game.Generated
    members: [Untagged, Player]
`

const jsonRequest = `{
  "classes": [{
    "name": "QuickFab",
    "namespace": "Game.Generated",
    "kind": "sealed",
    "usings": ["UnityEditor"],
    "fields": [{"name": "count", "type": "int", "default": "0"}],
    "methods": [{
      "name": "Reset",
      "static": true,
      "params": [{"type": "int", "name": "to", "default": "0"}],
      "attributes": [{"name": "MenuItem", "args": "\"Tools/Reset\""}],
      "body": "count = to;"
    }],
    "repeat": [{
      "unique": true,
      "items": [{"name": "Cube"}, {"name": "Sphere"}],
      "method": {"name": "Spawn", "expression": true, "body": "Spawn({{.Index}});"}
    }]
  }],
  "enums": [{"name": "Tags", "namespace": "Game.Generated", "members": ["Untagged", "Player"]}]
}`

const tomlRequest = `
[[classes]]
name = "QuickFab"
namespace = "Game.Generated"
kind = "sealed"
usings = ["UnityEditor"]

  [[classes.fields]]
  name = "count"
  type = "int"
  default = "0"

  [[classes.methods]]
  name = "Reset"
  static = true
  body = "count = to;"
  params = [{type = "int", name = "to", default = "0"}]
  attributes = [{name = "MenuItem", args = '"Tools/Reset"'}]

  [[classes.repeat]]
  unique = true
  items = [{name = "Cube"}, {name = "Sphere"}]
  method = {name = "Spawn", expression = true, body = "Spawn({{.Index}});"}

[[enums]]
name = "Tags"
namespace = "Game.Generated"
members = ["Untagged", "Player"]
`

func TestParseRequest_Formats(t *testing.T) {
	tests := []struct {
		format model.Format
		data   string
	}{
		{model.FormatYAML, yamlRequest},
		{model.FormatJSON, jsonRequest},
		{model.FormatTOML, tomlRequest},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			req, err := ParseRequest([]byte(tt.data), tt.format)
			require.NoError(t, err)

			require.Len(t, req.Classes, 1)
			c := req.Classes[0]
			assert.Equal(t, "QuickFab", c.Name)
			assert.Equal(t, "sealed", c.Kind)
			assert.Equal(t, []string{"UnityEditor"}, c.Usings)
			assert.Equal(t, []model.Field{{Name: "count", Type: "int", Default: "0"}}, c.Fields)

			require.Len(t, c.Methods, 1)
			m := c.Methods[0]
			assert.True(t, m.Static)
			assert.Equal(t, []model.Param{{Type: "int", Name: "to", Default: "0"}}, m.Params)
			assert.Equal(t, []model.Attribute{{Name: "MenuItem", Args: `"Tools/Reset"`}}, m.Attributes)

			require.Len(t, c.Repeat, 1)
			assert.True(t, c.Repeat[0].Unique)
			assert.Len(t, c.Repeat[0].Items, 2)
			assert.Equal(t, "Spawn({{.Index}});", c.Repeat[0].Method.Body)
			assert.True(t, c.Repeat[0].Method.Expression)

			require.Len(t, req.Enums, 1)
			assert.Equal(t, []string{"Untagged", "Player"}, req.Enums[0].Members)
		})
	}
}

func TestParseRequest_UnknownKeys(t *testing.T) {
	_, err := ParseRequest([]byte("classes:\n  - name: A\n    nmespace: X\n"), model.FormatYAML)
	assert.Error(t, err)

	_, err = ParseRequest([]byte(`{"classes":[{"name":"A","bogus":1}]}`), model.FormatJSON)
	assert.Error(t, err)

	_, err = ParseRequest([]byte("[[classes]]\nname = \"A\"\nbogus = 1\n"), model.FormatTOML)
	assert.Error(t, err)

	_, err = ParseRequest([]byte("[[classes]]\nname = \"A\"\nitems = [\"x\"]\n"), model.FormatTOML)
	assert.Error(t, err)

	_, err = ParseRequest([]byte("[[enums]]\nname = \"E\"\n[enums.items]\nx = 1\n"), model.FormatTOML)
	assert.Error(t, err)

	_, err = ParseRequest([]byte("{}"), model.Format("xml"))
	assert.Error(t, err)
}

func TestParseRequest_EmptyYAML(t *testing.T) {
	req, err := ParseRequest(nil, model.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, req.Classes)
}

func TestParseRequestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonRequest), 0o644))

	req, err := ParseRequestFile(path)
	require.NoError(t, err)
	assert.Len(t, req.Classes, 1)

	_, err = ParseRequestFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, model.FormatJSON, FormatFromPath("a/b.JSON"))
	assert.Equal(t, model.FormatTOML, FormatFromPath("x.toml"))
	assert.Equal(t, model.FormatYAML, FormatFromPath("x.yml"))
	assert.Equal(t, model.FormatYAML, FormatFromPath("request"))
}
