package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipeSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"kind": {"type": "string", "enum": ["craft", "trade"]},
			"name": {"type": "string", "minLength": 1},
			"ingredients": {
				"type": "array",
				"items": {"type": "string", "minLength": 1},
				"minItems": 1
			},
			"result": {"type": "string", "minLength": 1}
		},
		"required": ["id", "kind", "name", "ingredients", "result"],
		"additionalProperties": false
	}
}`

func writeSchema(t *testing.T) string {
	t.Helper()
	schemaPath := filepath.Join(t.TempDir(), "recipes.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(recipeSchema), 0644))
	return schemaPath
}

func TestValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t)

	tests := []struct {
		name      string
		data      string
		wantError bool
	}{
		{
			name: "valid recipe list",
			data: `[{"id": "trade_plasma", "kind": "trade", "name": "Three CRTs for a Plasma",
				"ingredients": ["CRT Monitor", "CRT Monitor", "CRT Monitor"], "result": "Plasma Screen"}]`,
		},
		{
			name: "empty list",
			data: `[]`,
		},
		{
			name:      "unknown kind",
			data:      `[{"id": "x", "kind": "fuse", "name": "X", "ingredients": ["A"], "result": "B"}]`,
			wantError: true,
		},
		{
			name:      "missing result",
			data:      `[{"id": "x", "kind": "craft", "name": "X", "ingredients": ["A"]}]`,
			wantError: true,
		},
		{
			name:      "empty ingredient list",
			data:      `[{"id": "x", "kind": "craft", "name": "X", "ingredients": [], "result": "B"}]`,
			wantError: true,
		},
		{
			name:      "not valid JSON",
			data:      `[{"id": }]`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t)

	dataPath := filepath.Join(t.TempDir(), "recipes.json")
	data := `[{"id": "jewel", "kind": "craft", "name": "Jewel Encrusting",
		"ingredients": ["iPad Pro M4", "24k Gold iPad"], "result": "Diamond Encrusted Tab"}]`
	require.NoError(t, os.WriteFile(dataPath, []byte(data), 0644))

	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))
}

func TestValidateFileMissingInputs(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t)

	err := v.ValidateFile("nonexistent.json", schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")

	dataPath := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`[]`), 0644))

	err = v.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestCompiledSchemasAreCached(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeSchema(t)

	require.NoError(t, v.ValidateBytes([]byte(`[]`), schemaPath))
	require.NoError(t, v.ValidateBytes([]byte(`[]`), schemaPath))

	assert.Len(t, v.schemas, 1)
}
