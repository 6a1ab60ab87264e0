package schemas

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-schedule/internal/article"
	"github.com/jonathan/review-schedule/internal/types"
)

func TestValidateFile_SchemaFile(t *testing.T) {
	schema := filepath.Join("testdata", "simple.schema.json")

	assert.NoError(t, ValidateFile(schema, filepath.Join("testdata", "valid.json")))

	for _, name := range []string{"missing_field.json", "type_mismatch.json"} {
		t.Run(name, func(t *testing.T) {
			err := ValidateFile(schema, filepath.Join("testdata", name))
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, []string{"count"}, validationErr.Fields())
			assert.Contains(t, validationErr.Error(), "validation failed:")
		})
	}
}

func TestValidateFile_EmbeddedSchema(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"make": "Toyota", "model": "Corolla", "year": 2024}`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"model": "Corolla"}`), 0o644))

	assert.True(t, IsEmbedded(VehicleProfile))
	assert.NoError(t, ValidateFile(VehicleProfile, good))

	err := ValidateFile(VehicleProfile, bad)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"make"}, validationErr.Fields())
}

func TestValidateFile_Missing(t *testing.T) {
	err := ValidateFile(filepath.Join("testdata", "nonexistent.schema.json"), filepath.Join("testdata", "valid.json"))
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "schema file not found")

	err = ValidateFile(filepath.Join("testdata", "simple.schema.json"), filepath.Join("testdata", "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateFile_BrokenSchemaFile(t *testing.T) {
	schema := filepath.Join(t.TempDir(), "broken.schema.json")
	require.NoError(t, os.WriteFile(schema, []byte(`{"type": 12}`), 0o644))

	err := ValidateFile(schema, filepath.Join("testdata", "valid.json"))
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "invalid schema", loadErr.Message)
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("nope", []byte(`{}`))
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "unknown schema", loadErr.Message)
}

func TestEmbeddedSchemas_AreValidJSON(t *testing.T) {
	for _, name := range []string{ArticleDocument, VehicleProfile} {
		t.Run(name, func(t *testing.T) {
			data, err := schemaFiles.ReadFile(name + ".schema.json")
			require.NoError(t, err)

			var v map[string]any
			require.NoError(t, json.Unmarshal(data, &v))

			_, err = embeddedSchema(name)
			require.NoError(t, err)
		})
	}
}

func TestValidateDocument_GeneratedArticles(t *testing.T) {
	a := article.NewAssembler()
	ctx := context.Background()

	for _, vt := range types.AllVehicleTypes {
		t.Run(string(vt), func(t *testing.T) {
			r, err := a.Create(ctx, types.VehicleProfile{Make: "Honda", Model: "Civic", Year: 2023, VehicleType: vt})
			require.NoError(t, err)

			assert.NoError(t, ValidateValue(ArticleDocument, r.StorageDocument()))
		})
	}
}

func TestValidateDocument_PublishedArticle(t *testing.T) {
	r, err := article.NewAssembler().Create(context.Background(), types.VehicleProfile{Make: "Fiat", Model: "Uno"})
	require.NoError(t, err)
	r.Publish(context.Background())

	assert.NoError(t, ValidateValue(ArticleDocument, r.StorageDocument()))
}

func TestValidateDocument_IncompleteArticle(t *testing.T) {
	r := article.NewAssembler().Assemble(context.Background(),
		types.VehicleProfile{Make: "Fiat", Model: "Uno", Year: 2010},
		types.ContentSections{Introduction: "curta"})

	assert.NoError(t, ValidateValue(ArticleDocument, r.StorageDocument()))
}

func TestValidateDocument_BrokenArticle(t *testing.T) {
	r, err := article.NewAssembler().Create(context.Background(), types.VehicleProfile{Make: "Fiat", Model: "Uno", Year: 2010})
	require.NoError(t, err)

	doc := r.StorageDocument()
	doc.Status = "archived"
	doc.ContentHash = "not-a-hash"
	doc.VehicleInfo.Make = " "

	err = ValidateValue(ArticleDocument, doc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"status", "content_hash", "vehicle_info.make"}, validationErr.Fields())
}

func TestValidateDocument_VehicleProfile(t *testing.T) {
	tests := []struct {
		name   string
		json   string
		fields []string
	}{
		{"valid", `{"make": "Toyota", "model": "Corolla", "year": 2024, "vehicle_type": "car"}`, nil},
		{"empty type is allowed", `{"make": "Toyota", "model": "Corolla", "vehicle_type": ""}`, nil},
		{"missing make", `{"model": "Corolla"}`, []string{"make"}},
		{"blank model", `{"make": "Toyota", "model": "  "}`, []string{"model"}},
		{"unknown type", `{"make": "Toyota", "model": "Corolla", "vehicle_type": "truck"}`, []string{"vehicle_type"}},
		{"string year", `{"make": "Toyota", "model": "Corolla", "year": "2024"}`, []string{"year"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(VehicleProfile, []byte(tt.json))
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.fields, validationErr.Fields())
		})
	}
}
