package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/grammar-scorer/internal/schemas"
)

var schemaFiles = []string{
	"score_result.schema.json",
	"batch_result.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestScoreResultSchema_AcceptsValidDocument(t *testing.T) {
	schemaData, err := os.ReadFile("score_result.schema.json")
	require.NoError(t, err)

	doc := `{
		"score": 81.25,
		"grade": "B",
		"grade_label": "Good",
		"component_scores": {"grammar": 90, "structure": 80, "vocabulary": 70, "readability": 75},
		"error_count": 1,
		"word_count": 42
	}`

	assert.NoError(t, schemas.ValidateJSONString(string(schemaData), doc))
}

func TestScoreResultSchema_RejectsOutOfRangeScore(t *testing.T) {
	schemaData, err := os.ReadFile("score_result.schema.json")
	require.NoError(t, err)

	doc := `{
		"score": 120,
		"grade": "B",
		"grade_label": "Good",
		"component_scores": {},
		"error_count": 0,
		"word_count": 10
	}`

	err = schemas.ValidateJSONString(string(schemaData), doc)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestScoreResultSchema_RejectsUnknownGrade(t *testing.T) {
	schemaData, err := os.ReadFile("score_result.schema.json")
	require.NoError(t, err)

	doc := `{
		"score": 50,
		"grade": "E",
		"grade_label": "Unknown",
		"component_scores": {},
		"error_count": 0,
		"word_count": 10
	}`

	assert.Error(t, schemas.ValidateJSONString(string(schemaData), doc))
}
