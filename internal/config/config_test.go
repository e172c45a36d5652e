package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalreport/domain/evaluation"
	"evalreport/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "PORT", "MAX_UPLOAD_MB", "EXPORT_SHEET", "EXPORT_FILENAME", "SCHEMA_FILE", "SCHEMA_PRESET", "DECIMAL_COMMA", "INCLUDE_PROJECT_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, "Results", cfg.Export.SheetName)
	assert.Equal(t, "Evaluation_Results.xlsx", cfg.Export.FileName)
	assert.Equal(t, "en", cfg.Schema.Preset)
	assert.False(t, cfg.Coercion.DecimalComma)
	assert.False(t, cfg.Export.IncludeProjectName)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DECIMAL_COMMA", "true")
	t.Setenv("SCHEMA_PRESET", "pt")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.True(t, cfg.Coercion.DecimalComma)
	assert.Equal(t, "pt", cfg.Schema.Preset)
	assert.Equal(t, "Resultado", cfg.Export.SheetName)
	assert.Equal(t, "Resultados_Avaliacao.xlsx", cfg.Export.FileName)
}

func TestApplyPresetKeepsExplicitExportNames(t *testing.T) {
	t.Setenv("EXPORT_SHEET", "Notas")
	t.Setenv("EXPORT_FILENAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	cfg.ApplyPreset("pt")
	assert.Equal(t, "Notas", cfg.Export.SheetName)
	assert.Equal(t, "Resultados_Avaliacao.xlsx", cfg.Export.FileName)
}

func TestApplyPresetSwitchesBackToEnglishNames(t *testing.T) {
	t.Setenv("SCHEMA_PRESET", "pt")
	t.Setenv("EXPORT_SHEET", "")
	t.Setenv("EXPORT_FILENAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Resultado", cfg.Export.SheetName)

	cfg.ApplyPreset("en")
	assert.Equal(t, "en", cfg.Schema.Preset)
	assert.Equal(t, "Results", cfg.Export.SheetName)
	assert.Equal(t, "Evaluation_Results.xlsx", cfg.Export.FileName)
}

func TestLoadAcceptsLowerCaseLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", " debug ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"PORT":          "http",
		"LOG_LEVEL":     "LOUD",
		"SCHEMA_PRESET": "fr",
		"EXPORT_SHEET":  "a sheet name that is far too long for excel",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestLoadSchemaPresets(t *testing.T) {
	schema, err := LoadSchema("", "")
	require.NoError(t, err)
	assert.Equal(t, evaluation.DefaultSchema(), schema)

	schema, err = LoadSchema("", "pt")
	require.NoError(t, err)
	assert.Equal(t, "Categoria do Projeto", schema.CategoryColumn)

	_, err = LoadSchema("", "xx")
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoadSchemaOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	yaml := `
category_column: Track
fields:
  clarity: readability
bonus_factor: 1.2
labels:
  project: Entry
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	schema, err := LoadSchema(path, "en")
	require.NoError(t, err)
	assert.Equal(t, "Track", schema.CategoryColumn)
	assert.Equal(t, "Full Name", schema.EvaluatorColumn, "unset keys keep the preset")
	assert.Equal(t, "readability", schema.Fields[evaluation.RoleClarity])
	assert.Equal(t, "relevance", schema.Fields[evaluation.RoleRelevance])
	assert.Equal(t, 1.2, schema.BonusFactor)
	assert.Equal(t, "Entry", schema.Labels.Project)
	assert.Equal(t, "Yes", schema.Labels.Yes)

	assert.Equal(t, "clarity", evaluation.DefaultSchema().Fields[evaluation.RoleClarity], "preset is not mutated")
}

func TestParseSchemaRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "anchor: Category\n",
		"unknown role":   "fields:\n  budget: money\n",
		"zero bonus":     "bonus_factor: 0\n",
		"empty sentinel": "sentinel_prefix: \"\"\n",
		"malformed":      "fields: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSchema([]byte(doc), evaluation.DefaultSchema())
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestMarshalSchemaRoundTrips(t *testing.T) {
	data, err := MarshalSchema(evaluation.PortugueseSchema())
	require.NoError(t, err)
	assert.Contains(t, string(data), "category_column: Categoria do Projeto")

	schema, err := ParseSchema(data, evaluation.DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, evaluation.PortugueseSchema(), schema)
}

func TestLoadSchemaMissingFile(t *testing.T) {
	_, err := LoadSchema(filepath.Join(t.TempDir(), "absent.yaml"), "en")
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
