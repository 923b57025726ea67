package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvOnlyDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.EvalDir)
	assert.Equal(t, filepath.Join(".", "prompts.json"), cfg.PromptsFile)
	assert.Equal(t, filepath.Join(".", "mappings"), cfg.MappingsDir)
	assert.Equal(t, filepath.Join(".", "ground_truth"), cfg.GroundTruthDir)
	assert.Equal(t, filepath.Join(".", "generated_schemas"), cfg.GeneratedDir)
	assert.Equal(t, "report.csv", cfg.OutputFile)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.False(t, cfg.EntityExtraction)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
eval_dir: /data/eval
output_file: out.csv
entity_extraction: true
gemini:
  project: my-project
  model: gemini-2.5-pro
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/eval", cfg.EvalDir)
	assert.Equal(t, filepath.Join("/data/eval", "prompts.json"), cfg.PromptsFile)
	assert.Equal(t, filepath.Join("/data/eval", "mappings"), cfg.MappingsDir)
	assert.Equal(t, filepath.Join("/data/eval", "out.csv"), cfg.OutputPath())
	assert.Equal(t, "my-project", cfg.Gemini.Project)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.True(t, cfg.EntityExtraction)
}

func TestEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("eval_dir: /data/eval\n"), 0o644))

	t.Setenv("SCHEMAEVAL_DIR", "/env/eval")
	t.Setenv("SCHEMAEVAL_GEMINI_MODEL", "gemini-3-flash")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/eval", cfg.EvalDir)
	assert.Equal(t, "gemini-3-flash", cfg.Gemini.Model)
	assert.Equal(t, filepath.Join("/env/eval", "prompts.json"), cfg.PromptsFile)
}

func TestAliasPaths(t *testing.T) {
	cfg := &Config{MappingsDir: "/m"}

	assert.Equal(t, filepath.Join("/m", "field_name_aliases.json"), cfg.FieldAliasPath())
	assert.Equal(t, filepath.Join("/m", "type_aliases.json"), cfg.TypeAliasPath())
}

func TestOutputPathAbsolute(t *testing.T) {
	cfg := &Config{EvalDir: "/data/eval", OutputFile: "/tmp/report.csv"}
	assert.Equal(t, "/tmp/report.csv", cfg.OutputPath())
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{EvalDir: dir}
	cfg.applyDefaults()

	// Nothing exists yet.
	assert.Error(t, cfg.Validate())

	require.NoError(t, os.WriteFile(cfg.PromptsFile, []byte("[]"), 0o644))
	require.NoError(t, os.MkdirAll(cfg.MappingsDir, 0o755))
	require.NoError(t, os.MkdirAll(cfg.GroundTruthDir, 0o755))

	assert.NoError(t, cfg.Validate())
}
