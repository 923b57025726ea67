// Package config loads CLI configuration in the usual layered way:
// YAML file when present, environment variables always overriding.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the schemaeval CLI.
// Path fields left empty are derived from EvalDir at load time.
type Config struct {
	// EvalDir is the evaluation workspace root.
	EvalDir string `yaml:"eval_dir" env:"SCHEMAEVAL_DIR" env-default:"."`

	PromptsFile    string `yaml:"prompts_file" env:"SCHEMAEVAL_PROMPTS_FILE" env-default:""`
	MappingsDir    string `yaml:"mappings_dir" env:"SCHEMAEVAL_MAPPINGS_DIR" env-default:""`
	GroundTruthDir string `yaml:"ground_truth_dir" env:"SCHEMAEVAL_GROUND_TRUTH_DIR" env-default:""`
	GeneratedDir   string `yaml:"generated_dir" env:"SCHEMAEVAL_GENERATED_DIR" env-default:""`
	OutputFile     string `yaml:"output_file" env:"SCHEMAEVAL_OUTPUT_FILE" env-default:"report.csv"`

	// EntityExtraction enables the optional Cloud Natural Language
	// supplement for the semantic metric.
	EntityExtraction bool `yaml:"entity_extraction" env:"SCHEMAEVAL_ENTITY_EXTRACTION" env-default:"false"`

	Gemini GeminiConfig `yaml:"gemini"`
}

// GeminiConfig holds the generation backend settings.
type GeminiConfig struct {
	Project  string `yaml:"project" env:"GOOGLE_PROJECT_ID" env-default:""`
	Location string `yaml:"location" env:"GOOGLE_REGION" env-default:"us-central1"`
	Model    string `yaml:"model" env:"SCHEMAEVAL_GEMINI_MODEL" env-default:"gemini-2.5-flash"`
}

// Load reads configuration from the YAML file at path, with environment
// variables overriding, then fills the derived paths. An empty path loads
// from the environment alone.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.PromptsFile == "" {
		c.PromptsFile = filepath.Join(c.EvalDir, "prompts.json")
	}
	if c.MappingsDir == "" {
		c.MappingsDir = filepath.Join(c.EvalDir, "mappings")
	}
	if c.GroundTruthDir == "" {
		c.GroundTruthDir = filepath.Join(c.EvalDir, "ground_truth")
	}
	if c.GeneratedDir == "" {
		c.GeneratedDir = filepath.Join(c.EvalDir, "generated_schemas")
	}
}

// FieldAliasPath returns the field-name alias table location.
func (c *Config) FieldAliasPath() string {
	return filepath.Join(c.MappingsDir, "field_name_aliases.json")
}

// TypeAliasPath returns the type alias table location.
func (c *Config) TypeAliasPath() string {
	return filepath.Join(c.MappingsDir, "type_aliases.json")
}

// OutputPath returns the report location inside the eval dir.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.OutputFile) {
		return c.OutputFile
	}
	return filepath.Join(c.EvalDir, c.OutputFile)
}

// Validate checks that the evaluation inputs exist before a run starts.
func (c *Config) Validate() error {
	for name, p := range map[string]string{
		"prompts file":     c.PromptsFile,
		"mappings dir":     c.MappingsDir,
		"ground truth dir": c.GroundTruthDir,
	} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("%s %s: %w", name, p, err)
		}
	}
	return nil
}
