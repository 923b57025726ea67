// schemaeval evaluates model-generated no-code form schemas against ground
// truth and writes a per-prompt CSV report.
//
// Usage: schemaeval [-config config.yaml]
//
// The evaluation directory is expected to contain prompts.json, mappings/
// with the two alias tables, and ground_truth/<prompt id>.json files.
// Generation uses Gemini on Vertex AI; credentials come from the usual
// Google Cloud environment.
package main

import (
	"context"
	"flag"
	"os"

	language "cloud.google.com/go/language/apiv1"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/datar-psa/schemaeval"
	"github.com/datar-psa/schemaeval/config"
	"github.com/datar-psa/schemaeval/driver"
	"github.com/datar-psa/schemaeval/gemini"
	"github.com/datar-psa/schemaeval/report"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (optional)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), logger, *configPath); err != nil {
		logger.Fatal("evaluation failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.Gemini.Project,
		Location: cfg.Gemini.Location,
	})
	if err != nil {
		return err
	}

	opts := []func(*schemaeval.EvaluatorOptions){
		schemaeval.WithAliasFiles(cfg.FieldAliasPath(), cfg.TypeAliasPath()),
	}

	if cfg.EntityExtraction {
		langClient, err := language.NewClient(ctx)
		if err != nil {
			return err
		}
		defer langClient.Close()
		opts = append(opts, schemaeval.WithEntityExtractor(gemini.NewLanguageEntityExtractor(langClient)))
	}

	evaluator, err := schemaeval.NewEvaluator(opts...)
	if err != nil {
		return err
	}

	runner := driver.NewRunner(logger, gemini.NewGenerator(genaiClient, cfg.Gemini.Model), evaluator, driver.Layout{
		PromptsFile:    cfg.PromptsFile,
		GroundTruthDir: cfg.GroundTruthDir,
		GeneratedDir:   cfg.GeneratedDir,
	})

	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := report.WriteCSVFile(cfg.OutputPath(), results); err != nil {
		return err
	}

	summary := report.Summarize(results)
	logger.Info("evaluation summary",
		zap.Int("prompts", summary.Prompts),
		zap.Float64("mean_overall_score", summary.MeanOverallScore),
		zap.Float64("mean_generation_ms", summary.MeanGenerationTimeMs),
		zap.String("report", cfg.OutputPath()))
	return nil
}
