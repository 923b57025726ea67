// Package driver sequences schema evaluation over a list of prompts:
// ground truth from storage, candidates from a SchemaGenerator, one
// EvaluationResult per prompt.
package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/datar-psa/schemaeval"
	"github.com/datar-psa/schemaeval/api"
)

// Prompt is one entry of the prompts file.
type Prompt struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// Layout names the evaluation files on disk.
type Layout struct {
	// PromptsFile is a JSON array of Prompt entries.
	PromptsFile string
	// GroundTruthDir holds one <prompt id>.json per prompt.
	GroundTruthDir string
	// GeneratedDir receives the raw generated payloads. Empty disables
	// persisting.
	GeneratedDir string
}

// Runner drives the evaluation. Prompts are processed strictly
// sequentially; a single prompt's failure never aborts the run.
type Runner struct {
	log       *zap.Logger
	generator api.SchemaGenerator
	evaluator *schemaeval.Evaluator
	layout    Layout
}

// NewRunner creates a Runner. log may be nil, in which case logging is
// discarded.
func NewRunner(log *zap.Logger, generator api.SchemaGenerator, evaluator *schemaeval.Evaluator, layout Layout) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		log:       log,
		generator: generator,
		evaluator: evaluator,
		layout:    layout,
	}
}

// Run loads the prompts file and evaluates every prompt in order.
func (r *Runner) Run(ctx context.Context) ([]api.EvaluationResult, error) {
	prompts, err := LoadPrompts(r.layout.PromptsFile)
	if err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}
	return r.RunPrompts(ctx, prompts), nil
}

// RunPrompts evaluates the given prompts in order. Per-prompt recovery
// policy:
//
//   - ground-truth load failure: the prompt is skipped;
//   - generation failure: an empty generated set with zero generation time
//     is scored instead;
//   - scoring fault: the zeroed result is kept.
//
// The returned slice holds one result per prompt whose ground truth loaded.
func (r *Runner) RunPrompts(ctx context.Context, prompts []Prompt) []api.EvaluationResult {
	log := r.log.With(zap.String("run_id", uuid.NewString()))
	log.Info("starting evaluation", zap.Int("prompts", len(prompts)))

	results := make([]api.EvaluationResult, 0, len(prompts))
	for i, prompt := range prompts {
		if ctx.Err() != nil {
			log.Warn("run cancelled", zap.Int("completed", len(results)), zap.Error(ctx.Err()))
			break
		}

		plog := log.With(zap.String("prompt_id", prompt.ID), zap.Int("index", i+1))

		groundTruth, err := os.ReadFile(filepath.Join(r.layout.GroundTruthDir, prompt.ID+".json"))
		if err != nil {
			plog.Warn("skipping prompt, ground truth unavailable", zap.Error(err))
			continue
		}

		generated, elapsedMs, err := r.generator.GenerateSchemas(ctx, prompt.Prompt)
		if err != nil {
			plog.Warn("generation failed, scoring an empty set", zap.Error(err))
			generated = json.RawMessage("[]")
			elapsedMs = 0
		}

		if r.layout.GeneratedDir != "" {
			if err := r.saveGenerated(prompt.ID, generated); err != nil {
				plog.Warn("could not persist generated schemas", zap.Error(err))
			}
		}

		result, err := r.evaluator.Evaluate(ctx, schemaeval.Request{
			PromptID:         prompt.ID,
			Prompt:           prompt.Prompt,
			Generated:        generated,
			GroundTruth:      groundTruth,
			GenerationTimeMs: elapsedMs,
		})
		if err != nil {
			plog.Error("scoring fault, keeping zeroed result", zap.Error(err))
		}
		results = append(results, result)

		plog.Info("prompt evaluated",
			zap.Float64("overall_score", result.OverallScore),
			zap.Float64("generation_ms", result.GenerationTimeMs),
			zap.Strings("errors", result.Errors))
	}

	log.Info("evaluation complete", zap.Int("results", len(results)))
	return results
}

func (r *Runner) saveGenerated(promptID string, payload json.RawMessage) error {
	if err := os.MkdirAll(r.layout.GeneratedDir, 0o755); err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(payload)
	}

	path := filepath.Join(r.layout.GeneratedDir, promptID+".json")
	return os.WriteFile(path, pretty.Bytes(), 0o644)
}

// LoadPrompts reads a JSON array of prompts from path.
func LoadPrompts(path string) ([]Prompt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var prompts []Prompt
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return prompts, nil
}
