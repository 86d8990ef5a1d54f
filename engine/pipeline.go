package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

// ErrEmptyInput is returned when the input text is empty or whitespace-only.
var ErrEmptyInput = errors.New("input text must be a non-empty string")

const (
	minInputContentWords = 5
	maxSummaryClauses    = 3
	maxConcurrentClauses = 8
)

// Options carries per-request tuning for a pipeline run. The rule engine is
// deterministic; the fields are accepted for API compatibility and logged,
// but do not change substitution behavior.
type Options struct {
	TargetStyle       string
	MaxWordsPerClause int
}

// Pipeline orchestrates segmentation, per-clause explanation, entity
// extraction, risk scoring and output validation. Rules do the
// simplification; heuristics extract structure. Nothing here generates
// content, so the output never drifts from the input.
type Pipeline struct {
	validator *Validator
	badStore  *KnownBadStore
}

func NewPipeline(badStore *KnownBadStore) *Pipeline {
	return &Pipeline{
		validator: NewValidator(badStore),
		badStore:  badStore,
	}
}

// Process runs the full pipeline over text and returns the structured
// result. Validation failure never fails the call; it is surfaced as a
// "validation_failed: ..." warning on the result.
func (p *Pipeline) Process(ctx context.Context, text string, opts Options) (*model.PipelineResult, error) {
	originalText := strings.TrimSpace(text)
	if originalText == "" {
		return nil, ErrEmptyInput
	}

	if n := countContentWords(originalText); n < minInputContentWords {
		result := &model.PipelineResult{
			Summary:  originalText,
			Clauses:  []model.ClauseResult{},
			Warnings: []string{fmt.Sprintf("input_too_short_min_%d", minInputContentWords)},
		}
		if data, err := json.Marshal(result); err == nil && p.badStore != nil {
			p.badStore.Record(originalText, "input_too_short",
				fmt.Sprintf("Skipped: %d content words, min %d", n, minInputContentWords),
				string(data))
		}
		return result, nil
	}

	clauses := p.segment(originalText)

	processed := make([]model.ClauseResult, len(clauses))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentClauses)
	for i, clause := range clauses {
		g.Go(func() error {
			processed[i] = processClause(clause)
			return nil
		})
	}
	g.Wait()

	result := &model.PipelineResult{
		Summary:  buildSummary(processed, originalText),
		Clauses:  processed,
		Warnings: []string{},
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize result: %w", err)
	}
	if ok, msg := p.validator.Validate(data, originalText, "hybrid_explanation_output"); !ok {
		result.Warnings = append(result.Warnings, "validation_failed: "+msg)
	}

	slog.Debug("pipeline completed",
		"clauses", len(processed),
		"target_style", opts.TargetStyle,
		"max_words_per_clause", opts.MaxWordsPerClause)

	return result, nil
}

// segment extracts clauses, falling back to a single general clause covering
// the whole input if segmentation panics.
func (p *Pipeline) segment(text string) (clauses []model.Clause) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("clause extraction failed", "error", r)
			clauses = []model.Clause{
				{ID: "clause_1", OriginalText: text, Type: model.TypeGeneral},
			}
		}
	}()
	clauses = ExtractClauses(text)
	return clauses
}

func processClause(clause model.Clause) model.ClauseResult {
	explanation, warnings := explainClause(clause.OriginalText)
	entities := ExtractEntities(clause.OriginalText)
	riskLevel := AssessRisk(clause.OriginalText, clause.Type, entities)

	if len(entities.Numerics) > 0 {
		warnings = append(warnings, "numerics_present")
	}
	if entities.Deadline != nil {
		warnings = append(warnings, "time_sensitive")
	}
	if entities.Conditions {
		warnings = append(warnings, "conditional_clause")
	}
	if warnings == nil {
		warnings = []string{}
	}

	return model.ClauseResult{
		ID:           clause.ID,
		Type:         clause.Type,
		OriginalText: clause.OriginalText,
		Explanation:  explanation,
		RiskLevel:    riskLevel,
		KeyEntities:  entities,
		Warnings:     warnings,
	}
}

// buildSummary joins the first few clause summaries; an input that yielded
// no clauses falls back to echoing the original text.
func buildSummary(clauses []model.ClauseResult, originalText string) string {
	if len(clauses) == 0 {
		return originalText
	}
	head := clauses
	if len(head) > maxSummaryClauses {
		head = head[:maxSummaryClauses]
	}
	var parts []string
	for _, c := range head {
		if s := c.Explanation.Summary; s != "" {
			parts = append(parts, s)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func countContentWords(text string) int {
	n := 0
	for _, token := range strings.Fields(text) {
		if strings.ContainsFunc(token, unicode.IsLetter) {
			n++
		}
	}
	return n
}
