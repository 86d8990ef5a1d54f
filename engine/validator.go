package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

const (
	minSummaryWords = 5
	maxSummaryWords = 200
)

var allowedRiskLevels = map[string]bool{
	model.RiskLow:    true,
	model.RiskMedium: true,
	model.RiskHigh:   true,
}

// Validator gates pipeline output before it is returned to callers. Anything
// it rejects is logged to the known-bad store with a tag describing which
// check failed.
type Validator struct {
	store *KnownBadStore
}

func NewValidator(store *KnownBadStore) *Validator {
	return &Validator{store: store}
}

// Validate checks the serialized result against structural and semantic
// rules. It returns false and a joined message when any check fails; the
// failure is recorded against originalText with the given tag context.
func (v *Validator) Validate(outputJSON []byte, originalText, tag string) (bool, string) {
	var result model.PipelineResult
	if err := json.Unmarshal(outputJSON, &result); err != nil {
		v.record(originalText, "json_decode_error", fmt.Sprintf("JSON decode failed: %v", err), outputJSON)
		return false, fmt.Sprintf("JSON decode error: %v", err)
	}

	if errs := checkShape(&result); len(errs) > 0 {
		msg := strings.Join(errs, "; ")
		v.record(originalText, "schema_validation_error", "Schema validation failed: "+msg, outputJSON)
		return false, "Schema validation error: " + msg
	}

	if errs := checkSemantics(&result, originalText); len(errs) > 0 {
		v.record(originalText, "semantic_validation_error", errs[0], outputJSON)
		return false, strings.Join(errs, "; ")
	}

	return true, ""
}

func (v *Validator) record(originalText, tag, shortComment string, outputJSON []byte) {
	if v.store == nil {
		return
	}
	v.store.Record(originalText, tag, shortComment, string(outputJSON))
}

func checkShape(result *model.PipelineResult) []string {
	var errs []string
	for i, clause := range result.Clauses {
		if clause.ID == "" {
			errs = append(errs, fmt.Sprintf("clause %d missing id", i))
		}
		if clause.Type == "" {
			errs = append(errs, fmt.Sprintf("clause %d missing type", i))
		}
		if strings.TrimSpace(clause.OriginalText) == "" {
			errs = append(errs, fmt.Sprintf("clause %d missing original_text", i))
		}
		if !allowedRiskLevels[clause.RiskLevel] {
			errs = append(errs, fmt.Sprintf("clause %d has invalid risk_level %q", i, clause.RiskLevel))
		}
	}
	return errs
}

func checkSemantics(result *model.PipelineResult, originalText string) []string {
	var errs []string

	summary := strings.TrimSpace(result.Summary)
	if summary == "" {
		errs = append(errs, "Summary is empty or whitespace")
		return errs
	}

	wc := len(strings.Fields(summary))
	if wc < minSummaryWords {
		errs = append(errs, fmt.Sprintf("Summary too short (%d words, min %d)", wc, minSummaryWords))
	} else if wc > maxSummaryWords {
		errs = append(errs, fmt.Sprintf("Summary too long (%d words, max %d)", wc, maxSummaryWords))
	}

	if len(originalText) > 50 && strings.EqualFold(strings.TrimSpace(originalText), summary) {
		errs = append(errs, "Summary identical to input (no simplification occurred)")
	}

	return errs
}
