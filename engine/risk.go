package engine

import (
	"regexp"
	"strings"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

// Keyword tables for clause risk scoring. Each pattern counts once per
// clause regardless of how many times it occurs.
var highRiskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bpenalty\b`),
	regexp.MustCompile(`\bliability\b`),
	regexp.MustCompile(`\bindemnif(?:y|ication)\b`),
	regexp.MustCompile(`\bbreach\b`),
	regexp.MustCompile(`\bterminat(?:e|ion)\b`),
	regexp.MustCompile(`\bwaive\b`),
	regexp.MustCompile(`\bunlimited\b`),
	regexp.MustCompile(`\bdamage(?:s)?\b`),
	regexp.MustCompile(`\bforfeiture\b`),
	regexp.MustCompile(`\bdefault\b`),
	regexp.MustCompile(`\bsever(?:able|ance)\b`),
}

var mediumRiskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bshall\b`),
	regexp.MustCompile(`\bmust\b`),
	regexp.MustCompile(`\bobligat(?:ed|ion)\b`),
	regexp.MustCompile(`\bwithin\s+\d+\s+days\b`),
	regexp.MustCompile(`\brequired to\b`),
	regexp.MustCompile(`\bcontingent\b`),
	regexp.MustCompile(`\bconditional\b`),
	regexp.MustCompile(`\bprovided that\b`),
	regexp.MustCompile(`\brestrict(?:ion|ed)?\b`),
	regexp.MustCompile(`\bprohibit(?:ed)?\b`),
}

var lowRiskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bdefinition\b`),
	regexp.MustCompile(`\bmeans\b`),
	regexp.MustCompile(`\bfor clarity\b`),
	regexp.MustCompile(`\bas follows\b`),
	regexp.MustCompile(`\bbackground\b`),
	regexp.MustCompile(`\brecital\b`),
	regexp.MustCompile(`\badministrative\b`),
	regexp.MustCompile(`\binformational\b`),
}

// Base score per clause type
var typeRiskScores = map[string]int{
	model.TypeLiability:         3,
	model.TypeTermination:       3,
	model.TypePaymentObligation: 2,
	model.TypeWarranty:          2,
	model.TypeConfidentiality:   2,
	model.TypeCondition:         2,
	model.TypeGeneralObligation: 1,
	model.TypeDefinition:        0,
	model.TypeGeneral:           1,
}

// Score thresholds
const (
	highRiskThreshold   = 6
	mediumRiskThreshold = 3
)

// AssessRisk scores one clause from keyword hits, the clause type and the
// extracted entities, then maps the total to low/medium/high. Pure function.
func AssessRisk(clauseText, clauseType string, entities model.Entities) string {
	if clauseText == "" {
		return model.RiskLow
	}

	score := 0
	lower := strings.ToLower(clauseText)

	for _, p := range highRiskPatterns {
		if p.MatchString(lower) {
			score += 3
		}
	}
	for _, p := range mediumRiskPatterns {
		if p.MatchString(lower) {
			score += 2
		}
	}
	for _, p := range lowRiskPatterns {
		if p.MatchString(lower) {
			score--
		}
	}

	score += typeRiskScores[clauseType]

	if entities.Amount != nil {
		score++
	}
	if entities.Deadline != nil {
		score++
	}
	if entities.Conditions {
		score++
	}

	switch {
	case score >= highRiskThreshold:
		return model.RiskHigh
	case score >= mediumRiskThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
