package engine

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

// riskPattern is one document-level risk signature
type riskPattern struct {
	re          *regexp.Regexp
	level       string
	description string
}

var documentRiskPatterns = []riskPattern{
	{regexp.MustCompile(`unlimited\s+liability|liability\s+without\s+limit`),
		model.RiskCritical, "Unlimited liability clause detected"},
	{regexp.MustCompile(`indemnif\w*[^.]*without[^.]*limit|hold\s+harmless\s+against\s+all\s+claims`),
		model.RiskHigh, "Broad indemnification without limits"},
	{regexp.MustCompile(`terminated?\s+without\s+cause|terminate\s+at\s+will|termination\s+without\s+notice`),
		model.RiskHigh, "Termination without cause or notice provision"},
	{regexp.MustCompile(`excluded?\s+from\s+liability|not\s+responsible\s+for|disclaim\w*\s+liability`),
		model.RiskMedium, "Liability exclusion or disclaimer clause"},
	{regexp.MustCompile(`payment\s+within\s+\d+\s+days|net\s+\d+|payment\s+terms`),
		model.RiskLow, "Payment terms specified"},
	{regexp.MustCompile(`breach[^.]*confidential|disclose[^.]*confidential\s+information`),
		model.RiskHigh, "Confidentiality breach consequences"},
	{regexp.MustCompile(`non-?compete|non-?solicitation|restriction\s+on\s+competition`),
		model.RiskMedium, "Non-compete or non-solicitation clause"},
	{regexp.MustCompile(`governing\s+law|jurisdiction|dispute\s+resolution|arbitration`),
		model.RiskMedium, "Dispute resolution mechanism specified"},
	{regexp.MustCompile(`force\s+majeure|act\s+of\s+god|unforeseen\s+circumstances`),
		model.RiskLow, "Force majeure clause present"},
	{regexp.MustCompile(`warranty[^.]*excluded|as-?is|without[^.]*warranty|no\s+warranty`),
		model.RiskMedium, "Warranty exclusion or limitation"},
}

var riskLevelScores = map[string]int{
	model.RiskLow:      25,
	model.RiskMedium:   50,
	model.RiskHigh:     75,
	model.RiskCritical: 100,
}

var riskRecommendations = map[string]string{
	model.RiskCritical: "URGENT: Have legal counsel review immediately",
	model.RiskHigh:     "HIGH PRIORITY: Negotiate modifications with counterparty",
	model.RiskMedium:   "Consider requesting clarification or modifications",
	model.RiskLow:      "Monitor but generally acceptable",
}

const riskContextChars = 50

// DetectRisks scans a whole document for risk signatures, independent of the
// per-clause assessor. Unlike AssessRisk it can emit the critical level.
func DetectRisks(text string) []model.RiskFinding {
	var findings []model.RiskFinding
	lower := lowerASCII(text)

	for _, rp := range documentRiskPatterns {
		for _, loc := range rp.re.FindAllStringIndex(lower, -1) {
			start := loc[0] - riskContextChars
			if start < 0 {
				start = 0
			}
			end := loc[1] + riskContextChars
			if end > len(text) {
				end = len(text)
			}

			findings = append(findings, model.RiskFinding{
				RiskLevel:      rp.level,
				RiskScore:      riskLevelScores[rp.level],
				Description:    rp.description,
				ClauseText:     strings.TrimSpace(text[start:end]),
				Recommendation: riskRecommendations[rp.level],
			})
		}
	}

	slog.Debug("document risk scan complete", "findings", len(findings))
	return findings
}

// lowerASCII lowercases A-Z only, preserving byte offsets so matches on the
// lowered text can slice the original.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
