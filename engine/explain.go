package engine

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

// Fallback strings when a field has no pattern hits
const (
	noPartiesFound    = "The parties mentioned in the clause"
	noCoverageFound   = "Coverage details in the original clause"
	noExceptionsFound = "No major exceptions specified"
)

// Compound role names are tried first; when any are present the single-word
// roles are ignored entirely.
var compoundPartyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Receiving Party|Disclosing Party|Indemnifying Party|Indemnified Party|Licensing Party|Licensed Party)\b`),
	regexp.MustCompile(`(?i)\b(First Party|Second Party|Third Party)\b`),
}

var singlePartyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Company|Client|Vendor|Customer|Applicant|Court|Licensor|Licensee|Employer|Employee)\b`),
	regexp.MustCompile(`(?i)\b(Plaintiff|Defendant|Petitioner|Respondent|Grantor|Grantee)\b`),
	regexp.MustCompile(`(?i)\b(its officers?|directors?|employees?|agents?|successors?|assigns?|affiliates?)\b`),
}

var coveragePatterns = []*regexp.Regexp{
	// Contract/tort
	regexp.MustCompile(`(?i)\b(claims?|damages?|losses?|liabilities?|costs?|expenses?|fees?|penalties?)\b`),
	regexp.MustCompile(`(?i)\b(breach|misconduct|negligence|violation|failure|default)\b`),
	regexp.MustCompile(`(?i)\b(compensation|indemnification|protection|defense|reimbursement)\b`),

	// Confidentiality/IP
	regexp.MustCompile(`(?i)\b(Confidential Information|confidential|proprietary information|trade secrets?)\b`),
	regexp.MustCompile(`(?i)\b(disclosure|use|dissemination|reproduction|distribution)\b`),
	regexp.MustCompile(`(?i)\b(inventions?|patents?|copyrights?|trademarks?|intellectual property)\b`),

	// Employment
	regexp.MustCompile(`(?i)\b(employment|services|work product|non-compete)\b`),

	// General obligations
	regexp.MustCompile(`(?i)\b(obligations?|duties|rights|restrictions?|limitations?|prohibitions?)\b`),
}

// Exception matches extend greedily through trailing lettered sub-lists like
// "(a) ... (b) ..."
var exceptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:except|provided|however|unless|excluding)[^.]*(?:\([a-z]\)[^.]*)*`),
	regexp.MustCompile(`(?i)does not apply[^.]*(?:\([a-z]\)[^.]*)*`),
	regexp.MustCompile(`(?i)no obligation[^.]*(?:\([a-z]\)[^.]*)*`),
	regexp.MustCompile(`(?i)may[^.]*discretion[^.]*`),
	regexp.MustCompile(`(?i)shall not apply[^.]*(?:\([a-z]\)[^.]*)*`),
}

const minExceptionLength = 25

// explainClause builds the plain-language explanation for one clause: the
// simplified clause itself as the summary plus three heuristic fields, each
// independently run through the simplifier. Returns the explanation and any
// missing-field warning tags.
func explainClause(clauseText string) (model.Explanation, []string) {
	summary := Simplify(clauseText, true, false)

	explanation := model.Explanation{
		Summary:        summary,
		WhoIsProtected: Simplify(extractPartiesField(clauseText), false, false),
		WhatIsCovered:  Simplify(extractCoverageField(clauseText), false, false),
		Exceptions:     Simplify(extractExceptionsField(clauseText), false, false),
	}

	var warnings []string
	for _, field := range []struct{ name, value string }{
		{"summary", explanation.Summary},
		{"who_is_protected", explanation.WhoIsProtected},
		{"what_is_covered", explanation.WhatIsCovered},
		{"exceptions", explanation.Exceptions},
	} {
		if strings.TrimSpace(field.value) == "" {
			warnings = append(warnings, "missing_field_"+field.name)
		}
	}

	stats := Stats(clauseText, explanation.Summary)
	slog.Debug("clause simplified",
		"original_words", stats.OriginalWordCount,
		"simplified_words", stats.SimplifiedWordCount,
		"reduction_pct", stats.ReductionPct,
	)

	return explanation, warnings
}

// extractPartiesField prefers compound role names; single-word roles are only
// a fallback when no compound name appears.
func extractPartiesField(text string) string {
	found := collectGroupMatches(text, compoundPartyPatterns)
	if len(found) == 0 {
		found = collectGroupMatches(text, singlePartyPatterns)
	}
	if len(found) == 0 {
		return noPartiesFound
	}
	return strings.Join(sortedUnique(found, 4), ", ")
}

func extractCoverageField(text string) string {
	found := collectGroupMatches(text, coveragePatterns)
	if len(found) == 0 {
		return noCoverageFound
	}
	return "Covers: " + strings.Join(sortedUnique(found, 6), ", ")
}

// extractExceptionsField keeps the single longest exception match above the
// minimum length, capitalized and simplified.
func extractExceptionsField(text string) string {
	var best string
	for _, p := range exceptionPatterns {
		for _, match := range p.FindAllString(text, -1) {
			cleaned := strings.TrimSpace(match)
			if len(cleaned) <= minExceptionLength {
				continue
			}
			simplified := Simplify(cleaned, false, false)
			if simplified != "" && len(simplified) > len(best) {
				best = simplified
			}
		}
	}
	if best == "" {
		return noExceptionsFound
	}
	return capitalizeFirstRune(best)
}

func collectGroupMatches(text string, patterns []*regexp.Regexp) []string {
	var found []string
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if len(m) > 1 {
				found = append(found, m[1])
			} else {
				found = append(found, m[0])
			}
		}
	}
	return found
}

func sortedUnique(items []string, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	sort.Strings(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func capitalizeFirstRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
