package engine

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

// typeCategory couples a clause type with its keyword patterns. Declaration
// order is the tie-break: on equal scores the earlier category wins.
type typeCategory struct {
	name     string
	patterns []*regexp.Regexp
}

var typeCategories = []typeCategory{
	{model.TypePaymentObligation, []*regexp.Regexp{
		regexp.MustCompile(`\bpay(?:ment|able|s)?\b`),
		regexp.MustCompile(`\b(?:invoice|fee|charge|price|cost|amount)\b`),
		regexp.MustCompile(`\b(?:compensat|remunerat)\w+\b`),
	}},
	{model.TypeLiability, []*regexp.Regexp{
		regexp.MustCompile(`\bliab(?:le|ility)\b`),
		regexp.MustCompile(`\bindemnif(?:y|ication)\b`),
		regexp.MustCompile(`\b(?:damage|loss)(?:es)?\b`),
		regexp.MustCompile(`\b(?:liable|responsible) for\b`),
	}},
	{model.TypeTermination, []*regexp.Regexp{
		regexp.MustCompile(`\bterminat(?:e|ion)\b`),
		regexp.MustCompile(`\b(?:cancel|cancellation)\b`),
		regexp.MustCompile(`\b(?:expire|expiration)\b`),
		regexp.MustCompile(`\bend this (?:agreement|contract)\b`),
	}},
	{model.TypeConfidentiality, []*regexp.Regexp{
		regexp.MustCompile(`\bconfidential(?:ity)?\b`),
		regexp.MustCompile(`\b(?:non-disclosure|nda)\b`),
		regexp.MustCompile(`\b(?:secret|proprietary)\b`),
	}},
	{model.TypeWarranty, []*regexp.Regexp{
		regexp.MustCompile(`\bwarrant(?:y|ies)\b`),
		regexp.MustCompile(`\bguarantee\b`),
		regexp.MustCompile(`\b(?:represent|representation)\b`),
	}},
	{model.TypeCondition, []*regexp.Regexp{
		regexp.MustCompile(`\bif\b`),
		regexp.MustCompile(`\bunless\b`),
		regexp.MustCompile(`\bsubject to\b`),
		regexp.MustCompile(`\bcontingent upon\b`),
	}},
	{model.TypeDefinition, []*regexp.Regexp{
		regexp.MustCompile(`\bmeans\b`),
		regexp.MustCompile(`\bdefined as\b`),
		regexp.MustCompile(`\brefers to\b`),
		regexp.MustCompile(`\bfor purposes of\b`),
	}},
	{model.TypeGeneralObligation, []*regexp.Regexp{
		regexp.MustCompile(`\bshall\b`),
		regexp.MustCompile(`\bmust\b`),
		regexp.MustCompile(`\brequired to\b`),
		regexp.MustCompile(`\bobligat(?:ed|ion)\b`),
	}},
}

var numberedSectionRe = regexp.MustCompile(`(?:^|\n)[ \t]*(\d+\.)\s+`)

// Strong boundary phrases that close a clause buffer during sentence
// accumulation
var boundaryPhrases = []string{"provided that", "except that"}

// ExtractClauses segments legal text into ordered clause units and infers a
// type for each. Empty or whitespace-only input yields no clauses.
func ExtractClauses(text string) []model.Clause {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	segments := splitNumberedSections(trimmed)
	if segments == nil {
		segments = splitBySentences(trimmed)
	}
	if len(segments) == 0 {
		segments = []string{trimmed}
	}

	var clauses []model.Clause
	for idx, segment := range segments {
		segText := strings.TrimSpace(segment)
		if segText == "" {
			continue
		}
		clauses = append(clauses, model.Clause{
			ID:           fmt.Sprintf("clause_%d", idx+1),
			OriginalText: segText,
			Type:         inferClauseType(segText),
		})
	}

	slog.Debug("extracted clauses", "count", len(clauses), "chars", len(trimmed))
	return clauses
}

// splitNumberedSections splits on "N." markers at line starts. The split is
// only accepted when it produces more than 3 parts (at least two numbered
// sections); otherwise nil is returned and the caller falls through to the
// sentence strategy.
func splitNumberedSections(text string) []string {
	matches := numberedSectionRe.FindAllStringSubmatchIndex(text, -1)
	if 2*len(matches)+1 <= 3 {
		return nil
	}

	// Interleave text parts and "N." markers, then rejoin each marker with
	// the text that follows it
	var parts []string
	var markers []bool
	last := 0
	for _, m := range matches {
		parts = append(parts, text[last:m[0]])
		markers = append(markers, false)
		parts = append(parts, text[m[2]:m[3]])
		markers = append(markers, true)
		last = m[1]
	}
	parts = append(parts, text[last:])
	markers = append(markers, false)

	var segments []string
	current := ""
	for i, part := range parts {
		if markers[i] {
			if current != "" {
				segments = append(segments, current)
			}
			current = part + " "
		} else {
			current += part
		}
	}
	if current != "" {
		segments = append(segments, current)
	}
	return segments
}

// splitBySentences accumulates sentences into a clause buffer and closes the
// buffer whenever the just-appended sentence carries a strong boundary phrase.
func splitBySentences(text string) []string {
	var segments []string
	current := ""
	for _, sent := range splitSentences(text) {
		current += sent + " "
		lower := strings.ToLower(sent)
		for _, phrase := range boundaryPhrases {
			if strings.Contains(lower, phrase) {
				segments = append(segments, strings.TrimSpace(current))
				current = ""
				break
			}
		}
	}
	if strings.TrimSpace(current) != "" {
		segments = append(segments, strings.TrimSpace(current))
	}
	return segments
}

// splitSentences breaks text after ".!?" followed by whitespace and a capital
// letter. Implemented by hand: the stdlib regexp engine has no lookaround.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		j := i + 1
		for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n' || text[j] == '\r') {
			j++
		}
		if j > i+1 && j < len(text) && text[j] >= 'A' && text[j] <= 'Z' {
			out = append(out, text[start:i+1])
			start = j
			i = j - 1
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// inferClauseType scores every category by pattern hit count against the
// lowercased text; the highest score wins and ties go to the category
// declared first. No hits means "general".
func inferClauseType(text string) string {
	lower := strings.ToLower(text)

	best := ""
	bestScore := 0
	for _, cat := range typeCategories {
		score := 0
		for _, p := range cat.patterns {
			if p.MatchString(lower) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = cat.name
		}
	}

	if bestScore == 0 {
		return model.TypeGeneral
	}
	return best
}
