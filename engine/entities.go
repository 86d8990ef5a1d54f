package engine

import (
	"regexp"
	"strings"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

// Legal role keywords, in priority order: the first two distinct keywords
// found become party_1 and party_2, by list order rather than text order.
var partyKeywords = []string{
	"buyer", "seller", "purchaser", "vendor", "lessor", "lessee",
	"customer", "client", "contractor", "subcontractor", "employer",
	"employee", "licensor", "licensee", "borrower", "lender",
	"party", "parties", "provider", "recipient",
}

var partyPatterns = buildPartyPatterns()

func buildPartyPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(partyKeywords))
	for i, kw := range partyKeywords {
		patterns[i] = regexp.MustCompile(`\b(?:the\s+)?` + kw + `\b`)
	}
	return patterns
}

// Currency patterns, in priority order
var currencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$\s?\d[\d,]*(?:\.\d{2})?`),            // $1000, $1,000.00
	regexp.MustCompile(`(?i)\d[\d,]*(?:\.\d{2})?\s?(?:USD|EUR|GBP|INR)`), // 1000 USD
	regexp.MustCompile(`(?i)(?:USD|EUR|GBP|INR)\s?\d[\d,]*(?:\.\d{2})?`), // USD 1000
}

// Time and deadline patterns, in priority order
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s+(?:day|week|month|year)s?`),
	regexp.MustCompile(`(?i)within\s+\d+\s+(?:day|week|month|year)s?`),
	regexp.MustCompile(`(?i)before\s+\d+\s+(?:day|week|month|year)s?`),
	regexp.MustCompile(`(?i)(?:by|on|before)\s+\w+\s+\d{1,2},?\s+\d{4}`),
}

var conditionKeywords = []string{
	"if", "unless", "provided that", "except that", "subject to",
	"contingent", "conditional", "in the event", "should",
}

var integerTokenRe = regexp.MustCompile(`\b\d+\b`)

const maxNumerics = 5

// ExtractEntities pulls structured facts out of a single clause. Purely
// lexical and deterministic.
func ExtractEntities(clauseText string) model.Entities {
	entities := model.Entities{}
	if clauseText == "" {
		return entities
	}

	lower := strings.ToLower(clauseText)

	parties := extractParties(lower)
	if len(parties) >= 1 {
		entities.Party1 = &parties[0]
	}
	if len(parties) >= 2 {
		entities.Party2 = &parties[1]
	}

	if amounts := extractAmounts(clauseText); len(amounts) > 0 {
		entities.Amount = &amounts[0]
	}
	if deadlines := extractDeadlines(clauseText); len(deadlines) > 0 {
		entities.Deadline = &deadlines[0]
	}

	for _, kw := range conditionKeywords {
		if strings.Contains(lower, kw) {
			entities.Conditions = true
			break
		}
	}

	numerics := integerTokenRe.FindAllString(clauseText, -1)
	if numerics == nil {
		numerics = []string{}
	}
	if len(numerics) > maxNumerics {
		numerics = numerics[:maxNumerics]
	}
	entities.Numerics = numerics

	return entities
}

func extractParties(lower string) []string {
	var found []string
	for i, p := range partyPatterns {
		if p.MatchString(lower) {
			found = append(found, partyKeywords[i])
		}
	}
	return found
}

// extractAmounts collects every currency match in pattern order; the caller
// takes the first, so pattern priority decides ties between patterns.
func extractAmounts(text string) []string {
	var amounts []string
	for _, p := range currencyPatterns {
		amounts = append(amounts, p.FindAllString(text, -1)...)
	}
	return amounts
}

func extractDeadlines(text string) []string {
	var deadlines []string
	for _, p := range deadlinePatterns {
		deadlines = append(deadlines, p.FindAllString(text, -1)...)
	}
	return deadlines
}
