package engine

import (
	"math"
	"regexp"
	"strings"
)

// substitution is one legalese rewrite rule. Rules are applied in order
// against the already-substituted string, so the order of the table is part
// of the contract ("shall not" must run before "shall").
type substitution struct {
	re   *regexp.Regexp
	repl string
}

var lexicalSubstitutions = []substitution{
	// Doublets and triplets
	{regexp.MustCompile(`(?i)\b(?:null and void|void and of no effect)\b`), "void"},
	{regexp.MustCompile(`(?i)\bcease and desist\b`), "stop"},
	{regexp.MustCompile(`(?i)\bgive and grant\b`), "give"},
	{regexp.MustCompile(`(?i)\bfinal and conclusive\b`), "final"},
	{regexp.MustCompile(`(?i)\bforce and effect\b`), "effect"},
	{regexp.MustCompile(`(?i)\bterms and conditions\b`), "terms"},
	{regexp.MustCompile(`(?i)\bby and between\b`), "between"},
	{regexp.MustCompile(`(?i)\bmade and entered into\b`), "entered"},
	{regexp.MustCompile(`(?i)\bdue and payable\b`), "due"},
	{regexp.MustCompile(`(?i)\bsole and exclusive\b`), "sole"},
	{regexp.MustCompile(`(?i)\bright, title,? and interest\b`), "rights"},
	{regexp.MustCompile(`(?i)\bauthorize and empower\b`), "authorize"},
	{regexp.MustCompile(`(?i)\bready and willing\b`), "willing"},

	// Archaic and formal terms
	{regexp.MustCompile(`(?i)\bhereby\b`), ""},
	{regexp.MustCompile(`(?i)\bherein\b`), "in this document"},
	{regexp.MustCompile(`(?i)\bhereinafter\b`), "later in this document"},
	{regexp.MustCompile(`(?i)\bhereof\b`), "of this"},
	{regexp.MustCompile(`(?i)\bheretofore\b`), "previously"},
	{regexp.MustCompile(`(?i)\bhereunder\b`), "under this agreement"},
	{regexp.MustCompile(`(?i)\bherewith\b`), "with this"},
	{regexp.MustCompile(`(?i)\btherein\b`), "in that"},
	{regexp.MustCompile(`(?i)\bthereof\b`), "of that"},
	{regexp.MustCompile(`(?i)\bthereunder\b`), "under that"},
	{regexp.MustCompile(`(?i)\bwherein\b`), "where"},
	{regexp.MustCompile(`(?i)\bwhereby\b`), "by which"},
	{regexp.MustCompile(`(?i)\bwhereas\b`), "since"},
	{regexp.MustCompile(`(?i)\baforesaid\b`), "mentioned above"},
	{regexp.MustCompile(`(?i)\bforthwith\b`), "immediately"},
	{regexp.MustCompile(`(?i)\btherefor\b`), "for that"},

	// Complex verbs
	{regexp.MustCompile(`(?i)\bcommence\b`), "start"},
	{regexp.MustCompile(`(?i)\bterminate\b`), "end"},
	{regexp.MustCompile(`(?i)\bconstitute\b`), "is"},
	{regexp.MustCompile(`(?i)\bprovide that\b`), "if"},
	{regexp.MustCompile(`(?i)\bin the event that\b`), "if"},
	{regexp.MustCompile(`(?i)\bin the event of\b`), "if"},
	{regexp.MustCompile(`(?i)\bprovided that\b`), "except"},
	{regexp.MustCompile(`(?i)\bprovided,? however,?\b`), "except"},
	{regexp.MustCompile(`(?i)\bsubject to\b`), "depending on"},
	{regexp.MustCompile(`(?i)\bpursuant to\b`), "under"},
	{regexp.MustCompile(`(?i)\bin accordance with\b`), "following"},
	{regexp.MustCompile(`(?i)\bwith respect to\b`), "about"},
	{regexp.MustCompile(`(?i)\bin connection with\b`), "relating to"},
	{regexp.MustCompile(`(?i)\bprior to\b`), "before"},
	{regexp.MustCompile(`(?i)\bsubsequent to\b`), "after"},
	{regexp.MustCompile(`(?i)\bshall have no obligation\b`), "does not need"},
	{regexp.MustCompile(`(?i)\bshall not\b`), "must not"},
	{regexp.MustCompile(`(?i)\bshall\b`), "must"},
	{regexp.MustCompile(`(?i)\bmay not\b`), "cannot"},

	// Legal nouns
	{regexp.MustCompile(`(?i)\bindemnification\b`), "compensation"},
	{regexp.MustCompile(`(?i)\bindemnify\b`), "compensate"},
	{regexp.MustCompile(`(?i)\bremuneration\b`), "payment"},
	{regexp.MustCompile(`(?i)\bobligation\b`), "duty"},
	{regexp.MustCompile(`(?i)\bliability\b`), "responsibility"},
	{regexp.MustCompile(`(?i)\bliabilities\b`), "responsibilities"},
	{regexp.MustCompile(`(?i)\bjurisdiction\b`), "authority"},
	{regexp.MustCompile(`(?i)\bconsideration\b`), "payment"},
	{regexp.MustCompile(`(?i)\bcovenants and agrees\b`), "agrees"},

	// Wordy phrases
	{regexp.MustCompile(`(?i)\bduring such time as\b`), "while"},
	{regexp.MustCompile(`(?i)\bat such time as\b`), "when"},
	{regexp.MustCompile(`(?i)\bfor the reason that\b`), "because"},
	{regexp.MustCompile(`(?i)\bfor the purpose of\b`), "for"},
	{regexp.MustCompile(`(?i)\bin order to\b`), "to"},
	{regexp.MustCompile(`(?i)\bby means of\b`), "by"},
	{regexp.MustCompile(`(?i)\bby virtue of\b`), "because of"},
	{regexp.MustCompile(`(?i)\bnotwithstanding the fact that\b`), "although"},
	{regexp.MustCompile(`(?i)\bto the extent that\b`), "if"},
	{regexp.MustCompile(`(?i)\barising out of or in connection with\b`), "arising from"},
}

// Filler phrases deleted outright
var removePhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bvery\s+`),
	regexp.MustCompile(`(?i)\bquite\s+`),
	regexp.MustCompile(`(?i)\bsomewhat\s+`),
	regexp.MustCompile(`(?i)\bat all\b`),
	regexp.MustCompile(`(?i)\bin any manner\b`),
	regexp.MustCompile(`(?i)\bof any kind\b`),
	regexp.MustCompile(`(?i)\bwhatsoever\b`),
	regexp.MustCompile(`(?i)\bincluding,? without limitation,?\b`),
	regexp.MustCompile(`(?i)\bwithout limitation\b`),
	regexp.MustCompile(`(?i)\bany and all\b`),
}

// maxSentenceWords is the length above which a sentence gets one split attempt
const maxSentenceWords = 35

// naturalBreak is a split point for over-long sentences, tried in priority
// order; at most one split is applied per sentence.
type naturalBreak struct {
	re          *regexp.Regexp
	repl        string
	capitalizes bool // replacement reuses the captured conjunction
}

var naturalBreaks = []naturalBreak{
	{regexp.MustCompile(`(?i),\s+(and|or)\s+`), ". %s ", true},
	{regexp.MustCompile(`(?i),\s+but\s+`), ". But ", false},
	{regexp.MustCompile(`(?i),\s+which\s+`), ". This ", false},
	{regexp.MustCompile(`(?i),\s+provided that\s+`), ". However, ", false},
	{regexp.MustCompile(`(?i),\s+provided,? however,?\s+`), ". However, ", false},
	{regexp.MustCompile(`(?i),\s+except\s+`), ". Except ", false},
}

var (
	sentenceDelimRe    = regexp.MustCompile(`[.!?]\s+`)
	multiSpaceRe       = regexp.MustCompile(` {2,}`)
	spaceBeforePunctRe = regexp.MustCompile(`\s+([.,;:!?])`)
	blankLinesRe       = regexp.MustCompile(`\n{3,}`)
	sentenceEndRe      = regexp.MustCompile(`[.!?]+`)
)

// Simplify rewrites legal text into plain language. The pipeline is fixed:
// lexical substitution, redundant-phrase removal, optional sentence splitting
// (when aggressive or preserveStructure is off), whitespace normalization.
// Deterministic for identical inputs.
func Simplify(text string, preserveStructure, aggressive bool) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	simplified := strings.TrimSpace(text)
	simplified = applyLexicalSubstitutions(simplified)
	simplified = removeRedundantPhrases(simplified)
	if aggressive || !preserveStructure {
		simplified = splitLongSentences(simplified)
	}
	return normalizeWhitespace(simplified)
}

func applyLexicalSubstitutions(text string) string {
	result := text
	for _, sub := range lexicalSubstitutions {
		result = sub.re.ReplaceAllString(result, sub.repl)
	}
	return result
}

func removeRedundantPhrases(text string) string {
	result := text
	for _, re := range removePhrases {
		result = re.ReplaceAllString(result, "")
	}
	return result
}

// splitLongSentences walks sentence by sentence, preserving the original
// delimiters, and gives each over-long sentence a single split attempt.
func splitLongSentences(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range sentenceDelimRe.FindAllStringIndex(text, -1) {
		b.WriteString(splitIfLong(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(splitIfLong(text[last:]))
	return b.String()
}

func splitIfLong(sentence string) string {
	if len(strings.Fields(sentence)) <= maxSentenceWords {
		return sentence
	}
	return splitAtNaturalBreak(sentence)
}

// splitAtNaturalBreak applies the first matching break pattern once and stops.
func splitAtNaturalBreak(sentence string) string {
	for _, brk := range naturalBreaks {
		loc := brk.re.FindStringSubmatchIndex(sentence)
		if loc == nil {
			continue
		}
		repl := brk.repl
		if brk.capitalizes {
			repl = strings.Replace(repl, "%s", capitalizeFirst(strings.ToLower(sentence[loc[2]:loc[3]])), 1)
		}
		return sentence[:loc[0]] + repl + sentence[loc[1]:]
	}
	return sentence
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func normalizeWhitespace(text string) string {
	result := multiSpaceRe.ReplaceAllString(text, " ")
	result = spaceBeforePunctRe.ReplaceAllString(result, "$1")
	lines := strings.Split(result, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	result = strings.Join(lines, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// SimplificationStats summarizes what one Simplify call did to the text.
// Diagnostic only.
type SimplificationStats struct {
	OriginalWordCount       int     `json:"original_word_count"`
	SimplifiedWordCount     int     `json:"simplified_word_count"`
	ReductionPct            float64 `json:"reduction_pct"`
	AvgSentenceLengthBefore float64 `json:"avg_sentence_length_before"`
	AvgSentenceLengthAfter  float64 `json:"avg_sentence_length_after"`
}

// Stats computes word counts, percentage reduction and average sentence
// lengths for an original/simplified pair.
func Stats(original, simplified string) SimplificationStats {
	origWords := len(strings.Fields(original))
	simpWords := len(strings.Fields(simplified))

	stats := SimplificationStats{
		OriginalWordCount:       origWords,
		SimplifiedWordCount:     simpWords,
		AvgSentenceLengthBefore: avgSentenceLength(original),
		AvgSentenceLengthAfter:  avgSentenceLength(simplified),
	}
	if origWords > 0 {
		stats.ReductionPct = round1((1 - float64(simpWords)/float64(origWords)) * 100)
	}
	return stats
}

func avgSentenceLength(text string) float64 {
	var sentences []string
	for _, s := range sentenceEndRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, strings.TrimSpace(s))
		}
	}
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	return round1(float64(total) / float64(len(sentences)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
