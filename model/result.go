package model

// Clause type labels inferred by the clause extractor
const (
	TypePaymentObligation = "payment_obligation"
	TypeLiability         = "liability"
	TypeTermination       = "termination"
	TypeConfidentiality   = "confidentiality"
	TypeWarranty          = "warranty"
	TypeCondition         = "condition"
	TypeDefinition        = "definition"
	TypeGeneralObligation = "general_obligation"
	TypeGeneral           = "general"
)

// RiskLevel constants
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical" // emitted only by the document-level risk detector
)

// Clause is a single segmented unit of a legal document
type Clause struct {
	ID           string `json:"id"`
	OriginalText string `json:"original_text"`
	Type         string `json:"type"`
}

// Entities holds the structured facts extracted from one clause
type Entities struct {
	Party1     *string  `json:"party_1"`
	Party2     *string  `json:"party_2"`
	Amount     *string  `json:"amount"`
	Deadline   *string  `json:"deadline"`
	Conditions bool     `json:"conditions"`
	Numerics   []string `json:"numerics"`
}

// Explanation is the human-facing plain-language breakdown of a clause
type Explanation struct {
	Summary        string `json:"summary"`
	WhoIsProtected string `json:"who_is_protected"`
	WhatIsCovered  string `json:"what_is_covered"`
	Exceptions     string `json:"exceptions"`
}

// ClauseResult is one fully processed clause
type ClauseResult struct {
	ID           string      `json:"id"`
	Type         string      `json:"type"`
	OriginalText string      `json:"original_text"`
	Explanation  Explanation `json:"explanation"`
	RiskLevel    string      `json:"risk_level"`
	KeyEntities  Entities    `json:"key_entities"`
	Warnings     []string    `json:"warnings"`
}

// PipelineResult is the sole external contract of the processing engine
type PipelineResult struct {
	Summary  string         `json:"summary"`
	Clauses  []ClauseResult `json:"clauses"`
	Warnings []string       `json:"warnings"`
}

// KnownBadRecord is one line of the append-only known-bad log
type KnownBadRecord struct {
	ID                  string `json:"id"`
	Tag                 string `json:"tag"`
	ShortComment        string `json:"short_comment"`
	OriginalTextPreview string `json:"original_text_preview"`
	OutputJSONPreview   string `json:"output_json_preview"`
	CreatedAt           string `json:"created_at"`
}

// RiskFinding is one hit from the document-level risk pattern scan
type RiskFinding struct {
	RiskLevel      string `json:"risk_level"`
	RiskScore      int    `json:"risk_score"`
	Description    string `json:"description"`
	ClauseText     string `json:"clause_text"`
	Recommendation string `json:"recommendation"`
}
