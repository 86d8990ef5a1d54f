package service

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

const exportFormatVersion = "1.0"

// exportEnvelope is the stable download format for analysis results
type exportEnvelope struct {
	Metadata exportMetadata `json:"metadata"`
	Analysis exportAnalysis `json:"analysis"`
	Summary  string         `json:"summary"`
	Clauses  []exportClause `json:"clauses"`
	Risks    []exportRisk   `json:"risks"`
}

type exportMetadata struct {
	Filename      string `json:"filename"`
	UploadTime    string `json:"upload_time"`
	ExportTime    string `json:"export_time"`
	FormatVersion string `json:"format_version"`
}

type exportAnalysis struct {
	TotalClauses      int  `json:"total_clauses"`
	TotalRisks        int  `json:"total_risks"`
	HasRiskAssessment bool `json:"has_risk_assessment"`
}

type exportClause struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Original   string `json:"original"`
	Simplified string `json:"simplified"`
	RiskLevel  string `json:"risk_level"`
}

type exportRisk struct {
	Level          string `json:"level"`
	Score          int    `json:"score"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// ExportJSON renders a completed document as a downloadable JSON report
func ExportJSON(doc *model.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("no document to export")
	}

	envelope := exportEnvelope{
		Metadata: exportMetadata{
			Filename:      filepath.Base(doc.Filename),
			UploadTime:    doc.CreatedAt.Format(time.RFC3339),
			ExportTime:    time.Now().Format(time.RFC3339),
			FormatVersion: exportFormatVersion,
		},
		Clauses: []exportClause{},
		Risks:   []exportRisk{},
	}

	if doc.Result != nil {
		envelope.Summary = doc.Result.Summary
		envelope.Analysis.TotalClauses = len(doc.Result.Clauses)
		for _, clause := range doc.Result.Clauses {
			envelope.Clauses = append(envelope.Clauses, exportClause{
				ID:         clause.ID,
				Type:       clause.Type,
				Original:   clause.OriginalText,
				Simplified: clause.Explanation.Summary,
				RiskLevel:  clause.RiskLevel,
			})
		}
	}

	envelope.Analysis.TotalRisks = len(doc.Risks)
	envelope.Analysis.HasRiskAssessment = len(doc.Risks) > 0
	for _, risk := range doc.Risks {
		envelope.Risks = append(envelope.Risks, exportRisk{
			Level:          risk.RiskLevel,
			Score:          risk.RiskScore,
			Description:    risk.Description,
			Recommendation: risk.Recommendation,
		})
	}

	return json.MarshalIndent(envelope, "", "  ")
}
