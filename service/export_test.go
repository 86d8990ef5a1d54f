package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

func TestExportJSON(t *testing.T) {
	doc := &model.Document{
		ID:        "doc-1",
		Filename:  "uploads/lease.pdf",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Result: &model.PipelineResult{
			Summary: "The tenant must pay rent by the first of each month.",
			Clauses: []model.ClauseResult{
				{
					ID:           "clause_1",
					Type:         model.TypePaymentObligation,
					OriginalText: "The Tenant shall pay rent on or before the first day of each month.",
					Explanation:  model.Explanation{Summary: "The Tenant must pay rent by the first of each month."},
					RiskLevel:    model.RiskMedium,
				},
			},
		},
		Risks: []model.RiskFinding{
			{RiskLevel: model.RiskLow, RiskScore: 25, Description: "Payment terms specified", Recommendation: "Monitor but generally acceptable"},
		},
	}

	data, err := ExportJSON(doc)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}

	metadata := envelope["metadata"].(map[string]any)
	if metadata["filename"] != "lease.pdf" {
		t.Errorf("Expected base filename, got %v", metadata["filename"])
	}
	if metadata["format_version"] != "1.0" {
		t.Errorf("Expected format_version 1.0, got %v", metadata["format_version"])
	}

	analysis := envelope["analysis"].(map[string]any)
	if analysis["total_clauses"].(float64) != 1 {
		t.Errorf("Expected 1 clause, got %v", analysis["total_clauses"])
	}
	if analysis["has_risk_assessment"] != true {
		t.Error("Expected has_risk_assessment true")
	}

	clauses := envelope["clauses"].([]any)
	clause := clauses[0].(map[string]any)
	if clause["simplified"] != "The Tenant must pay rent by the first of each month." {
		t.Errorf("Expected simplified text, got %v", clause["simplified"])
	}
}

func TestExportJSONNoResult(t *testing.T) {
	doc := &model.Document{
		ID:        "doc-2",
		Filename:  "empty.txt",
		CreatedAt: time.Now(),
	}

	data, err := ExportJSON(doc)
	if err != nil {
		t.Fatalf("Expected success for pending document, got %v", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}

	// Lists serialize as arrays even with nothing to export
	if _, ok := envelope["clauses"].([]any); !ok {
		t.Errorf("Expected clauses array, got %T", envelope["clauses"])
	}
	if envelope["analysis"].(map[string]any)["has_risk_assessment"] != false {
		t.Error("Expected has_risk_assessment false")
	}
}

func TestExportJSONNilDocument(t *testing.T) {
	if _, err := ExportJSON(nil); err == nil {
		t.Error("Expected error for nil document")
	}
}
