package handler

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anjani2611/legal-doc-simplifier/engine"
	"github.com/Anjani2611/legal-doc-simplifier/middleware"
	"github.com/Anjani2611/legal-doc-simplifier/model"
	"github.com/Anjani2611/legal-doc-simplifier/monitoring"
	"github.com/Anjani2611/legal-doc-simplifier/service"
)

type AnalysisHandler struct {
	store *service.DocumentStore
}

func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{store: service.GetDocumentStore()}
}

// Analyze runs the document-level risk scan over an already-processed
// document and stores the findings on it
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	doc := h.documentOr404(c)
	if doc == nil {
		return
	}
	if doc.Text == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Document has no extracted text yet"})
		return
	}

	start := time.Now()
	risks := engine.DetectRisks(doc.Text)
	monitoring.RecordAnalysis(time.Since(start), "risk_scan")

	h.store.UpdateRisks(doc.ID, risks)
	for _, r := range risks {
		monitoring.RisksDetectedTotal.WithLabelValues(r.RiskLevel).Inc()
	}

	avgScore := 0.0
	if len(risks) > 0 {
		total := 0
		for _, r := range risks {
			total += r.RiskScore
		}
		avgScore = math.Round(float64(total)/float64(len(risks))*100) / 100
	}

	c.JSON(http.StatusOK, gin.H{
		"document_id":    doc.ID,
		"filename":       doc.Filename,
		"text_length":    len(doc.Text),
		"word_count":     len(strings.Fields(doc.Text)),
		"risks_detected": len(risks),
		"risks":          risks,
		"avg_risk_score": avgScore,
	})
}

// Risks returns previously detected risks, optionally filtered by level
func (h *AnalysisHandler) Risks(c *gin.Context) {
	doc := h.documentOr404(c)
	if doc == nil {
		return
	}

	risks := doc.Risks
	if level := strings.ToLower(c.Query("risk_level")); level != "" {
		filtered := make([]model.RiskFinding, 0, len(risks))
		for _, r := range risks {
			if r.RiskLevel == level {
				filtered = append(filtered, r)
			}
		}
		risks = filtered
	}
	if risks == nil {
		risks = []model.RiskFinding{}
	}

	c.JSON(http.StatusOK, gin.H{
		"document_id": doc.ID,
		"total_risks": len(risks),
		"risks":       risks,
	})
}

func (h *AnalysisHandler) documentOr404(c *gin.Context) *model.Document {
	doc := h.store.Get(c.Param("id"))
	if doc == nil || doc.Tenant != middleware.GetTenant(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return nil
	}
	return doc
}
