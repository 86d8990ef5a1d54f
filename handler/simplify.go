package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Anjani2611/legal-doc-simplifier/config"
	"github.com/Anjani2611/legal-doc-simplifier/engine"
	"github.com/Anjani2611/legal-doc-simplifier/middleware"
	"github.com/Anjani2611/legal-doc-simplifier/model"
	"github.com/Anjani2611/legal-doc-simplifier/monitoring"
	"github.com/Anjani2611/legal-doc-simplifier/service"
)

type SimplifyHandler struct {
	pipeline *engine.Pipeline
	store    *service.DocumentStore
	webhooks *service.WebhookManager
	config   *config.EngineConfig
}

func NewSimplifyHandler(pipeline *engine.Pipeline, webhooks *service.WebhookManager, cfg *config.EngineConfig) *SimplifyHandler {
	return &SimplifyHandler{
		pipeline: pipeline,
		store:    service.GetDocumentStore(),
		webhooks: webhooks,
		config:   cfg,
	}
}

type SimplifyRequest struct {
	Text    string          `json:"text"`
	Options SimplifyOptions `json:"options"`
}

type SimplifyOptions struct {
	TargetStyle       string `json:"target_style"`
	MaxWordsPerClause int    `json:"max_words_per_clause"`
}

// SimplifyText runs the full processing pipeline over raw text and returns
// the result JSON unchanged. Internal failures map to transport error codes;
// the result shape itself is never reinterpreted here.
func (h *SimplifyHandler) SimplifyText(c *gin.Context) {
	start := time.Now()

	var req SimplifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Text must not be empty"})
		return
	}

	if len(req.Text) > h.config.MaxDocSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": "DOC_TOO_LONG",
			"message": fmt.Sprintf(
				"Document exceeds %d characters. Please split into smaller sections.",
				h.config.MaxDocSize),
			"max_size":     h.config.MaxDocSize,
			"current_size": len(req.Text),
		})
		return
	}

	opts := engine.Options{
		TargetStyle:       req.Options.TargetStyle,
		MaxWordsPerClause: req.Options.MaxWordsPerClause,
	}
	if opts.TargetStyle == "" {
		opts.TargetStyle = h.config.TargetStyle
	}
	if opts.MaxWordsPerClause == 0 {
		opts.MaxWordsPerClause = h.config.MaxWordsPerClause
	}

	result, err := h.pipeline.Process(c.Request.Context(), req.Text, opts)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyInput) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Text must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "MODEL_ERROR",
			"message": "Simplification failed, please try again",
		})
		return
	}

	duration := time.Since(start)
	monitoring.RecordSimplification(duration, "text")

	// Keep a record so the result can be fetched and exported later
	doc := &model.Document{
		ID:         uuid.New().String(),
		Filename:   "inline-text",
		Tenant:     middleware.GetTenant(c),
		SourceType: service.SourceText,
		TextLength: len(req.Text),
		Status:     model.StatusCompleted,
		Text:       req.Text,
		Result:     result,
		CreatedAt:  time.Now(),
	}
	h.store.Save(doc)
	monitoring.RecordDocumentOperation("simplify")

	h.webhooks.Trigger(c.Request.Context(), "document.simplified", doc.ID, gin.H{
		"duration_ms": duration.Milliseconds(),
		"clauses":     len(result.Clauses),
	})

	c.JSON(http.StatusOK, result)
}
