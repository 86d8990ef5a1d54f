package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Anjani2611/legal-doc-simplifier/config"
	"github.com/Anjani2611/legal-doc-simplifier/engine"
	"github.com/Anjani2611/legal-doc-simplifier/middleware"
	"github.com/Anjani2611/legal-doc-simplifier/model"
	"github.com/Anjani2611/legal-doc-simplifier/monitoring"
	"github.com/Anjani2611/legal-doc-simplifier/pkg/logger"
	"github.com/Anjani2611/legal-doc-simplifier/service"
)

type DocumentHandler struct {
	pipeline *engine.Pipeline
	store    *service.DocumentStore
	archive  *service.ArchiveService // nil when archiving is disabled
	webhooks *service.WebhookManager
	config   *config.EngineConfig
}

func NewDocumentHandler(pipeline *engine.Pipeline, archive *service.ArchiveService, webhooks *service.WebhookManager, cfg *config.EngineConfig) *DocumentHandler {
	return &DocumentHandler{
		pipeline: pipeline,
		store:    service.GetDocumentStore(),
		archive:  archive,
		webhooks: webhooks,
		config:   cfg,
	}
}

// Upload accepts a PDF, DOCX or plain-text file, extracts its text and
// processes it asynchronously
func (h *DocumentHandler) Upload(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	sourceType, err := service.DetectSourceType(header.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF, DOCX and text files are allowed"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	documentID := uuid.New().String()

	doc := &model.Document{
		ID:         documentID,
		Filename:   header.Filename,
		Tenant:     tenant,
		SourceType: sourceType,
		Status:     model.StatusPending,
		CreatedAt:  time.Now(),
	}

	if h.archive != nil {
		objectName := h.archive.ObjectName(tenant, documentID, header.Filename)
		contentType := header.Header.Get("Content-Type")
		if err := h.archive.ArchiveDocument(c.Request.Context(), objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
			// Archiving is best-effort; processing continues without it
			slog.Warn("failed to archive upload", "document_id", documentID, "error", err)
		} else if url, err := h.archive.PresignedURL(c.Request.Context(), objectName); err == nil {
			doc.ArchiveURL = url
		}
	}

	h.store.Save(doc)
	monitoring.RecordDocumentOperation("upload")

	go h.processDocument(doc, data)

	c.JSON(http.StatusOK, gin.H{
		"id":          documentID,
		"filename":    header.Filename,
		"source_type": sourceType,
		"status":      model.StatusPending,
	})
}

// processDocument runs extraction and the pipeline off the request goroutine
func (h *DocumentHandler) processDocument(doc *model.Document, data []byte) {
	ctx := context.WithValue(context.Background(), logger.DocumentIDKey, doc.ID)
	log := logger.WithContext(ctx)
	start := time.Now()

	h.store.UpdateStatus(doc.ID, model.StatusProcessing, "")

	text, err := service.ExtractText(data, doc.SourceType)
	if err != nil {
		log.Error("text extraction failed", "error", err)
		h.store.UpdateStatus(doc.ID, model.StatusFailed, fmt.Sprintf("extraction failed: %v", err))
		h.webhooks.Trigger(ctx, "document.failed", doc.ID, gin.H{"error": err.Error()})
		return
	}

	if len(text) > h.config.MaxDocSize {
		msg := fmt.Sprintf("document exceeds %d characters", h.config.MaxDocSize)
		h.store.UpdateStatus(doc.ID, model.StatusFailed, msg)
		h.webhooks.Trigger(ctx, "document.failed", doc.ID, gin.H{"error": msg})
		return
	}

	doc.Text = text
	doc.TextLength = len(text)

	result, err := h.pipeline.Process(ctx, text, engine.Options{
		TargetStyle:       h.config.TargetStyle,
		MaxWordsPerClause: h.config.MaxWordsPerClause,
	})
	if err != nil {
		log.Error("pipeline failed", "error", err)
		h.store.UpdateStatus(doc.ID, model.StatusFailed, err.Error())
		h.webhooks.Trigger(ctx, "document.failed", doc.ID, gin.H{"error": err.Error()})
		return
	}

	h.store.UpdateResult(doc.ID, result)
	monitoring.RecordSimplification(time.Since(start), doc.SourceType)

	h.webhooks.Trigger(ctx, "document.completed", doc.ID, gin.H{
		"clauses":     len(result.Clauses),
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

// List returns all documents for the caller's tenant
func (h *DocumentHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	documents := h.store.GetByTenant(tenant)
	if documents == nil {
		documents = []*model.Document{}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     len(documents),
		"documents": documents,
	})
}

// Get returns one document with its processing result
func (h *DocumentHandler) Get(c *gin.Context) {
	doc := h.tenantDocument(c)
	if doc == nil {
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Export downloads the analysis report as JSON
func (h *DocumentHandler) Export(c *gin.Context) {
	doc := h.tenantDocument(c)
	if doc == nil {
		return
	}

	data, err := service.ExportJSON(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export document"})
		return
	}

	monitoring.RecordDocumentOperation("export")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-analysis.json", doc.ID))
	c.Data(http.StatusOK, "application/json", data)
}

// Delete removes a document and its archived upload
func (h *DocumentHandler) Delete(c *gin.Context) {
	doc := h.tenantDocument(c)
	if doc == nil {
		return
	}

	h.store.Delete(doc.ID)
	if h.archive != nil {
		objectName := h.archive.ObjectName(doc.Tenant, doc.ID, doc.Filename)
		if err := h.archive.Remove(c.Request.Context(), objectName); err != nil {
			slog.Warn("failed to remove archived upload", "document_id", doc.ID, "error", err)
		}
	}

	monitoring.RecordDocumentOperation("delete")

	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": doc.ID})
}

// tenantDocument fetches the document from the path parameter, writing a 404
// when it does not exist or belongs to another tenant
func (h *DocumentHandler) tenantDocument(c *gin.Context) *model.Document {
	doc := h.store.Get(c.Param("id"))
	if doc == nil || doc.Tenant != middleware.GetTenant(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return nil
	}
	return doc
}
