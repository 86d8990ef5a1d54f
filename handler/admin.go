package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anjani2611/legal-doc-simplifier/engine"
)

// Tags accepted for manual known-bad marks
var allowedBadTags = map[string]bool{
	"too_long":      true,
	"too_technical": true,
	"struct_lost":   true,
	"hallucination": true,
	"other":         true,
}

type AdminHandler struct {
	badStore *engine.KnownBadStore
}

func NewAdminHandler(badStore *engine.KnownBadStore) *AdminHandler {
	return &AdminHandler{badStore: badStore}
}

type MarkBadRequest struct {
	InputText      string `json:"input_text" binding:"required"`
	Tag            string `json:"tag" binding:"required"`
	ShortComment   string `json:"short_comment" binding:"required"`
	OutputSnapshot string `json:"output_snapshot"`
}

// MarkBad appends a manually flagged output to the known-bad log for error
// analysis and future evaluation sets
func (h *AdminHandler) MarkBad(c *gin.Context) {
	var req MarkBadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !allowedBadTags[req.Tag] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tag: " + req.Tag})
		return
	}

	h.badStore.Record(req.InputText, req.Tag, req.ShortComment, req.OutputSnapshot)

	c.JSON(http.StatusOK, gin.H{
		"status": "recorded",
		"tag":    req.Tag,
	})
}
