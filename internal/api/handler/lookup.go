package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tomoki/kanjilens/internal/logger"
	"github.com/tomoki/kanjilens/internal/service"
)

// LookupHandler handles dictionary lookup endpoints.
type LookupHandler struct {
	lookupService *service.LookupService
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(lookupService *service.LookupService) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
	}
}

// Lookup handles GET /api/lookup/:term.
func (h *LookupHandler) Lookup(c *gin.Context) {
	term := c.Param("term")

	record, err := h.lookupService.Lookup(c.Request.Context(), term)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   fmt.Sprintf("No dictionary entry found for %s", term),
			})
			return
		}

		// Transport, upstream-status, and decode failures all land here;
		// the log line carries the detail, the caller gets a generic 500.
		logger.CtxError(c.Request.Context(), "Error looking up term %q: %v", term, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to lookup kanji",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"kanji":   term,
		"data":    record,
	})
}
