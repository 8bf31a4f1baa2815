package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recipeshare/internal/service"
)

// listActivity returns catalog events, optionally filtered by
// ?from=RFC3339&to=RFC3339&type=RECIPE_CREATED.
func (h *Handler) listActivity(c *gin.Context) {
	var filter service.ActivityFilter

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp, want RFC3339"})
			return
		}
		filter.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp, want RFC3339"})
			return
		}
		filter.To = t
	}
	filter.Type = c.Query("type")

	events, err := h.services.Activity.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}
