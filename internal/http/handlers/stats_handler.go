// Statistics and health HTTP handlers.
//
// This file exposes:
//   - GET /stats   (aggregate statistics over quotes and favorites)
//   - GET /health  (liveness check, no store access)
//
// The statistics endpoint issues three independent reads but treats them as
// one logical operation: if any read fails the whole request fails with a
// generic internal error.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatsResponse reports aggregate statistics about the stored quotes.
type StatsResponse struct {
	TotalQuotes    int64    `json:"total_quotes"    example:"15"`
	TotalFavorites int64    `json:"total_favorites" example:"4"`
	Categories     []string `json:"categories"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string `json:"status"    example:"healthy"`
	Message   string `json:"message"   example:"CloudQuotes API is running!"`
	Timestamp string `json:"timestamp" example:"2025-06-01T12:00:00Z"`
}

const msgStatsFailed = "Failed to fetch statistics"

// Stats godoc
// @ID          stats
// @Summary     Aggregate statistics
// @Description Returns total quotes, total favorites, and the distinct category set (order unspecified).
// @Tags        Stats
// @Produce     json
// @Success     200  {object}  handlers.StatsResponse
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /stats [get]
func (h *Handlers) Stats(c *gin.Context) {
	quotes, favorites, categories, err := h.statsSvc.Overview(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, msgStatsFailed, err)
		return
	}
	if categories == nil {
		categories = []string{} // marshal as [], not null
	}
	ok(c, http.StatusOK, StatsResponse{
		TotalQuotes:    quotes,
		TotalFavorites: favorites,
		Categories:     categories,
	})
}

// Health godoc
// @ID          health
// @Summary     Liveness check
// @Description Confirms the API is up. Performs no store access.
// @Tags        Health
// @Produce     json
// @Success     200  {object}  handlers.HealthResponse
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ok(c, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Message:   "CloudQuotes API is running!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
