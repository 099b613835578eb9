// Favorite HTTP handlers.
//
// This file exposes the REST endpoints for quote favorites:
//   - POST /favorites                 (record a favorite)
//   - GET  /favorites/count/{quoteId} (favorite count for a quote)
//
// Handlers are transport-thin: they validate input, delegate to application
// services, and translate service errors into the fixed response bodies of
// the public contract. A favorite referencing a missing quote is rejected by
// the store's foreign-key constraint and reported as a generic internal
// error, indistinguishable from any other store failure.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
	"github.com/cloudquotes/go-quotes-backend/internal/services"
)

// SubmitFavoriteRequest is the JSON payload for favoriting a quote.
//
// Both fields are required; a quote_id of 0 counts as absent. The fields
// carry no binding constraints: the presence check happens after binding so
// that every rejection carries the single documented error message.
type SubmitFavoriteRequest struct {
	QuoteID  int    `json:"quote_id"  example:"3"`
	UserName string `json:"user_name" example:"alice"`
}

// SubmitFavoriteResponse wraps a newly created favorite with a confirmation
// message.
type SubmitFavoriteResponse struct {
	Message  string          `json:"message" example:"Quote favorited!"`
	Favorite domain.Favorite `json:"favorite"`
}

// FavoriteCountResponse reports the number of favorites for one quote.
type FavoriteCountResponse struct {
	Count int64 `json:"count" example:"3"`
}

const (
	msgFavoriteFieldsRequired = "Quote ID and user name are required"
	msgFavoriteFailed         = "Failed to favorite quote"
	msgFavoriteCountFailed    = "Failed to fetch favorite count"
)

// SubmitFavorite godoc
// @ID          submitFavorite
// @Summary     Favorite a quote
// @Description Records a named user's favorite for a quote. The same user may favorite the same quote multiple times.
// @Tags        Favorites
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SubmitFavoriteRequest  true  "Favorite payload"
// @Success     201  {object}  handlers.SubmitFavoriteResponse
// @Failure     400  {object}  handlers.ErrorResponse "Missing quote id or user name"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error (including unknown quote id)"
// @Router      /favorites [post]
func (h *Handlers) SubmitFavorite(c *gin.Context) {
	var req SubmitFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgFavoriteFieldsRequired, nil)
		return
	}

	f, err := h.favSvc.Add(c.Request.Context(), req.QuoteID, req.UserName)
	if err != nil {
		if errors.Is(err, services.ErrFavoriteFieldsRequired) {
			fail(c, http.StatusBadRequest, msgFavoriteFieldsRequired, nil)
			return
		}
		fail(c, http.StatusInternalServerError, msgFavoriteFailed, err)
		return
	}

	ok(c, http.StatusCreated, SubmitFavoriteResponse{
		Message:  "Quote favorited!",
		Favorite: *f,
	})
}

// FavoriteCount godoc
// @ID          favoriteCount
// @Summary     Favorite count for a quote
// @Description Returns how many favorites a quote has. An unknown or non-numeric id yields count 0; absence is not an error.
// @Tags        Favorites
// @Produce     json
// @Param       quoteId  path  string  true  "Quote ID"  example(3)
// @Success     200  {object}  handlers.FavoriteCountResponse
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /favorites/count/{quoteId} [get]
func (h *Handlers) FavoriteCount(c *gin.Context) {
	quoteID, err := strconv.Atoi(c.Param("quoteId"))
	if err != nil {
		// Non-numeric id: no matching rows, so the count is 0.
		ok(c, http.StatusOK, FavoriteCountResponse{Count: 0})
		return
	}

	n, err := h.favSvc.Count(c.Request.Context(), quoteID)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgFavoriteCountFailed, err)
		return
	}
	ok(c, http.StatusOK, FavoriteCountResponse{Count: n})
}
