// Quote HTTP handlers.
//
// This file exposes REST endpoints for quote resources:
//   - GET  /quotes/random               (one uniformly random quote)
//   - GET  /quotes                      (all quotes, ascending id)
//   - GET  /quotes/category/{category}  (random quote in a category)
//   - POST /quotes                      (user submission)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into the fixed HTTP response bodies of the
// public contract.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudquotes/go-quotes-backend/internal/domain"
	"github.com/cloudquotes/go-quotes-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// QuoteService defines quote operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QuoteService interface {
	// Random returns one quote selected uniformly at random.
	Random(ctx context.Context) (*domain.Quote, error)
	// RandomByCategory returns one random quote whose category matches exactly.
	RandomByCategory(ctx context.Context, category string) (*domain.Quote, error)
	// List returns every quote ordered by ascending id.
	List(ctx context.Context) ([]domain.Quote, error)
	// Submit validates and stores a user-submitted quote.
	Submit(ctx context.Context, text, author, category string) (*domain.Quote, error)
}

// FavoriteService defines favorite operations consumed by HTTP handlers.
type FavoriteService interface {
	// Add records a favorite for a quote on behalf of a named user.
	Add(ctx context.Context, quoteID int, userName string) (*domain.Favorite, error)
	// Count returns the number of favorites recorded for a quote.
	Count(ctx context.Context, quoteID int) (int64, error)
}

// StatsService defines the aggregate statistics operation.
type StatsService interface {
	// Overview returns quote count, favorite count, and the distinct category set.
	Overview(ctx context.Context) (totalQuotes, totalFavorites int64, categories []string, err error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for quotes, favorites, statistics, and
// health. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	quoteSvc QuoteService
	favSvc   FavoriteService
	statsSvc StatsService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(quoteSvc QuoteService, favSvc FavoriteService, statsSvc StatsService) *Handlers {
	return &Handlers{quoteSvc: quoteSvc, favSvc: favSvc, statsSvc: statsSvc}
}

//
// DTOs
//

// SubmitQuoteRequest is the JSON payload for submitting a quote.
//
// Text and author must be present and non-empty; category is optional and
// defaults to "general". The fields carry no binding constraints on purpose:
// the presence check is applied after binding so that both missing fields
// yield the single documented error message.
type SubmitQuoteRequest struct {
	Text     string `json:"text"     example:"First, solve the problem. Then, write the code."`
	Author   string `json:"author"   example:"John Johnson"`
	Category string `json:"category" example:"programming"`
}

// SubmitQuoteResponse wraps a newly created quote with a confirmation
// message.
type SubmitQuoteResponse struct {
	Message string       `json:"message" example:"Quote added successfully!"`
	Quote   domain.Quote `json:"quote"`
}

const (
	msgQuoteFieldsRequired = "Quote text and author are required"
	msgNoQuotes            = "No quotes found"
	msgNoQuotesInCategory  = "No quotes found in this category"
	msgFetchQuoteFailed    = "Failed to fetch quote"
	msgFetchQuotesFailed   = "Failed to fetch quotes"
	msgAddQuoteFailed      = "Failed to add quote"
)

//
// Handlers
//

// RandomQuote godoc
// @ID          randomQuote
// @Summary     Get a random quote
// @Description Returns one quote selected uniformly at random from all stored quotes.
// @Tags        Quotes
// @Produce     json
// @Success     200  {object}  domain.Quote
// @Failure     404  {object}  handlers.ErrorResponse "No quotes stored"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /quotes/random [get]
func (h *Handlers) RandomQuote(c *gin.Context) {
	q, err := h.quoteSvc.Random(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoQuotes) {
			fail(c, http.StatusNotFound, msgNoQuotes, nil)
			return
		}
		fail(c, http.StatusInternalServerError, msgFetchQuoteFailed, err)
		return
	}
	ok(c, http.StatusOK, q)
}

// ListQuotes godoc
// @ID          listQuotes
// @Summary     List all quotes
// @Description Returns every stored quote ordered by ascending id.
// @Tags        Quotes
// @Produce     json
// @Success     200  {array}   domain.Quote
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /quotes [get]
func (h *Handlers) ListQuotes(c *gin.Context) {
	quotes, err := h.quoteSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, msgFetchQuotesFailed, err)
		return
	}
	if quotes == nil {
		quotes = []domain.Quote{} // marshal as [], not null
	}
	ok(c, http.StatusOK, quotes)
}

// QuoteByCategory godoc
// @ID          quoteByCategory
// @Summary     Get a random quote from a category
// @Description Returns one random quote whose category exactly equals the path parameter (case-sensitive).
// @Tags        Quotes
// @Produce     json
// @Param       category  path  string  true  "Category name"  example(cloud)
// @Success     200  {object}  domain.Quote
// @Failure     404  {object}  handlers.ErrorResponse "No quotes in this category"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /quotes/category/{category} [get]
func (h *Handlers) QuoteByCategory(c *gin.Context) {
	category := c.Param("category")

	q, err := h.quoteSvc.RandomByCategory(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, services.ErrNoQuotes) {
			fail(c, http.StatusNotFound, msgNoQuotesInCategory, nil)
			return
		}
		fail(c, http.StatusInternalServerError, msgFetchQuoteFailed, err)
		return
	}
	ok(c, http.StatusOK, q)
}

// SubmitQuote godoc
// @ID          submitQuote
// @Summary     Submit a new quote
// @Description Stores a user-submitted quote. Category defaults to "general" when omitted.
// @Tags        Quotes
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SubmitQuoteRequest  true  "Quote payload"
// @Success     201  {object}  handlers.SubmitQuoteResponse
// @Failure     400  {object}  handlers.ErrorResponse "Missing text or author"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /quotes [post]
func (h *Handlers) SubmitQuote(c *gin.Context) {
	var req SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgQuoteFieldsRequired, nil)
		return
	}

	q, err := h.quoteSvc.Submit(c.Request.Context(), req.Text, req.Author, req.Category)
	if err != nil {
		if errors.Is(err, services.ErrQuoteFieldsRequired) {
			fail(c, http.StatusBadRequest, msgQuoteFieldsRequired, nil)
			return
		}
		fail(c, http.StatusInternalServerError, msgAddQuoteFailed, err)
		return
	}

	ok(c, http.StatusCreated, SubmitQuoteResponse{
		Message: "Quote added successfully!",
		Quote:   *q,
	})
}
