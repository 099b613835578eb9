package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFail_WritesEnvelopeAndAborts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		fail(c, http.StatusInternalServerError, "Failed to fetch quote", errors.New("underlying"))
		c.Set("after", true) // abort must stop the chain before later middleware runs
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Error != "Failed to fetch quote" {
		t.Fatalf("unexpected envelope: %+v", er)
	}
	// The cause must stay server-side.
	if got := w.Body.String(); len(got) > 0 && (got != `{"error":"Failed to fetch quote"}`) {
		t.Fatalf("body leaked extra detail: %s", got)
	}
}

func TestFail_ClientErrorsAreNotLoggedAsServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/bad", func(c *gin.Context) {
		Fail(c, http.StatusBadRequest, "Quote text and author are required")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Error != "Quote text and author are required" {
		t.Fatalf("unexpected envelope: %+v", er)
	}
}
