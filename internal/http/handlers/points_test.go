package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupPointsRouter wires the points handler behind a stub auth middleware.
// The handler is built on a nil pool: every case below must be rejected
// before the store is touched, so reaching the database panics the test.
func setupPointsRouter(authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(nil, HandlerConfig{})

	r.POST("/points", func(c *gin.Context) {
		if authed {
			c.Set("user_id", int64(7))
		}
		c.Next()
	}, h.Points)
	return r
}

func postPoints(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/points", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPoints_Unauthenticated(t *testing.T) {
	r := setupPointsRouter(false)

	w := postPoints(t, r, `{"amount": 10, "type": "add"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestPoints_InvalidInput(t *testing.T) {
	r := setupPointsRouter(true)

	cases := []struct {
		name string
		body string
	}{
		{"non-numeric amount", `{"amount": "abc", "type": "add"}`},
		{"fractional amount", `{"amount": 5.5, "type": "add"}`},
		{"zero amount", `{"amount": 0, "type": "add"}`},
		{"negative amount", `{"amount": -5, "type": "subtract"}`},
		{"missing amount", `{"type": "add"}`},
		{"unknown type", `{"amount": 10, "type": "multiply"}`},
		{"missing type", `{"amount": 10}`},
		{"empty body", `{}`},
	}

	for _, tc := range cases {
		w := postPoints(t, r, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", tc.name, w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "invalid_input") {
			t.Fatalf("%s: expected invalid_input reason, got %s", tc.name, w.Body.String())
		}
	}
}
