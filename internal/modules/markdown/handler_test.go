package markdown

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(zap.NewNop()).RegisterRoutes(api, middleware.Auth())
	return r
}

func render(t *testing.T, r *gin.Engine, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/markdown/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, err := jwt.Sign("admin-1", "admin@example.com", time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRender(t *testing.T) {
	r := newTestRouter()

	t.Run("requires auth", func(t *testing.T) {
		if w := render(t, r, `{"text":"# Hi"}`, false); w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("renders GFM", func(t *testing.T) {
		w := render(t, r, `{"text":"# Title\n\n~~old~~ and a [link](https://example.com)"}`, true)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				HTML string `json:"html"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"<h1", "<del>", `<a href="https://example.com"`} {
			if !strings.Contains(resp.Data.HTML, want) {
				t.Errorf("html missing %q: %s", want, resp.Data.HTML)
			}
		}
	})

	t.Run("empty text rejected", func(t *testing.T) {
		if w := render(t, r, `{}`, true); w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})
}
