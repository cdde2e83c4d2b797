package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCSRFOriginCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	allowedOrigins := []string{
		"http://localhost:5173",
		"https://house-hunter.example.com",
	}

	tests := []struct {
		name       string
		method     string
		origin     string
		referer    string
		wantStatus int
	}{
		// Safe methods pass without validation
		{
			name:       "GET request passes without headers",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:       "HEAD request passes without headers",
			method:     http.MethodHead,
			wantStatus: http.StatusOK,
		},
		{
			name:       "OPTIONS request passes without headers",
			method:     http.MethodOptions,
			wantStatus: http.StatusOK,
		},
		// POST with Origin
		{
			name:       "POST with valid origin passes",
			method:     http.MethodPost,
			origin:     "http://localhost:5173",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with valid origin (trailing slash) passes",
			method:     http.MethodPost,
			origin:     "http://localhost:5173/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with valid origin (case insensitive) passes",
			method:     http.MethodPost,
			origin:     "HTTP://LOCALHOST:5173",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with invalid origin blocked",
			method:     http.MethodPost,
			origin:     "https://evil.com",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "POST with different port blocked",
			method:     http.MethodPost,
			origin:     "http://localhost:9999",
			wantStatus: http.StatusForbidden,
		},
		// Referer fallback when no Origin
		{
			name:       "POST with valid referer passes",
			method:     http.MethodPost,
			referer:    "http://localhost:5173/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with invalid referer blocked",
			method:     http.MethodPost,
			referer:    "https://evil.com/attack",
			wantStatus: http.StatusForbidden,
		},
		// Non-browser clients carry neither header and pass through
		{
			name:       "POST without origin or referer passes",
			method:     http.MethodPost,
			wantStatus: http.StatusOK,
		},
		// Origin: null (privacy mode, file://, cross-origin redirects)
		{
			name:       "POST with Origin null blocked",
			method:     http.MethodPost,
			origin:     "null",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "DELETE with valid origin passes",
			method:     http.MethodDelete,
			origin:     "https://house-hunter.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "PATCH with invalid origin blocked",
			method:     http.MethodPatch,
			origin:     "https://evil.com",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)

			r.Use(CSRFOriginCheck(allowedOrigins))
			r.Any("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}

			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("CSRFOriginCheck() status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRefererOrigin(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		want   string
	}{
		{
			name:   "full URL",
			rawURL: "https://example.com/path/to/page?query=1",
			want:   "https://example.com",
		},
		{
			name:   "URL with port",
			rawURL: "http://localhost:5173/login",
			want:   "http://localhost:5173",
		},
		{
			name:   "path only (no scheme)",
			rawURL: "not-a-url",
			want:   "",
		},
		{
			name:   "empty string",
			rawURL: "",
			want:   "",
		},
		{
			name:   "null string",
			rawURL: "null",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := refererOrigin(tt.rawURL)
			if got != tt.want {
				t.Errorf("refererOrigin(%q) = %q, want %q", tt.rawURL, got, tt.want)
			}
		})
	}
}
