package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	pkgLog "pelangi-assistant/pkg/log"
)

func newRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RateLimit(), mw.InternalAuth())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestInternalAuth(t *testing.T) {
	r := newRouter(New(pkgLog.NewNop(), Config{InternalKey: "s3cret"}))

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"right key", "s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.key != "" {
				req.Header.Set(HeaderInternalKey, tt.key)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestInternalAuth_DisabledWithoutKey(t *testing.T) {
	r := newRouter(New(pkgLog.NewNop(), Config{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and refills one token per second.
	r := newRouter(New(pkgLog.NewNop(), Config{RateLimitPerMin: 60}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := range 6 {
		if code := send("1.2.3.4"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, code)
		}
	}
	if code := send("1.2.3.4"); code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", code)
	}
	if code := send("5.6.7.8"); code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "9.9.9.9, 10.0.0.1"}, "127.0.0.1:1234", "9.9.9.9"},
		{"real ip", map[string]string{"X-Real-IP": "8.8.8.8"}, "127.0.0.1:1234", "8.8.8.8"},
		{"remote", nil, "127.0.0.1:1234", "127.0.0.1"},
		{"remote without port", nil, "127.0.0.1", "127.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrace(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(New(pkgLog.NewNop(), Config{}).Trace())
	r.GET("/trace", func(c *gin.Context) { c.String(http.StatusOK, pkgLog.TraceID(c.Request.Context())) })

	tests := []struct {
		name     string
		header   string
		keepSent bool
	}{
		{"caller id kept", "req-123.abc_DEF", true},
		{"missing id generated", "", false},
		{"unsafe id replaced", "bad id\n", false},
		{"overlong id replaced", strings.Repeat("a", maxRequestIDLen+1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/trace", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(HeaderRequestID)
			if got == "" || w.Body.String() != got {
				t.Fatalf("header %q, context %q", got, w.Body.String())
			}
			if tt.keepSent != (got == tt.header) {
				t.Errorf("id = %q, sent %q", got, tt.header)
			}
		})
	}
}
