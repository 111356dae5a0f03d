package security

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h gin.HandlerFunc, method, origin string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(h)
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.OPTIONS("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(method, "/x", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_Wildcard(t *testing.T) {
	w := serve(CORS([]string{"*"}), http.MethodGet, "http://anywhere.test")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Whitelist(t *testing.T) {
	h := CORS([]string{"http://ok.test"})

	w := serve(h, http.MethodGet, "http://ok.test")
	assert.Equal(t, "http://ok.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = serve(h, http.MethodGet, "http://evil.test")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	w := serve(CORS([]string{"*"}), http.MethodOptions, "http://anywhere.test")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimiter_PerKey(t *testing.T) {
	l := newRateLimiter(2, time.Hour)

	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))
	assert.True(t, l.allow("b"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	l := newRateLimiter(1, time.Second)
	now := time.Now()
	l.nowFunc = func() time.Time { return now }

	l.allow("a")
	l.nowFunc = func() time.Time { return now.Add(2 * time.Minute) }
	l.sweep()

	assert.Empty(t, l.store)
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	l := newRateLimiter(1, time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper still running after cancel")
	}
}

func TestSecure_Headers(t *testing.T) {
	w := serve(Secure(), http.MethodGet, "")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
