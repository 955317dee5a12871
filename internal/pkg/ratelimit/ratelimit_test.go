package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowAndDeny(t *testing.T) {
	lim := New(2, time.Minute)

	require.True(t, lim.Allow("k"))
	require.True(t, lim.Allow("k"))
	require.False(t, lim.Allow("k"))

	// Other keys do not contend
	require.True(t, lim.Allow("other"))
}

func TestLimiter_Remaining(t *testing.T) {
	lim := New(3, time.Minute)
	require.Equal(t, 3, lim.Remaining("k"))
	lim.Allow("k")
	require.Equal(t, 2, lim.Remaining("k"))
}

func TestLimiter_WindowExpiry(t *testing.T) {
	lim := New(1, 10*time.Millisecond)
	require.True(t, lim.Allow("k"))
	require.False(t, lim.Allow("k"))

	time.Sleep(20 * time.Millisecond)
	require.True(t, lim.Allow("k"))
}

func TestRoleMiddleware_UsesRoleBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRoleLimiter(map[string]Rule{
		"citizen": {Window: time.Minute, Max: 0}, // always deny
		"admin":   {Window: time.Minute, Max: 10},
	})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("role", "admin")
		c.Set("subjectID", "u1")
	})
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, w.Code)
}

func TestRoleMiddleware_ExceededReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRoleLimiter(map[string]Rule{
		"citizen": {Window: time.Minute, Max: 0},
	})

	r := gin.New()
	r.Use(rl.Middleware()) // no role set: falls back to citizen budget by IP
	r.GET("/", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 429, w.Code)
	require.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, false, body["success"])
	require.Equal(t, "Rate limit exceeded. Try again later.", body["message"])
}

func TestRoleMiddleware_EmitsRateLimitHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRoleLimiter(map[string]Rule{
		"citizen": {Window: time.Minute, Max: 5},
	})

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 200, w.Code)
	require.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
}
