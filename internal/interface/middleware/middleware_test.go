package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/internal/application/security"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

type fakeSessions struct {
	user  *entity.User
	ended []string
}

func (f *fakeSessions) ResolveSession(_ context.Context, token string) (*entity.User, string, error) {
	if token != "good" || f.user == nil {
		return nil, "", security.ErrSessionNotFound
	}
	return f.user, "sid-1", nil
}

func (f *fakeSessions) EndSession(_ context.Context, sid string) error {
	f.ended = append(f.ended, sid)
	return nil
}

func init() { gin.SetMode(gin.TestMode) }

func newEngine(sessions *fakeSessions) (*gin.Engine, *helpers.Manager) {
	cookies := helpers.NewCookie("", false)
	r := gin.New()
	r.Use(RequestID(), RealIP(), Authenticate(sessions, cookies, nil), Logout(sessions, cookies, nil))
	return r, cookies
}

func do(r http.Handler, method, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateSetsPrincipal(t *testing.T) {
	u := entity.NewUser("a@b.com", "alice", time.Now())
	u.ID = 7
	r, _ := newEngine(&fakeSessions{user: u})
	r.GET("/me", func(c *gin.Context) {
		if cu := CurrentUser(c); cu != nil {
			c.String(http.StatusOK, cu.Username+":"+SessionID(c))
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	assert.Equal(t, "alice:sid-1", do(r, http.MethodGet, "/me", "good").Body.String())
	assert.Equal(t, "anonymous", do(r, http.MethodGet, "/me", "").Body.String())

	w := do(r, http.MethodGet, "/me", "stale")
	assert.Equal(t, "anonymous", w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), helpers.SessionCookie+"=;")
}

func TestRequireRole(t *testing.T) {
	u := entity.NewUser("a@b.com", "alice", time.Now())
	r, cookies := newEngine(&fakeSessions{user: u})
	r.GET("/blog/new", RequireRole(entity.RoleUser, cookies), func(c *gin.Context) { c.String(http.StatusOK, "form") })
	r.GET("/admin", RequireRole(entity.RoleAdmin, cookies), func(c *gin.Context) { c.String(http.StatusOK, "admin") })

	w := do(r, http.MethodGet, "/blog/new?x=1", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), helpers.TargetPathCookie+"=")

	assert.Equal(t, "form", do(r, http.MethodGet, "/blog/new", "good").Body.String())
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/admin", "good").Code)
}

func TestLogoutInterceptsBeforeHandler(t *testing.T) {
	sessions := &fakeSessions{user: entity.NewUser("a@b.com", "alice", time.Now())}
	r, _ := newEngine(sessions)
	r.Any(LogoutPath, func(*gin.Context) { panic("unreachable") })

	w := do(r, http.MethodGet, LogoutPath, "good")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, []string{"sid-1"}, sessions.ended)
}

func TestRequestIDKeepsValidHeader(t *testing.T) {
	r, _ := newEngine(&fakeSessions{})
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "0b5e3c1e-6f7a-4d8e-9a0b-1c2d3e4f5a6b")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "0b5e3c1e-6f7a-4d8e-9a0b-1c2d3e4f5a6b", w.Body.String())

	w = do(r, http.MethodGet, "/", "")
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestRealIPPrefersProxyHeaders(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "203.0.113.9", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.Use(RealIP())
	r.POST("/connexion", RateLimit(rdb, 2, time.Minute, KeyByIPAndPath(), nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := do(r, http.MethodPost, "/connexion", "")
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := do(r, http.MethodPost, "/connexion", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/connexion", "").Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.SetError("down")

	r := gin.New()
	r.POST("/connexion", RateLimit(rdb, 1, time.Minute, KeyByIPAndPath(), nil), func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/connexion", "").Code)
	}
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	c.Set("real_ip", "10.1.2.3")
	assert.True(t, allow(c))
	c.Set("real_ip", "203.0.113.9")
	assert.False(t, allow(c))
}
