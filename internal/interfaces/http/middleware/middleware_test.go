package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/auth"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/ratelimit"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoAmI(c *gin.Context) {
	v := authorization.ViewerFromContext(c)
	if v.IsGuest() {
		c.String(http.StatusOK, "guest")
		return
	}
	c.String(http.StatusOK, "%d:%s", v.UserID, v.Role)
}

func perform(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", 10)
	issued, err := jwtSvc.Generate(9, authorization.RoleAdmin)
	require.NoError(t, err)

	m := NewAuthMiddleware(jwtSvc, logger.NewDiscardLogger())
	r := gin.New()
	r.GET("/required", m.RequireAuth(), whoAmI)
	r.GET("/optional", m.OptionalAuth(), whoAmI)

	tests := []struct {
		name   string
		path   string
		token  string
		status int
		body   string
	}{
		{"required with token", "/required", issued.Token, http.StatusOK, "9:admin"},
		{"required without token", "/required", "", http.StatusUnauthorized, ""},
		{"required with bad token", "/required", "garbage", http.StatusUnauthorized, ""},
		{"optional with token", "/optional", issued.Token, http.StatusOK, "9:admin"},
		{"optional without token", "/optional", "", http.StatusOK, "guest"},
		{"optional with bad token", "/optional", "garbage", http.StatusOK, "guest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(r, http.MethodGet, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/required", nil)
	req.Header.Set(constants.HeaderAuthorization, "Basic abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type stubChecker struct {
	allowed bool
	err     error
}

func (s stubChecker) Allowed(viewer *authorization.Viewer, resource, action string) (bool, error) {
	return s.allowed, s.err
}

func TestPermissionMiddleware(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", 10)
	issued, err := jwtSvc.Generate(3, authorization.RoleUser)
	require.NoError(t, err)
	authMW := NewAuthMiddleware(jwtSvc, logger.NewDiscardLogger())

	tests := []struct {
		name    string
		checker stubChecker
		token   string
		status  int
	}{
		{"allowed", stubChecker{allowed: true}, issued.Token, http.StatusOK},
		{"denied", stubChecker{}, issued.Token, http.StatusForbidden},
		{"checker failure", stubChecker{err: stderrors.New("db down")}, issued.Token, http.StatusInternalServerError},
		{"guest", stubChecker{allowed: true}, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPermissionMiddleware(tt.checker, logger.NewDiscardLogger())
			r := gin.New()
			r.POST("/slots", authMW.OptionalAuth(), pm.RequirePermission("catalog", "write"), whoAmI)

			w := perform(r, http.MethodPost, "/slots", tt.token)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(ratelimit.NewRedisRateLimiter(client), 2, time.Minute, logger.NewDiscardLogger())
	r := gin.New()
	r.POST("/plans", rl.Limit(), whoAmI)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/plans", "").Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/plans", "").Code)
	w := perform(r, http.MethodPost, "/plans", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// redis outage lets requests through
	mr.Close()
	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/plans", "").Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.GET("/", RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := perform(r, http.MethodGet, "/", "")
	generated := w.Header().Get(constants.HeaderXRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewDiscardLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := perform(r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
