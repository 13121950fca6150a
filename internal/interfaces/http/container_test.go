package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/config"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/testdb"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/handlers/testutil"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	sharedConfig "github.com/szentjozsefhackathon/cantores/internal/shared/config"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T, mr *miniredis.Miniredis, limit int) *config.Config {
	t.Helper()

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	return &config.Config{
		Server: sharedConfig.ServerConfig{AllowedOrigins: []string{"*"}},
		Auth: sharedConfig.AuthConfig{
			JWT: sharedConfig.JWTConfig{Secret: "test-secret", AccessExpMinutes: 5},
		},
		Redis:     sharedConfig.RedisConfig{Host: mr.Host(), Port: port, CatalogTTLSeconds: 60},
		RateLimit: sharedConfig.RateLimitConfig{Limit: limit, WindowSeconds: 60},
	}
}

func newTestContainer(t *testing.T, limit int) (*Container, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewContainer(testdb.Open(t), testConfig(t, mr, limit), logger.NewDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(c.Shutdown)
	return c, mr
}

func bearer(t *testing.T, c *Container, userID uint, role authorization.UserRole) string {
	t.Helper()

	token, err := c.JWTService().Generate(userID, role)
	require.NoError(t, err)
	return "Bearer " + token.Token
}

func do(c *Container, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	c.Engine().ServeHTTP(w, req)
	return w
}

func dataID(t *testing.T, w *httptest.ResponseRecorder) uint {
	t.Helper()

	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var payload struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	require.NotZero(t, payload.ID)
	return payload.ID
}

func TestContainer_Health(t *testing.T) {
	c, mr := newTestContainer(t, 100)

	w := do(c, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	mr.Close()
	w = do(c, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContainer_CatalogRequiresAdmin(t *testing.T) {
	c, _ := newTestContainer(t, 100)
	body := map[string]interface{}{"name": "Kyrie"}

	w := do(c, http.MethodPost, "/slots", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(c, http.MethodPost, "/slots", bearer(t, c, 2, authorization.RoleUser), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(c, http.MethodPost, "/slots", bearer(t, c, 1, authorization.RoleAdmin), body)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(c, http.MethodGet, "/slots", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kyrie")
}

func TestContainer_PlanFlow(t *testing.T) {
	c, _ := newTestContainer(t, 100)
	admin := bearer(t, c, 1, authorization.RoleAdmin)
	owner := bearer(t, c, 2, authorization.RoleUser)
	other := bearer(t, c, 3, authorization.RoleUser)

	w := do(c, http.MethodPost, "/slots", admin, map[string]interface{}{"name": "Gloria"})
	require.Equal(t, http.StatusCreated, w.Code)
	slotID := dataID(t, w)

	w = do(c, http.MethodPost, "/plans", "", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(c, http.MethodPost, "/plans", owner, map[string]interface{}{"is_private": false})
	require.Equal(t, http.StatusCreated, w.Code)
	planID := dataID(t, w)

	path := fmt.Sprintf("/plans/%d/slots", planID)
	w = do(c, http.MethodPost, path, other, map[string]interface{}{"slot_id": slotID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(c, http.MethodPost, path, owner, map[string]interface{}{"slot_id": slotID})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(c, http.MethodGet, fmt.Sprintf("/plans/%d", planID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gloria")

	w = do(c, http.MethodDelete, fmt.Sprintf("/plans/%d", planID), owner, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestContainer_RateLimitsWrites(t *testing.T) {
	c, _ := newTestContainer(t, 2)
	owner := bearer(t, c, 2, authorization.RoleUser)

	for i := 0; i < 2; i++ {
		w := do(c, http.MethodPost, "/plans", owner, map[string]interface{}{})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(c, http.MethodPost, "/plans", owner, map[string]interface{}{})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Reads are not limited.
	w = do(c, http.MethodGet, "/plans", owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContainer_RedisDownDisablesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t, mr, 100)
	mr.Close()

	c, err := NewContainer(testdb.Open(t), cfg, logger.NewDiscardLogger())
	require.NoError(t, err)
	defer c.Shutdown()

	assert.Nil(t, c.templateCache())

	w := do(c, http.MethodGet, "/templates", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
