package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext builds a context for method and path. A non-nil body is
// sent as JSON; a string body is sent verbatim so malformed JSON can be tested.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	switch b := body.(type) {
	case nil:
		c.Request = httptest.NewRequest(method, path, nil)
	case string:
		c.Request = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		c.Request.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	default:
		payload, _ := json.Marshal(b)
		c.Request = httptest.NewRequest(method, path, bytes.NewReader(payload))
		c.Request.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}
	c.Set(constants.ContextKeyRequestID, "test-request")

	return c, w
}

// SetAuthContext sets the user id and role in gin context (simulating auth middleware).
func SetAuthContext(c *gin.Context, userID uint, role ...authorization.UserRole) {
	c.Set(constants.ContextKeyUserID, userID)
	r := authorization.RoleUser
	if len(role) > 0 {
		r = role[0]
	}
	c.Set(constants.ContextKeyUserRole, string(r))
}

// SetURLParam sets a route parameter such as "id" or "occurrence_id".
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo is the rendered error of a failed response.
type ErrorInfo = utils.ErrorInfo

// NewMockLogger returns a logger that drops every record.
func NewMockLogger() logger.Interface {
	return logger.NewDiscardLogger()
}
