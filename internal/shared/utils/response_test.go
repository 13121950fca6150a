package utils

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/query"
)

func newResponseContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(constants.ContextKeyRequestID, "req-1")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorResponseWithError_AppError(t *testing.T) {
	c, w := newResponseContext()

	ErrorResponseWithError(c, errors.NewConflictError("slot is still referenced", "2 assignments"))

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeConflict), resp.Error.Type)
	assert.Equal(t, "2 assignments", resp.Error.Details)
	assert.Equal(t, "req-1", resp.Error.RequestID)
}

func TestErrorResponseWithError_HidesPlainErrors(t *testing.T) {
	c, w := newResponseContext()

	ErrorResponseWithError(c, stderrors.New("dial tcp 10.0.0.1:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
	assert.Equal(t, string(errors.ErrorTypeInternal), decode(t, w).Error.Type)
}

func TestErrorResponse_TypeFromStatus(t *testing.T) {
	c, w := newResponseContext()

	ErrorResponse(c, http.StatusTooManyRequests, "slow down")

	assert.Equal(t, string(errors.ErrorTypeRateLimited), decode(t, w).Error.Type)
}

func TestListSuccessResponse(t *testing.T) {
	c, w := newResponseContext()

	ListSuccessResponse(c, []int{1, 2}, 45, query.PageFilter{Page: 2, PageSize: 20})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(45), resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Page)
	assert.Equal(t, 3, resp.Data.TotalPages)
}
