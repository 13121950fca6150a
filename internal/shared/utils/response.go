package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/query"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo carries the request id so clients can quote it in reports.
type ErrorInfo struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	SuccessResponse(c, http.StatusCreated, msg, data)
}

// ErrorResponse writes an error whose type follows from the status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	writeError(c, statusCode, ErrorInfo{
		Type:    string(errors.TypeForStatus(statusCode)),
		Message: message,
	})
}

// ErrorResponseWithError renders AppErrors with their own status. Any
// other error becomes a generic 500 so internals never reach clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		writeError(c, http.StatusInternalServerError, ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: constants.ErrMsgInternalServerError,
		})
		return
	}

	writeError(c, appErr.Code, ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

func writeError(c *gin.Context, statusCode int, info ErrorInfo) {
	info.RequestID = c.GetString(constants.ContextKeyRequestID)
	c.JSON(statusCode, APIResponse{Success: false, Error: &info})
}

// ListSuccessResponse sends one page of items with its paging totals.
func ListSuccessResponse(c *gin.Context, items interface{}, total int64, page query.PageFilter) {
	pageSize := page.Limit()
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	SuccessResponse(c, http.StatusOK, "", ListResponse{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// NoContentResponse writes 204 without a body.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
