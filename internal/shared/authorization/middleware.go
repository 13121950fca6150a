package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
)

// ViewerFromContext returns the viewer set by the auth middleware,
// or nil when the request is anonymous.
func ViewerFromContext(c *gin.Context) *Viewer {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return nil
	}
	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		return nil
	}
	return NewViewer(userID, ParseUserRole(c.GetString(constants.ContextKeyUserRole)))
}
