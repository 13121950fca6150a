package authorization

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
)

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleUser, ParseUserRole("root"))
}

func TestViewer(t *testing.T) {
	var guest *Viewer
	assert.True(t, guest.IsGuest())
	assert.False(t, guest.Owns(1))
	assert.Nil(t, guest.UserIDPtr())

	v := NewViewer(7, RoleUser)
	assert.False(t, v.IsGuest())
	assert.True(t, v.Owns(7))
	assert.False(t, v.Owns(8))
	require.NotNil(t, v.UserIDPtr())
	assert.Equal(t, uint(7), *v.UserIDPtr())
}

func TestViewerFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, ViewerFromContext(c))

	c.Set(constants.ContextKeyUserID, uint(3))
	c.Set(constants.ContextKeyUserRole, "admin")
	v := ViewerFromContext(c)
	require.NotNil(t, v)
	assert.Equal(t, uint(3), v.UserID)
	assert.True(t, v.Role.IsAdmin())
}
