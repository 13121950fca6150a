// Package authorization describes who is acting on a request.
package authorization

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// Viewer is the authenticated user behind a request.
// A nil *Viewer stands for a guest.
type Viewer struct {
	UserID uint
	Role   UserRole
}

// NewViewer returns a viewer for an authenticated user.
func NewViewer(userID uint, role UserRole) *Viewer {
	return &Viewer{UserID: userID, Role: role}
}

// IsGuest reports whether v represents an unauthenticated caller.
func (v *Viewer) IsGuest() bool {
	return v == nil || v.UserID == 0
}

// Owns reports whether v is the given owner.
func (v *Viewer) Owns(ownerID uint) bool {
	return !v.IsGuest() && v.UserID == ownerID
}

// UserIDPtr returns the viewer's user ID, or nil for guests.
func (v *Viewer) UserIDPtr() *uint {
	if v.IsGuest() {
		return nil
	}
	id := v.UserID
	return &id
}
