// Package music models catalog pieces as seen by plans: only identity,
// title, and visibility matter here.
package music

import (
	"fmt"
	"strings"
)

type Music struct {
	id        uint
	title     string
	isPrivate bool
	ownerID   *uint
}

// NewMusic creates a catalog piece. Private pieces need an owner.
func NewMusic(title string, isPrivate bool, ownerID *uint) (*Music, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if isPrivate && ownerID == nil {
		return nil, ErrPrivateWithoutOwner
	}
	return &Music{title: title, isPrivate: isPrivate, ownerID: ownerID}, nil
}

// ReconstructMusic rebuilds a piece from persistence
func ReconstructMusic(id uint, title string, isPrivate bool, ownerID *uint) (*Music, error) {
	if id == 0 {
		return nil, fmt.Errorf("music ID cannot be zero")
	}
	return &Music{id: id, title: title, isPrivate: isPrivate, ownerID: ownerID}, nil
}

func (m *Music) ID() uint        { return m.id }
func (m *Music) Title() string   { return m.title }
func (m *Music) IsPrivate() bool { return m.isPrivate }
func (m *Music) OwnerID() *uint  { return m.ownerID }

// VisibleTo reports whether userID (nil for guests) may see the piece.
func (m *Music) VisibleTo(userID *uint) bool {
	if !m.isPrivate {
		return true
	}
	return userID != nil && m.ownerID != nil && *m.ownerID == *userID
}

// SetID sets the music ID (only for persistence layer use)
func (m *Music) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("music ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("music ID cannot be zero")
	}
	m.id = id
	return nil
}
