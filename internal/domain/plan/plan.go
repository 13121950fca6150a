// Package plan provides the music plan aggregate: an ordered list of slot
// occurrences, each holding an ordered list of music assignments.
package plan

import (
	"fmt"
	"strings"
	"time"
)

// Plan is the music plan aggregate root
type Plan struct {
	id             uint
	ownerID        uint
	isPrivate      bool
	genreID        *uint
	privateNotes   *string
	celebrationIDs []uint
	createdAt      time.Time
	updatedAt      time.Time
}

// NewPlan creates a plan owned by ownerID
func NewPlan(ownerID uint, isPrivate bool, genreID *uint, privateNotes *string, celebrationIDs []uint) (*Plan, error) {
	if ownerID == 0 {
		return nil, ErrOwnerRequired
	}

	now := time.Now().UTC()
	return &Plan{
		ownerID:        ownerID,
		isPrivate:      isPrivate,
		genreID:        genreID,
		privateNotes:   normalizeNotes(privateNotes),
		celebrationIDs: dedupeIDs(celebrationIDs),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence
func ReconstructPlan(
	id, ownerID uint,
	isPrivate bool,
	genreID *uint,
	privateNotes *string,
	celebrationIDs []uint,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, ErrOwnerRequired
	}
	return &Plan{
		id:             id,
		ownerID:        ownerID,
		isPrivate:      isPrivate,
		genreID:        genreID,
		privateNotes:   privateNotes,
		celebrationIDs: celebrationIDs,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == 0 {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) OwnerID() uint {
	return p.ownerID
}

func (p *Plan) IsPrivate() bool {
	return p.isPrivate
}

func (p *Plan) GenreID() *uint {
	return p.genreID
}

func (p *Plan) PrivateNotes() *string {
	return p.privateNotes
}

// CelebrationIDs returns the linked celebrations in attach order
func (p *Plan) CelebrationIDs() []uint {
	out := make([]uint, len(p.celebrationIDs))
	copy(out, p.celebrationIDs)
	return out
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsOwnedBy reports whether userID (nil for guests) owns the plan
func (p *Plan) IsOwnedBy(userID *uint) bool {
	return userID != nil && *userID == p.ownerID
}

// CanView reports whether userID may see the plan: published plans are
// visible to everyone, private ones only to their owner.
func (p *Plan) CanView(userID *uint) bool {
	return !p.isPrivate || p.IsOwnedBy(userID)
}

// AuthorizeClone checks whether userID may copy the plan.
// Guests are always rejected; private plans only by their owner.
func (p *Plan) AuthorizeClone(userID *uint) error {
	if userID == nil || *userID == 0 {
		return ErrCloneUnauthenticated
	}
	if p.isPrivate && !p.IsOwnedBy(userID) {
		return ErrCloneDenied
	}
	return nil
}

// CloneFor builds the header of a copy made by copierID. The copy is
// always private and keeps private notes only when the copier owns the
// source. celebrationIDs are the celebrations to link, already resolved
// by the caller.
func (p *Plan) CloneFor(copierID uint, celebrationIDs []uint) (*Plan, error) {
	var notes *string
	if copierID == p.ownerID && p.privateNotes != nil {
		n := *p.privateNotes
		notes = &n
	}
	var genreID *uint
	if p.genreID != nil {
		g := *p.genreID
		genreID = &g
	}
	return NewPlan(copierID, true, genreID, notes, celebrationIDs)
}

// Update applies the non-nil changes and reports whether anything changed.
// An empty privateNotes clears the notes.
func (p *Plan) Update(isPrivate *bool, privateNotes *string, genreID *uint, clearGenre bool) bool {
	changed := false
	if isPrivate != nil && *isPrivate != p.isPrivate {
		p.isPrivate = *isPrivate
		changed = true
	}
	if privateNotes != nil {
		normalized := normalizeNotes(privateNotes)
		if !equalStringPtr(normalized, p.privateNotes) {
			p.privateNotes = normalized
			changed = true
		}
	}
	if clearGenre {
		if p.genreID != nil {
			p.genreID = nil
			changed = true
		}
	} else if genreID != nil && !equalUintPtr(genreID, p.genreID) {
		g := *genreID
		p.genreID = &g
		changed = true
	}
	if changed {
		p.updatedAt = time.Now().UTC()
	}
	return changed
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalUintPtr(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}
