package plan

import (
	"context"

	"github.com/szentjozsefhackathon/cantores/internal/shared/query"
)

// Repository defines persistence operations for plan headers
type Repository interface {
	// Create stores the plan with its celebration links and sets its ID
	Create(ctx context.Context, p *Plan) error

	// GetByID returns the plan, or nil when it does not exist
	GetByID(ctx context.Context, id uint) (*Plan, error)

	// LockByID is GetByID taking a row lock for the rest of the transaction
	LockByID(ctx context.Context, id uint) (*Plan, error)

	Update(ctx context.Context, p *Plan) error

	// Delete hard-deletes the plan; occurrences and assignments cascade
	Delete(ctx context.Context, id uint) error

	// List returns plans visible to the filter's viewer
	List(ctx context.Context, filter ListFilter) ([]*Plan, int64, error)
}

// ListFilter narrows plan listings. ViewerID nil lists published plans only.
type ListFilter struct {
	query.PageFilter
	ViewerID      *uint
	OwnerOnly     bool
	CelebrationID *uint
	GenreID       *uint
}

// OccurrenceRepository manages the ordered slot occurrences of a plan
type OccurrenceRepository interface {
	Create(ctx context.Context, o *SlotOccurrence) error

	// GetByID returns the occurrence, or nil when it does not exist
	GetByID(ctx context.Context, id uint) (*SlotOccurrence, error)

	// ListByPlan returns occurrences ordered by sequence
	ListByPlan(ctx context.Context, planID uint) ([]*SlotOccurrence, error)

	CountByPlan(ctx context.Context, planID uint) (int, error)

	// SwapSequence exchanges the sequence values of a and b
	SwapSequence(ctx context.Context, a, b *SlotOccurrence) error

	// DeleteAndCloseGap deletes o with its assignments and shifts every
	// later occurrence of the plan down by one
	DeleteAndCloseGap(ctx context.Context, o *SlotOccurrence) error

	// CountBySlot counts occurrences of slotID across all plans
	CountBySlot(ctx context.Context, slotID uint) (int64, error)
}

// AssignmentRepository manages the ordered music assignments of an occurrence
type AssignmentRepository interface {
	// Create stores the assignment with its flags and scopes and sets its ID
	Create(ctx context.Context, a *Assignment) error

	// GetByID returns the assignment with flags and scopes, or nil
	GetByID(ctx context.Context, id uint) (*Assignment, error)

	// ListByOccurrence returns assignments ordered by music sequence
	ListByOccurrence(ctx context.Context, occurrenceID uint) ([]*Assignment, error)

	// ListByPlan returns every assignment of the plan ordered by
	// occurrence then music sequence, with flags and scopes
	ListByPlan(ctx context.Context, planID uint) ([]*Assignment, error)

	// MaxMusicSequence returns the highest music sequence, 0 when empty
	MaxMusicSequence(ctx context.Context, occurrenceID uint) (int, error)

	SwapMusicSequence(ctx context.Context, a, b *Assignment) error

	// DeleteAndCloseGap deletes a with its flags and scopes and shifts
	// later assignments of the occurrence down by one
	DeleteAndCloseGap(ctx context.Context, a *Assignment) error

	UpdateNotes(ctx context.Context, a *Assignment) error

	// ReplaceFlags stores a's flag set
	ReplaceFlags(ctx context.Context, a *Assignment) error

	// AddScope stores a new scope for assignmentID and returns it with its ID
	AddScope(ctx context.Context, assignmentID uint, scope Scope) (Scope, error)

	// RemoveScope deletes the scope if it belongs to assignmentID
	RemoveScope(ctx context.Context, assignmentID, scopeID uint) (bool, error)

	// FindScopeOwner returns the assignment that owns scopeID, 0 when missing
	FindScopeOwner(ctx context.Context, scopeID uint) (uint, error)

	// CountBySlot counts assignments referencing slotID across all plans
	CountBySlot(ctx context.Context, slotID uint) (int64, error)
}

// FlagRepository reads the seeded flag catalog
type FlagRepository interface {
	List(ctx context.Context) ([]Flag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]Flag, error)
}

// SuggestionRepository aggregates music used by other plans of the same celebrations
type SuggestionRepository interface {
	// FindCandidates groups assignments of plans linked to celebrationIDs
	// (excluding excludePlanID) by slot and music, counting distinct plans.
	// Only published plans or plans owned by viewerID are considered, only
	// global slots, and only music visible to viewerID.
	FindCandidates(ctx context.Context, celebrationIDs []uint, excludePlanID uint, viewerID *uint) ([]Suggestion, error)
}
