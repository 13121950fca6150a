package slot

import "context"

// Repository defines persistence operations for slot definitions
type Repository interface {
	// Create stores a new slot definition and sets its ID
	Create(ctx context.Context, s *SlotDefinition) error

	// GetByID returns the slot, or nil when it does not exist
	GetByID(ctx context.Context, id uint) (*SlotDefinition, error)

	// GetByIDs returns slots keyed by ID; missing IDs are absent
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*SlotDefinition, error)

	// ExistsGlobalName checks whether an active or retired global slot uses nameKey
	ExistsGlobalName(ctx context.Context, nameKey string) (bool, error)

	// VisibleTo lists active global slots plus active custom slots owned by userID
	VisibleTo(ctx context.Context, userID *uint, filter CatalogFilter) ([]*SlotDefinition, error)

	// UpdateLifecycle persists lifecycle changes
	UpdateLifecycle(ctx context.Context, s *SlotDefinition) error

	// RetireByOwnerPlan retires every custom slot owned by planID
	RetireByOwnerPlan(ctx context.Context, planID uint) (int64, error)

	// HardDelete removes the row; fails with ErrSlotReferenced while referenced
	HardDelete(ctx context.Context, id uint) error
}

// CatalogFilter narrows catalog listings.
// GenreID keeps only custom slots whose owning plan has that genre.
type CatalogFilter struct {
	GenreID *uint
	Search  string
}
