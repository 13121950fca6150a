package music

import "context"

// Repository defines read access to the music catalog plus seeding
type Repository interface {
	Create(ctx context.Context, m *Music) error

	// GetByID returns the piece, or nil when it does not exist
	GetByID(ctx context.Context, id uint) (*Music, error)

	// GetByIDs returns pieces keyed by ID; missing IDs are absent
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Music, error)

	ExistsByTitle(ctx context.Context, title string) (bool, error)
}
