package celebration

import "context"

type Repository interface {
	Create(ctx context.Context, c *Celebration) error

	// GetByIDs returns celebrations keyed by ID; missing IDs are absent
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Celebration, error)

	// FindLiturgicalByName returns the liturgical celebration, or nil
	FindLiturgicalByName(ctx context.Context, name string) (*Celebration, error)
}
