package template

import "context"

// Repository defines persistence operations for templates
type Repository interface {
	Create(ctx context.Context, t *Template) error

	// GetByID returns the template with its slots, or nil when missing
	GetByID(ctx context.Context, id uint) (*Template, error)

	ExistsByName(ctx context.Context, name string) (bool, error)

	// ListActive returns active templates matching genreID ordered by name
	ListActive(ctx context.Context, genreID *uint) ([]*Template, error)

	UpdateStatus(ctx context.Context, t *Template) error
}
