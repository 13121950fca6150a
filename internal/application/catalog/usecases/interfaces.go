package usecases

import (
	"context"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
)

// TemplateCache keeps active template listings keyed by genre filter.
// A nil genre is the unfiltered listing.
type TemplateCache interface {
	Get(ctx context.Context, genreID *uint) ([]*dto.TemplateDTO, bool, error)
	Set(ctx context.Context, genreID *uint, templates []*dto.TemplateDTO) error
	Invalidate(ctx context.Context) error
}
