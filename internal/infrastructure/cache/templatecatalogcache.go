package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/usecases"
)

var _ usecases.TemplateCache = (*TemplateCatalogCache)(nil)

const (
	templateKeyPrefix = "catalog:templates:"
	allGenresKey      = "all"
	defaultCatalogTTL = 10 * time.Minute
)

// TemplateCatalogCache stores active template listings as JSON, one key per genre filter.
type TemplateCatalogCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewTemplateCatalogCache creates the cache. A non-positive ttl falls back to ten minutes.
func NewTemplateCatalogCache(client redis.UniversalClient, ttl time.Duration) *TemplateCatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &TemplateCatalogCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *TemplateCatalogCache) key(genreID *uint) string {
	if genreID == nil {
		return templateKeyPrefix + allGenresKey
	}
	return templateKeyPrefix + strconv.FormatUint(uint64(*genreID), 10)
}

// Get returns the cached listing. The bool is false on a miss.
func (c *TemplateCatalogCache) Get(ctx context.Context, genreID *uint) ([]*dto.TemplateDTO, bool, error) {
	data, err := c.client.Get(ctx, c.key(genreID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get templates from cache: %w", err)
	}

	var templates []*dto.TemplateDTO
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached templates: %w", err)
	}
	if templates == nil {
		templates = []*dto.TemplateDTO{}
	}
	return templates, true, nil
}

func (c *TemplateCatalogCache) Set(ctx context.Context, genreID *uint, templates []*dto.TemplateDTO) error {
	if templates == nil {
		templates = []*dto.TemplateDTO{}
	}
	data, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("failed to marshal templates: %w", err)
	}

	if err := c.client.Set(ctx, c.key(genreID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store templates in cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached listing.
func (c *TemplateCatalogCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, templateKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan template cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete template cache keys: %w", err)
	}
	return nil
}
