package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/mappers"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/mapper"
)

// TemplateRepositoryImpl implements the template.Repository interface.
type TemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TemplateMapper
	logger logger.Interface
}

// NewTemplateRepository creates a new template repository instance.
func NewTemplateRepository(database *gorm.DB, logger logger.Interface) template.Repository {
	return &TemplateRepositoryImpl{
		db:     database,
		mapper: mappers.NewTemplateMapper(),
		logger: logger,
	}
}

// Create stores the template row and its slot rows together.
func (r *TemplateRepositoryImpl) Create(ctx context.Context, t *template.Template) error {
	model, slots := r.mapper.ToModel(t)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		for _, s := range slots {
			s.TemplateID = model.ID
		}
		if len(slots) > 0 {
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return template.ErrNameExists
		}
		r.logger.Errorw("failed to create template", "name", t.Name(), "error", err)
		return fmt.Errorf("failed to create template: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set template ID: %w", err)
	}
	return nil
}

// GetByID retrieves a template with its slots.
func (r *TemplateRepositoryImpl) GetByID(ctx context.Context, id uint) (*template.Template, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.TemplateModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get template by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	slotsByTemplate, err := r.loadSlots(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&model, slotsByTemplate[model.ID])
}

// ExistsByName checks whether a template with the name exists.
func (r *TemplateRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TemplateModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check template name: %w", err)
	}
	return count > 0, nil
}

// ListActive returns active templates for genreID (or genre-less) by name.
func (r *TemplateRepositoryImpl) ListActive(ctx context.Context, genreID *uint) ([]*template.Template, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TemplateModel{}).Where("is_active = ?", true)
	if genreID != nil {
		query = query.Where("genre_id IS NULL OR genre_id = ?", *genreID)
	}

	var modelList []*models.TemplateModel
	if err := query.Order("name ASC, id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list active templates", "error", err)
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	ids := make([]uint, 0, len(modelList))
	for _, m := range modelList {
		ids = append(ids, m.ID)
	}
	slotsByTemplate, err := r.loadSlots(tx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*template.Template, 0, len(modelList))
	for _, m := range modelList {
		entity, err := r.mapper.ToEntity(m, slotsByTemplate[m.ID])
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

// UpdateStatus persists the active flag.
func (r *TemplateRepositoryImpl) UpdateStatus(ctx context.Context, t *template.Template) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.TemplateModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"is_active":  t.IsActive(),
			"updated_at": t.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update template status", "id", t.ID(), "error", result.Error)
		return fmt.Errorf("failed to update template status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return template.ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepositoryImpl) loadSlots(tx *gorm.DB, templateIDs []uint) (map[uint][]*models.TemplateSlotModel, error) {
	if len(templateIDs) == 0 {
		return map[uint][]*models.TemplateSlotModel{}, nil
	}

	var rows []*models.TemplateSlotModel
	if err := tx.Where("template_id IN ?", templateIDs).
		Order("template_id ASC, sequence ASC, id ASC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to load template slots", "error", err)
		return nil, fmt.Errorf("failed to load template slots: %w", err)
	}
	return mapper.GroupBy(rows, func(row *models.TemplateSlotModel) uint { return row.TemplateID }), nil
}
