// Package dto provides data transfer objects for the slot and template catalog.
package dto

import (
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
)

// SlotDTO is a slot definition as listed in the catalog.
type SlotDTO struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	IsIncludedByDefault bool   `json:"is_included_by_default"`
	IsCustom            bool   `json:"is_custom"`
	OwnerPlanID         *uint  `json:"owner_plan_id,omitempty"`
	Lifecycle           string `json:"lifecycle"`
}

// ToSlotDTO converts a slot definition.
func ToSlotDTO(s *slot.SlotDefinition) *SlotDTO {
	result := &SlotDTO{
		ID:                  s.ID(),
		Name:                s.Name(),
		Description:         s.Description(),
		IsIncludedByDefault: s.IsIncludedByDefault(),
		IsCustom:            s.IsCustom(),
		Lifecycle:           s.Lifecycle().String(),
	}
	if owner := s.Owner(); owner != nil {
		planID := owner.PlanID
		result.OwnerPlanID = &planID
	}
	return result
}

// TemplateSlotDTO is one slot reference inside a template.
type TemplateSlotDTO struct {
	SlotID              uint `json:"slot_id"`
	Sequence            int  `json:"sequence"`
	IsIncludedByDefault bool `json:"is_included_by_default"`
}

// TemplateDTO is a template with its slots in order.
type TemplateDTO struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	GenreID     *uint             `json:"genre_id,omitempty"`
	IsActive    bool              `json:"is_active"`
	Slots       []TemplateSlotDTO `json:"slots"`
}

// ToTemplateDTO converts a template.
func ToTemplateDTO(t *template.Template) *TemplateDTO {
	slots := make([]TemplateSlotDTO, 0, len(t.Slots()))
	for _, s := range t.Slots() {
		slots = append(slots, TemplateSlotDTO{
			SlotID:              s.SlotID,
			Sequence:            s.Sequence,
			IsIncludedByDefault: s.IsIncludedByDefault,
		})
	}
	return &TemplateDTO{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		GenreID:     t.GenreID(),
		IsActive:    t.IsActive(),
		Slots:       slots,
	}
}

// CustomSlotResult is a newly created custom slot and the occurrence
// that attaches it to its plan.
type CustomSlotResult struct {
	Slot         *SlotDTO `json:"slot"`
	OccurrenceID uint     `json:"occurrence_id"`
	Sequence     int      `json:"sequence"`
}

// ChangeResult reports whether a catalog mutation had any effect.
type ChangeResult struct {
	Changed bool `json:"changed"`
}
