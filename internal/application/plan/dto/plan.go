// Package dto provides data transfer objects for music plans.
package dto

import (
	"time"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
)

// PlanDTO is the header of a music plan.
type PlanDTO struct {
	ID             uint      `json:"id"`
	OwnerID        uint      `json:"owner_id"`
	IsPrivate      bool      `json:"is_private"`
	GenreID        *uint     `json:"genre_id,omitempty"`
	PrivateNotes   *string   `json:"private_notes,omitempty"`
	CelebrationIDs []uint    `json:"celebration_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToPlanDTO converts a plan. Private notes are included only when
// withNotes is set.
func ToPlanDTO(p *plan.Plan, withNotes bool) *PlanDTO {
	result := &PlanDTO{
		ID:             p.ID(),
		OwnerID:        p.OwnerID(),
		IsPrivate:      p.IsPrivate(),
		GenreID:        p.GenreID(),
		CelebrationIDs: p.CelebrationIDs(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
	if withNotes {
		result.PrivateNotes = p.PrivateNotes()
	}
	return result
}

// CelebrationDTO names a celebration linked to a plan.
type CelebrationDTO struct {
	ID   uint       `json:"id"`
	Kind string     `json:"kind"`
	Name string     `json:"name"`
	Date *time.Time `json:"date,omitempty"`
}

// ScopeDTO limits an assignment to part of a piece.
type ScopeDTO struct {
	ID     uint   `json:"id"`
	Type   string `json:"type"`
	Number int    `json:"number"`
}

// ToScopeDTO converts a scope.
func ToScopeDTO(s plan.Scope) ScopeDTO {
	return ScopeDTO{ID: s.ID, Type: string(s.Type), Number: s.Number}
}

// AssignmentDTO is one piece placed in a slot occurrence.
// MusicTitle is empty and Hidden set when the viewer may not see the piece.
type AssignmentDTO struct {
	ID            uint       `json:"id"`
	OccurrenceID  uint       `json:"occurrence_id"`
	MusicID       uint       `json:"music_id"`
	MusicTitle    string     `json:"music_title,omitempty"`
	Hidden        bool       `json:"hidden,omitempty"`
	MusicSequence int        `json:"music_sequence"`
	Notes         string     `json:"notes,omitempty"`
	NotesHTML     string     `json:"notes_html,omitempty"`
	Flags         []string   `json:"flags"`
	Scopes        []ScopeDTO `json:"scopes"`
}

// OccurrenceDTO is one slot placement in the running order of a plan.
type OccurrenceDTO struct {
	ID          uint             `json:"id"`
	SlotID      uint             `json:"slot_id"`
	SlotName    string           `json:"slot_name,omitempty"`
	IsCustom    bool             `json:"is_custom"`
	Sequence    int              `json:"sequence"`
	Assignments []*AssignmentDTO `json:"assignments"`
}

// ToOccurrenceDTO converts an occurrence without its assignments.
func ToOccurrenceDTO(o *plan.SlotOccurrence) *OccurrenceDTO {
	return &OccurrenceDTO{
		ID:          o.ID(),
		SlotID:      o.SlotID(),
		Sequence:    o.Sequence(),
		Assignments: []*AssignmentDTO{},
	}
}

// PlanViewDTO is a plan with its full running order.
type PlanViewDTO struct {
	PlanDTO
	PrivateNotesHTML string            `json:"private_notes_html,omitempty"`
	IsOwner          bool              `json:"is_owner"`
	Celebrations     []*CelebrationDTO `json:"celebrations"`
	Occurrences      []*OccurrenceDTO  `json:"occurrences"`
}

// SequenceResult reports whether a reorder or removal changed anything.
type SequenceResult struct {
	Changed bool `json:"changed"`
}

// AttachResult reports a slot attachment.
type AttachResult struct {
	Changed    bool           `json:"changed"`
	Occurrence *OccurrenceDTO `json:"occurrence,omitempty"`
}

// TemplateExpansionResult reports how many occurrences a template added.
type TemplateExpansionResult struct {
	Changed bool `json:"changed"`
	Added   int  `json:"added"`
}

// AssignResult reports a music assignment.
type AssignResult struct {
	Changed    bool           `json:"changed"`
	Assignment *AssignmentDTO `json:"assignment,omitempty"`
}

// CloneResult summarises a copied plan.
type CloneResult struct {
	Plan        *PlanDTO `json:"plan"`
	Occurrences int      `json:"occurrences"`
	Assignments int      `json:"assignments"`
}

// SuggestedMusicDTO is a piece used by other plans of the same celebration.
type SuggestedMusicDTO struct {
	MusicID   uint   `json:"music_id"`
	Title     string `json:"title"`
	PlanCount int    `json:"plan_count"`
}

// SlotSuggestionsDTO groups suggestions for one slot definition.
type SlotSuggestionsDTO struct {
	SlotID   uint                 `json:"slot_id"`
	SlotName string               `json:"slot_name"`
	Music    []*SuggestedMusicDTO `json:"music"`
}
