// Package template provides reusable slot bundles used to populate plans.
package template

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const maxNameLength = 255

// Slot is one slot reference inside a template.
type Slot struct {
	SlotID              uint
	Sequence            int
	IsIncludedByDefault bool
}

// Template is a named, ordered bundle of slot references.
type Template struct {
	id          uint
	name        string
	description string
	genreID     *uint
	isActive    bool
	slots       []Slot
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTemplate creates an active template. Slot sequences must be distinct;
// they are renumbered to 1..n keeping their relative order.
func NewTemplate(name, description string, genreID *uint, slots []Slot) (*Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrNameTooLong
	}

	normalized, err := normalizeSlots(slots)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Template{
		name:        name,
		description: strings.TrimSpace(description),
		genreID:     genreID,
		isActive:    true,
		slots:       normalized,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func normalizeSlots(slots []Slot) ([]Slot, error) {
	seen := make(map[int]struct{}, len(slots))
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.SlotID == 0 {
			return nil, ErrInvalidSlot
		}
		if _, dup := seen[s.Sequence]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateSequence, s.Sequence)
		}
		seen[s.Sequence] = struct{}{}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	for i := range out {
		out[i].Sequence = i + 1
	}
	return out, nil
}

// ReconstructTemplate rebuilds a template from persistence. slots must
// already be ordered by sequence.
func ReconstructTemplate(
	id uint,
	name, description string,
	genreID *uint,
	isActive bool,
	slots []Slot,
	createdAt, updatedAt time.Time,
) (*Template, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}
	return &Template{
		id:          id,
		name:        name,
		description: description,
		genreID:     genreID,
		isActive:    isActive,
		slots:       slots,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Template) ID() uint { return t.id }
func (t *Template) Name() string { return t.name }
func (t *Template) Description() string { return t.description }
func (t *Template) GenreID() *uint { return t.genreID }
func (t *Template) IsActive() bool { return t.isActive }
func (t *Template) CreatedAt() time.Time { return t.createdAt }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }

// Slots returns the template slots in sequence order.
func (t *Template) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)
	return out
}

// SlotIDs returns the referenced slot IDs in sequence order.
func (t *Template) SlotIDs() []uint {
	ids := make([]uint, 0, len(t.slots))
	for _, s := range t.slots {
		ids = append(ids, s.SlotID)
	}
	return ids
}

// ExpansionSlots returns the slot IDs to attach to a plan, in template order.
// With defaultOnly only slots flagged as included by default are returned.
func (t *Template) ExpansionSlots(defaultOnly bool) []uint {
	ids := make([]uint, 0, len(t.slots))
	for _, s := range t.slots {
		if defaultOnly && !s.IsIncludedByDefault {
			continue
		}
		ids = append(ids, s.SlotID)
	}
	return ids
}

// MatchesGenre reports whether the template applies to genreID.
// Genre-less templates match every genre.
func (t *Template) MatchesGenre(genreID *uint) bool {
	if t.genreID == nil || genreID == nil {
		return true
	}
	return *t.genreID == *genreID
}

// SetActive toggles usability and reports whether anything changed.
func (t *Template) SetActive(active bool) bool {
	if t.isActive == active {
		return false
	}
	t.isActive = active
	t.updatedAt = time.Now().UTC()
	return true
}

// SetID sets the template ID (only for persistence layer use)
func (t *Template) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("template ID cannot be zero")
	}
	t.id = id
	return nil
}
