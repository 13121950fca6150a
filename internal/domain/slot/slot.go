// Package slot provides the slot definition catalog model.
// A slot is a named position in a plan's running order, either global
// (shared by every plan) or custom (owned by one plan and its owner).
package slot

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxNameLength = 255

// Lifecycle is the catalog state of a slot definition.
type Lifecycle string

const (
	// LifecycleActive slots are listed in the catalog
	LifecycleActive Lifecycle = "active"
	// LifecycleRetired slots stay joinable from existing plans but are never listed
	LifecycleRetired Lifecycle = "retired"
)

func (l Lifecycle) IsValid() bool {
	return l == LifecycleActive || l == LifecycleRetired
}

func (l Lifecycle) String() string {
	return string(l)
}

// CustomOwner identifies the plan and user owning a custom slot.
type CustomOwner struct {
	PlanID uint
	UserID uint
}

// SlotDefinition is the catalog aggregate. owner is nil for global slots.
type SlotDefinition struct {
	id                  uint
	name                string
	description         string
	isIncludedByDefault bool
	owner               *CustomOwner
	lifecycle           Lifecycle
	retiredAt           *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// NewGlobalSlot creates a global slot definition.
func NewGlobalSlot(name, description string, isIncludedByDefault bool) (*SlotDefinition, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &SlotDefinition{
		name:                name,
		description:         strings.TrimSpace(description),
		isIncludedByDefault: isIncludedByDefault,
		lifecycle:           LifecycleActive,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// NewCustomSlot creates a slot definition owned by planID and userID.
func NewCustomSlot(planID, userID uint, name, description string) (*SlotDefinition, error) {
	if planID == 0 || userID == 0 {
		return nil, ErrOwnerRequired
	}
	s, err := NewGlobalSlot(name, description, false)
	if err != nil {
		return nil, err
	}
	s.owner = &CustomOwner{PlanID: planID, UserID: userID}
	return s, nil
}

// ReconstructSlotDefinition rebuilds a slot definition from persistence.
func ReconstructSlotDefinition(
	id uint,
	name, description string,
	isIncludedByDefault bool,
	owner *CustomOwner,
	lifecycle string,
	retiredAt *time.Time,
	createdAt, updatedAt time.Time,
) (*SlotDefinition, error) {
	if id == 0 {
		return nil, fmt.Errorf("slot ID cannot be zero")
	}
	if owner != nil && (owner.PlanID == 0 || owner.UserID == 0) {
		return nil, ErrOwnerRequired
	}
	state := Lifecycle(lifecycle)
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid slot lifecycle: %s", lifecycle)
	}

	return &SlotDefinition{
		id:                  id,
		name:                name,
		description:         description,
		isIncludedByDefault: isIncludedByDefault,
		owner:               owner,
		lifecycle:           state,
		retiredAt:           retiredAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (s *SlotDefinition) ID() uint {
	return s.id
}

func (s *SlotDefinition) Name() string {
	return s.name
}

// NameKey returns the folded form of the name used for uniqueness checks.
func (s *SlotDefinition) NameKey() string {
	return NameKey(s.name)
}

func (s *SlotDefinition) Description() string {
	return s.description
}

func (s *SlotDefinition) IsIncludedByDefault() bool {
	return s.isIncludedByDefault
}

// IsCustom reports whether the slot belongs to a single plan.
func (s *SlotDefinition) IsCustom() bool {
	return s.owner != nil
}

// Owner returns a copy of the custom owner, or nil for global slots.
func (s *SlotDefinition) Owner() *CustomOwner {
	if s.owner == nil {
		return nil
	}
	owner := *s.owner
	return &owner
}

func (s *SlotDefinition) Lifecycle() Lifecycle {
	return s.lifecycle
}

func (s *SlotDefinition) IsRetired() bool {
	return s.lifecycle == LifecycleRetired
}

func (s *SlotDefinition) RetiredAt() *time.Time {
	return s.retiredAt
}

func (s *SlotDefinition) CreatedAt() time.Time {
	return s.createdAt
}

func (s *SlotDefinition) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the slot ID (only for persistence layer use)
func (s *SlotDefinition) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("slot ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("slot ID cannot be zero")
	}
	s.id = id
	return nil
}

// Retire moves the slot out of the catalog. Retiring twice is a no-op
// and reports false.
func (s *SlotDefinition) Retire() bool {
	if s.lifecycle == LifecycleRetired {
		return false
	}
	now := time.Now().UTC()
	s.lifecycle = LifecycleRetired
	s.retiredAt = &now
	s.updatedAt = now
	return true
}

// DuplicateFor copies a custom slot for another plan and owner.
func (s *SlotDefinition) DuplicateFor(planID, userID uint) (*SlotDefinition, error) {
	if !s.IsCustom() {
		return nil, ErrNotCustom
	}
	return NewCustomSlot(planID, userID, s.name, s.description)
}
