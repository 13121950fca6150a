// Package celebration models the liturgical or custom occasions a plan is
// prepared for.
package celebration

import (
	"fmt"
	"strings"
	"time"
)

// Kind separates shared liturgical celebrations from user-made ones.
type Kind string

const (
	KindLiturgical Kind = "liturgical"
	KindCustom     Kind = "custom"
)

func (k Kind) IsValid() bool {
	return k == KindLiturgical || k == KindCustom
}

type Celebration struct {
	id      uint
	kind    Kind
	name    string
	date    *time.Time
	ownerID *uint
}

// NewLiturgical creates a shared liturgical celebration
func NewLiturgical(name string, date *time.Time) (*Celebration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return &Celebration{kind: KindLiturgical, name: name, date: truncateDate(date)}, nil
}

// NewCustom creates a celebration owned by ownerID
func NewCustom(name string, date *time.Time, ownerID uint) (*Celebration, error) {
	c, err := NewLiturgical(name, date)
	if err != nil {
		return nil, err
	}
	if ownerID == 0 {
		return nil, ErrOwnerRequired
	}
	c.kind = KindCustom
	c.ownerID = &ownerID
	return c, nil
}

// ReconstructCelebration rebuilds a celebration from persistence
func ReconstructCelebration(id uint, kind string, name string, date *time.Time, ownerID *uint) (*Celebration, error) {
	if id == 0 {
		return nil, fmt.Errorf("celebration ID cannot be zero")
	}
	k := Kind(kind)
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid celebration kind: %s", kind)
	}
	return &Celebration{id: id, kind: k, name: name, date: date, ownerID: ownerID}, nil
}

func truncateDate(date *time.Time) *time.Time {
	if date == nil {
		return nil
	}
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func (c *Celebration) ID() uint         { return c.id }
func (c *Celebration) Kind() Kind       { return c.kind }
func (c *Celebration) Name() string     { return c.name }
func (c *Celebration) Date() *time.Time { return c.date }
func (c *Celebration) OwnerID() *uint   { return c.ownerID }

func (c *Celebration) IsLiturgical() bool {
	return c.kind == KindLiturgical
}

// DuplicateFor copies a custom celebration for a new owner.
// Liturgical celebrations are shared and never duplicated.
func (c *Celebration) DuplicateFor(ownerID uint) (*Celebration, error) {
	if c.IsLiturgical() {
		return nil, ErrNotCustom
	}
	return NewCustom(c.name, c.date, ownerID)
}

// SetID sets the celebration ID (only for persistence layer use)
func (c *Celebration) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("celebration ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("celebration ID cannot be zero")
	}
	c.id = id
	return nil
}
