package plan

import (
	"fmt"
	"strings"
)

// ScopeType names the part of a piece an assignment is limited to.
type ScopeType string

const (
	ScopeVerse    ScopeType = "verse"
	ScopePart     ScopeType = "part"
	ScopeStanza   ScopeType = "stanza"
	ScopeMovement ScopeType = "movement"
)

func (t ScopeType) IsValid() bool {
	switch t {
	case ScopeVerse, ScopePart, ScopeStanza, ScopeMovement:
		return true
	}
	return false
}

// Scope limits an assignment, e.g. verse 2
type Scope struct {
	ID     uint
	Type   ScopeType
	Number int
}

// NewScope validates a scope before it is stored
func NewScope(scopeType string, number int) (Scope, error) {
	t := ScopeType(strings.ToLower(strings.TrimSpace(scopeType)))
	if !t.IsValid() {
		return Scope{}, fmt.Errorf("%w: %s", ErrInvalidScopeType, scopeType)
	}
	if number < 1 {
		return Scope{}, ErrInvalidScopeNumber
	}
	return Scope{Type: t, Number: number}, nil
}

// Assignment is one piece of music placed in one slot occurrence.
// planID and slotID mirror the owning occurrence.
type Assignment struct {
	id            uint
	occurrenceID  uint
	planID        uint
	slotID        uint
	musicID       uint
	musicSequence int
	notes         string
	flagIDs       []uint
	scopes        []Scope
}

// NewAssignment places musicID in occurrence at musicSequence
func NewAssignment(occurrence *SlotOccurrence, musicID uint, musicSequence int) (*Assignment, error) {
	if occurrence == nil || occurrence.ID() == 0 {
		return nil, fmt.Errorf("slot occurrence is required")
	}
	if musicID == 0 {
		return nil, fmt.Errorf("music ID is required")
	}
	if musicSequence < 1 {
		return nil, ErrInvalidSequence
	}
	return &Assignment{
		occurrenceID:  occurrence.ID(),
		planID:        occurrence.PlanID(),
		slotID:        occurrence.SlotID(),
		musicID:       musicID,
		musicSequence: musicSequence,
	}, nil
}

// ReconstructAssignment rebuilds an assignment from persistence
func ReconstructAssignment(
	id, occurrenceID, planID, slotID, musicID uint,
	musicSequence int,
	notes string,
	flagIDs []uint,
	scopes []Scope,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	return &Assignment{
		id:            id,
		occurrenceID:  occurrenceID,
		planID:        planID,
		slotID:        slotID,
		musicID:       musicID,
		musicSequence: musicSequence,
		notes:         notes,
		flagIDs:       flagIDs,
		scopes:        scopes,
	}, nil
}

func (a *Assignment) ID() uint           { return a.id }
func (a *Assignment) OccurrenceID() uint { return a.occurrenceID }
func (a *Assignment) PlanID() uint       { return a.planID }
func (a *Assignment) SlotID() uint       { return a.slotID }
func (a *Assignment) MusicID() uint      { return a.musicID }
func (a *Assignment) MusicSequence() int { return a.musicSequence }
func (a *Assignment) Notes() string      { return a.notes }

// Position implements Sequenced
func (a *Assignment) Position() int { return a.musicSequence }

func (a *Assignment) FlagIDs() []uint {
	out := make([]uint, len(a.flagIDs))
	copy(out, a.flagIDs)
	return out
}

func (a *Assignment) Scopes() []Scope {
	out := make([]Scope, len(a.scopes))
	copy(out, a.scopes)
	return out
}

// SetNotes replaces the free-text notes
func (a *Assignment) SetNotes(notes string) {
	a.notes = strings.TrimSpace(notes)
}

// SetFlags replaces the flag set, dropping duplicates
func (a *Assignment) SetFlags(flagIDs []uint) {
	a.flagIDs = dedupeIDs(flagIDs)
}

// CopyInto builds a copy of the assignment inside occurrence with the same
// notes, flags, and scopes. Scope IDs are cleared so they are stored anew.
func (a *Assignment) CopyInto(occurrence *SlotOccurrence, musicSequence int) (*Assignment, error) {
	cp, err := NewAssignment(occurrence, a.musicID, musicSequence)
	if err != nil {
		return nil, err
	}
	cp.notes = a.notes
	cp.flagIDs = a.FlagIDs()
	cp.scopes = make([]Scope, 0, len(a.scopes))
	for _, s := range a.scopes {
		cp.scopes = append(cp.scopes, Scope{Type: s.Type, Number: s.Number})
	}
	return cp, nil
}

// SetID sets the assignment ID (only for persistence layer use)
func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}
