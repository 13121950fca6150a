package plan

import "fmt"

// SlotOccurrence is one placement of a slot definition inside a plan.
// A slot may occur several times in the same plan.
type SlotOccurrence struct {
	id       uint
	planID   uint
	slotID   uint
	sequence int
}

// NewSlotOccurrence places slotID at sequence within planID
func NewSlotOccurrence(planID, slotID uint, sequence int) (*SlotOccurrence, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if slotID == 0 {
		return nil, fmt.Errorf("slot ID is required")
	}
	if sequence < 1 {
		return nil, ErrInvalidSequence
	}
	return &SlotOccurrence{planID: planID, slotID: slotID, sequence: sequence}, nil
}

// ReconstructSlotOccurrence rebuilds an occurrence from persistence
func ReconstructSlotOccurrence(id, planID, slotID uint, sequence int) (*SlotOccurrence, error) {
	if id == 0 {
		return nil, fmt.Errorf("slot occurrence ID cannot be zero")
	}
	return &SlotOccurrence{id: id, planID: planID, slotID: slotID, sequence: sequence}, nil
}

func (o *SlotOccurrence) ID() uint      { return o.id }
func (o *SlotOccurrence) PlanID() uint  { return o.planID }
func (o *SlotOccurrence) SlotID() uint  { return o.slotID }
func (o *SlotOccurrence) Sequence() int { return o.sequence }

// Position implements Sequenced
func (o *SlotOccurrence) Position() int { return o.sequence }

// SetID sets the occurrence ID (only for persistence layer use)
func (o *SlotOccurrence) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("slot occurrence ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("slot occurrence ID cannot be zero")
	}
	o.id = id
	return nil
}
