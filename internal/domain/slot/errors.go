package slot

import "errors"

var (
	// ErrSlotNotFound indicates the slot definition was not found
	ErrSlotNotFound = errors.New("slot not found")

	// ErrNameRequired indicates an empty slot name
	ErrNameRequired = errors.New("slot name is required")

	// ErrNameTooLong indicates the slot name exceeds the column size
	ErrNameTooLong = errors.New("slot name is too long")

	// ErrNameExists indicates a global slot with the same name exists
	ErrNameExists = errors.New("slot name already exists")

	// ErrOwnerRequired indicates a custom slot without plan or user owner
	ErrOwnerRequired = errors.New("custom slot requires an owning plan and user")

	// ErrNotCustom indicates an operation only valid for custom slots
	ErrNotCustom = errors.New("slot is not custom")

	// ErrSlotReferenced indicates the slot is still used by plans or templates
	ErrSlotReferenced = errors.New("slot is still referenced")
)
