package template

import "errors"

var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrNameRequired      = errors.New("template name is required")
	ErrNameTooLong       = errors.New("template name is too long")
	ErrNameExists        = errors.New("template name already exists")
	ErrInvalidSlot       = errors.New("template slot must reference a slot")
	ErrDuplicateSequence = errors.New("duplicate template slot sequence")
)
