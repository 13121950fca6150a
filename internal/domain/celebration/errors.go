package celebration

import "errors"

var (
	ErrCelebrationNotFound = errors.New("celebration not found")
	ErrNameRequired        = errors.New("celebration name is required")
	ErrOwnerRequired       = errors.New("custom celebration requires an owner")
	ErrNotCustom           = errors.New("celebration is not custom")
)
