package usecases

import (
	stderrors "errors"

	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
)

// toAppError maps catalog domain errors onto application errors.
// Unknown errors are returned unchanged.
func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, slot.ErrNameExists), stderrors.Is(err, template.ErrNameExists):
		return errors.NewConflictError(err.Error()).WithCause(err)
	case stderrors.Is(err, slot.ErrSlotReferenced):
		return errors.NewConflictError("slot is still referenced").WithCause(err)
	case stderrors.Is(err, slot.ErrSlotNotFound):
		return errors.NewNotFoundError("slot not found").WithCause(err)
	case stderrors.Is(err, template.ErrTemplateNotFound):
		return errors.NewNotFoundError("template not found").WithCause(err)
	case stderrors.Is(err, slot.ErrNameRequired),
		stderrors.Is(err, slot.ErrNameTooLong),
		stderrors.Is(err, slot.ErrOwnerRequired),
		stderrors.Is(err, template.ErrNameRequired),
		stderrors.Is(err, template.ErrNameTooLong),
		stderrors.Is(err, template.ErrInvalidSlot),
		stderrors.Is(err, template.ErrDuplicateSequence):
		return errors.NewValidationError(err.Error()).WithCause(err)
	}
	return err
}
