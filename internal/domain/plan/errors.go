package plan

import "errors"

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrOccurrenceNotFound = errors.New("slot occurrence not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrScopeNotFound      = errors.New("assignment scope not found")

	ErrOwnerRequired   = errors.New("plan owner is required")
	ErrNotOwner        = errors.New("only the plan owner may change it")
	ErrInvalidSequence = errors.New("sequence must be at least 1")

	// ErrCloneUnauthenticated rejects clone requests from guests
	ErrCloneUnauthenticated = errors.New("authentication required to copy a plan")
	// ErrCloneDenied rejects copies of another user's private plan
	ErrCloneDenied = errors.New("private plans can only be copied by their owner")

	ErrInvalidScopeType   = errors.New("invalid scope type")
	ErrInvalidScopeNumber = errors.New("scope number must be at least 1")
	ErrUnknownFlag        = errors.New("unknown assignment flag")
)
