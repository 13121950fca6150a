package music

import "errors"

var (
	ErrMusicNotFound       = errors.New("music not found")
	ErrTitleRequired       = errors.New("music title is required")
	ErrPrivateWithoutOwner = errors.New("private music requires an owner")
)
