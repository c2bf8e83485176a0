package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrTimerActive     = errors.New("timer is already active")
	ErrTimerNotRunning = errors.New("timer is not running")
	ErrTimerNotPaused  = errors.New("timer is not paused")

	ErrNoSavedState       = errors.New("no saved state")
	ErrStateTooLarge      = errors.New("state exceeds storage limit")
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrInvalidImport = errors.New("invalid import format")
	ErrImportParse   = errors.New("import is not valid JSON")
)
