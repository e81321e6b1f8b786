package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrEmptyMessage       = errors.New("message cannot be empty")
	ErrNotInitialized     = errors.New("store not initialized (run 'tasks init' first)")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidRecurrence  = errors.New("invalid recurrence (pattern must be daily, weekly or monthly, interval >= 1)")
	ErrNegativeEstimate   = errors.New("estimate cannot be negative")
	ErrTimerRunning       = errors.New("timer already running")
	ErrTimerNotRunning    = errors.New("timer not running")
	ErrNoProjectSelected  = errors.New("no project selected")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrUnknownFormat      = errors.New("unknown format (use json or yaml)")
	ErrUnknownStore       = errors.New("unknown store type (use json or badger)")
	ErrConfigExists       = errors.New("config file already exists")
	ErrNoAPIKey           = errors.New("no API key configured (set GEMINI_API_KEY or [assistant] api_key)")
	ErrRemoteCallFailed   = errors.New("remote call failed")
	ErrAmbiguousReference = errors.New("reference matches more than one item")
)

// RemoteCallError reports a failed completion call.
// The assistant treats every RemoteCallError the same way.
type RemoteCallError struct {
	Err        error
	Op         string
	StatusCode int // 0 when the failure happened before a response
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrRemoteCallFailed) match any RemoteCallError.
func (e *RemoteCallError) Is(target error) bool {
	return target == ErrRemoteCallFailed
}
