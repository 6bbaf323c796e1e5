package todo

import (
	"github.com/appdotbuilder/simple-todo-app-99e5/pkg/msg"
)

// ValidationError rejects malformed input before it reaches storage.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(messageKey string) *ValidationError {
	return &ValidationError{Message: msg.GetMessage(messageKey)}
}

// NotFoundError is raised only by the completion-update path when the
// target id does not exist. The delete path reports non-existence as a
// plain boolean instead.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return msg.GetMessage("todo.error.not-found", e.ID)
}
