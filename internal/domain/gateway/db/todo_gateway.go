package db

import (
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/entity"
)

// TodoGateway owns direct access to the todos table. Implementations
// assign ids and timestamps; callers never set them.
type TodoGateway interface {
	// Insert creates a row with completed=false and fresh timestamps.
	Insert(title string, description *string) (*entity.Todo, error)

	// FindAll returns every row in insertion order (ascending id).
	FindAll() ([]entity.Todo, error)

	// UpdateCompletion sets the completion flag and refreshes
	// updated_at on the matching row. It returns (nil, nil) when no
	// row has the given id.
	UpdateCompletion(id int64, completed bool) (*entity.Todo, error)

	// DeleteByID removes the matching row and reports whether a row
	// was actually removed.
	DeleteByID(id int64) (bool, error)
}
