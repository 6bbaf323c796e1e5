package model

type CreateTodoDTO struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateTodoCompletionDTO carries Completed as a pointer so a missing
// field can be told apart from an explicit false.
type UpdateTodoCompletionDTO struct {
	ID        int64 `json:"id"`
	Completed *bool `json:"completed"`
}

type DeleteTodoDTO struct {
	ID int64 `json:"id"`
}

// DeleteTodoResult reports whether a row was actually removed. A
// missing id is not an error on the delete path, unlike the update path.
type DeleteTodoResult struct {
	Success bool `json:"success"`
}
