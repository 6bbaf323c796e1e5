package todo

import (
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/entity"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/model"
)

type UseCase interface {
	CreateTodo(dto model.CreateTodoDTO) (*entity.Todo, error)
	GetTodos() ([]entity.Todo, error)
	UpdateTodoCompletion(dto model.UpdateTodoCompletionDTO) (*entity.Todo, error)
	DeleteTodo(dto model.DeleteTodoDTO) (*model.DeleteTodoResult, error)
}
