package todo

import (
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/entity"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/gateway/db"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/model"
)

type todoUseCase struct {
	gateway db.TodoGateway
}

func NewTodoUseCase(gateway db.TodoGateway) UseCase {
	return &todoUseCase{
		gateway: gateway,
	}
}

func (uc *todoUseCase) CreateTodo(dto model.CreateTodoDTO) (*entity.Todo, error) {
	if dto.Title == "" {
		return nil, newValidationError("todo.error.empty-title")
	}

	return uc.gateway.Insert(dto.Title, dto.Description)
}

func (uc *todoUseCase) GetTodos() ([]entity.Todo, error) {
	return uc.gateway.FindAll()
}

func (uc *todoUseCase) UpdateTodoCompletion(dto model.UpdateTodoCompletionDTO) (*entity.Todo, error) {
	if dto.ID <= 0 {
		return nil, newValidationError("todo.error.invalid-id")
	}
	if dto.Completed == nil {
		return nil, newValidationError("todo.error.missing-completed")
	}

	updated, err := uc.gateway.UpdateCompletion(dto.ID, *dto.Completed)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{ID: dto.ID}
	}
	return updated, nil
}

func (uc *todoUseCase) DeleteTodo(dto model.DeleteTodoDTO) (*model.DeleteTodoResult, error) {
	if dto.ID <= 0 {
		return nil, newValidationError("todo.error.invalid-id")
	}

	// A missing id is reported through Success, never as an error.
	deleted, err := uc.gateway.DeleteByID(dto.ID)
	if err != nil {
		return nil, err
	}
	return &model.DeleteTodoResult{Success: deleted}, nil
}
