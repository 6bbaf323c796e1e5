package health

import "github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
