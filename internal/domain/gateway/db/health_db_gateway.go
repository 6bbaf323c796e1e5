package db

import "github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
