package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/entity"
)

// GormTodoGateway implements TodoGateway over gorm.
type GormTodoGateway struct {
	DB *gorm.DB
	// Now is the single clock used for every row timestamp.
	Now func() time.Time
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

func (gateway *GormTodoGateway) Insert(title string, description *string) (*entity.Todo, error) {
	now := gateway.Now()
	todo := entity.Todo{
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := gateway.DB.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) FindAll() ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	if err := gateway.DB.Order("id ASC").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) UpdateCompletion(id int64, completed bool) (*entity.Todo, error) {
	result := gateway.DB.Model(&entity.Todo{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"completed":  completed,
			"updated_at": gateway.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var todo entity.Todo
	if err := gateway.DB.First(&todo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) DeleteByID(id int64) (bool, error) {
	result := gateway.DB.Delete(&entity.Todo{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
