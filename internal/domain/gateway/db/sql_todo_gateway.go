package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/entity"
)

// SQLTodoGateway implements TodoGateway over database/sql. The SQL it
// issues is restricted to the dialect shared by the postgres and
// sqlite3 drivers the application wires in.
type SQLTodoGateway struct {
	DB *sql.DB
	// Now is the single clock used for every row timestamp.
	Now func() time.Time
}

var _ TodoGateway = (*SQLTodoGateway)(nil)

func NewSQLTodoGateway(db *sql.DB) *SQLTodoGateway {
	return &SQLTodoGateway{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

func (gateway *SQLTodoGateway) Insert(title string, description *string) (*entity.Todo, error) {
	now := gateway.Now()

	var id int64
	err := gateway.DB.QueryRow(`
		INSERT INTO todos (title, description, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		title, description, false, now, now).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &entity.Todo{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (gateway *SQLTodoGateway) FindAll() ([]entity.Todo, error) {
	rows, err := gateway.DB.Query(`
		SELECT id, title, description, completed, created_at, updated_at
		FROM todos
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = closeErr
		}
	}()

	results := make([]entity.Todo, 0)
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLTodoGateway) UpdateCompletion(id int64, completed bool) (*entity.Todo, error) {
	now := gateway.Now()

	result, err := gateway.DB.Exec(`
		UPDATE todos
		SET completed = $1, updated_at = $2
		WHERE id = $3`,
		completed, now, id)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	return gateway.findByID(id)
}

func (gateway *SQLTodoGateway) DeleteByID(id int64) (bool, error) {
	result, err := gateway.DB.Exec(`DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (gateway *SQLTodoGateway) findByID(id int64) (*entity.Todo, error) {
	var t entity.Todo
	err := gateway.DB.QueryRow(`
		SELECT id, title, description, completed, created_at, updated_at
		FROM todos
		WHERE id = $1`, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
