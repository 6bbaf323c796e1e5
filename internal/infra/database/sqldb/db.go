package sqldb

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/appdotbuilder/simple-todo-app-99e5/pkg/resource"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS todos (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// SqliteSchema is exported so sqlite-backed tests can create the same
// table the application bootstraps.
const SqliteSchema = `
CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

// Connect opens a database/sql handle using the configured driver
// (app.db.driver: postgres or sqlite3), pings it and makes sure the
// todos table exists. The caller owns the handle and closes it at
// shutdown.
func Connect() (*sql.DB, error) {
	driver := resource.GetString("app.db.driver")

	var dsn, schema string
	switch driver {
	case "postgres":
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
			resource.GetString("app.db.host"),
			resource.GetString("app.db.port"),
			resource.GetString("app.db.username"),
			resource.GetString("app.db.password"),
			resource.GetString("app.db.database"),
			resource.GetString("app.db.schema"))
		schema = postgresSchema
	case "sqlite3":
		dsn = resource.GetString("app.db.sqlite-path")
		schema = SqliteSchema
	default:
		return nil, fmt.Errorf("unsupported db driver: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return db, nil
}
