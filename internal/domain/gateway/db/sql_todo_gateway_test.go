package db

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/appdotbuilder/simple-todo-app-99e5/internal/infra/database/sqldb"
)

func newTestGateway(t *testing.T) *SQLTodoGateway {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err := conn.Exec(sqldb.SqliteSchema); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	gateway := NewSQLTodoGateway(conn)

	// Deterministic clock, one second per call.
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gateway.Now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	return gateway
}

func strPtr(s string) *string { return &s }

func TestSQLInsert(t *testing.T) {
	gateway := newTestGateway(t)

	first, err := gateway.Insert("first", nil)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("id = %d, want 1", first.ID)
	}
	if first.Completed {
		t.Error("new row must not be completed")
	}
	if !first.CreatedAt.Equal(first.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v", first.CreatedAt, first.UpdatedAt)
	}

	second, err := gateway.Insert("second", strPtr("with description"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("id = %d, want 2", second.ID)
	}
}

func TestSQLFindAll(t *testing.T) {
	gateway := newTestGateway(t)

	todos, err := gateway.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("len = %d, want 0", len(todos))
	}

	if _, err := gateway.Insert("a", nil); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := gateway.Insert("b", strPtr("desc")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	todos, err = gateway.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("len = %d, want 2", len(todos))
	}
	if todos[0].Title != "a" || todos[1].Title != "b" {
		t.Errorf("order = [%q, %q], want [a, b]", todos[0].Title, todos[1].Title)
	}
	if todos[0].Description != nil {
		t.Errorf("description = %v, want nil", *todos[0].Description)
	}
	if todos[1].Description == nil || *todos[1].Description != "desc" {
		t.Errorf("description = %v, want desc", todos[1].Description)
	}
}

func TestSQLUpdateCompletion(t *testing.T) {
	gateway := newTestGateway(t)

	created, err := gateway.Insert("toggle", nil)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	updated, err := gateway.UpdateCompletion(created.ID, true)
	if err != nil {
		t.Fatalf("UpdateCompletion: %v", err)
	}
	if updated == nil {
		t.Fatal("updated = nil, want row")
	}
	if !updated.Completed {
		t.Error("completed = false, want true")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updated_at %v not after %v", updated.UpdatedAt, created.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at changed from %v to %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestSQLUpdateCompletionAbsent(t *testing.T) {
	gateway := newTestGateway(t)

	updated, err := gateway.UpdateCompletion(999, true)
	if err != nil {
		t.Fatalf("UpdateCompletion: %v", err)
	}
	if updated != nil {
		t.Fatalf("updated = %+v, want nil", updated)
	}

	todos, err := gateway.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(todos) != 0 {
		t.Error("update of a missing id must not create a row")
	}
}

func TestSQLDeleteByID(t *testing.T) {
	gateway := newTestGateway(t)

	keep, err := gateway.Insert("keep", nil)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	drop, err := gateway.Insert("drop", nil)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	deleted, err := gateway.DeleteByID(drop.ID)
	if err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if !deleted {
		t.Error("deleted = false, want true")
	}

	deleted, err = gateway.DeleteByID(drop.ID)
	if err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if deleted {
		t.Error("second delete reported a removed row")
	}

	todos, err := gateway.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != keep.ID {
		t.Fatalf("remaining = %+v, want only id %d", todos, keep.ID)
	}
}
