// Package sqlite implements repository.EmployeeRepository on SQLite.
// It backs local runs (DB_DRIVER=sqlite) and integration tests that need a real database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"employeeapi/internal/model"
	"employeeapi/internal/repository"
)

const schema = `
	CREATE TABLE IF NOT EXISTS employees (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  TEXT    NOT NULL DEFAULT '',
		email TEXT    NOT NULL DEFAULT '',
		role  TEXT    NOT NULL DEFAULT ''
	)
`

// EmployeeSQLite stores employees in a single SQLite table.
type EmployeeSQLite struct {
	db *sql.DB
}

var _ repository.EmployeeRepository = (*EmployeeSQLite)(nil)

// NewEmployeeSQLite creates the employees table if needed and returns the repository.
func NewEmployeeSQLite(ctx context.Context, db *sql.DB) (*EmployeeSQLite, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("sqlite: create table: %w", err)
	}
	return &EmployeeSQLite{db: db}, nil
}

// Save inserts when ID is zero or unknown, otherwise updates in place.
func (r *EmployeeSQLite) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if e.ID != 0 {
		res, err := r.db.ExecContext(ctx,
			"UPDATE employees SET name = ?, email = ?, role = ? WHERE id = ?",
			e.Name, e.Email, e.Role, e.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("sqlite: update: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("sqlite: rows affected: %w", err)
		}
		if n > 0 {
			out := *e
			return &out, nil
		}
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO employees (name, email, role) VALUES (?, ?, ?)",
		e.Name, e.Email, e.Role,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: last insert id: %w", err)
	}
	out := *e
	out.ID = id
	return &out, nil
}

func (r *EmployeeSQLite) FindAll(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, email, role FROM employees ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("sqlite: query: %w", err)
	}
	defer rows.Close()

	items := make([]model.Employee, 0)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Role); err != nil {
			return nil, fmt.Errorf("sqlite: scan: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// FindByID returns sql.ErrNoRows unwrapped so callers can match it directly.
func (r *EmployeeSQLite) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	var e model.Employee
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, role FROM employees WHERE id = ? LIMIT 1", id,
	).Scan(&e.ID, &e.Name, &e.Email, &e.Role)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeSQLite) Delete(ctx context.Context, e *model.Employee) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", e.ID); err != nil {
		return fmt.Errorf("sqlite: delete: %w", err)
	}
	return nil
}
