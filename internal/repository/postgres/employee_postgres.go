package postgres

import (
	"context"
	"database/sql"
	"errors"

	"employeeapi/internal/model"
	"employeeapi/internal/repository"
)

// EmployeePostgres is a PostgreSQL implementation of repository.EmployeeRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type EmployeePostgres struct {
	db *sql.DB
}

// NewEmployeePostgres creates a new EmployeePostgres repository.
func NewEmployeePostgres(db *sql.DB) *EmployeePostgres {
	return &EmployeePostgres{db: db}
}

var _ repository.EmployeeRepository = (*EmployeePostgres)(nil)

// Save inserts a new row or overwrites the existing one and returns the stored record.
func (r *EmployeePostgres) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if e.ID == 0 {
		return r.insert(ctx, e)
	}

	const q = `
		UPDATE employees
		SET name = $1, email = $2, role = $3
		WHERE id = $4
		RETURNING id, name, email, role
	`
	out, err := scanEmployee(r.db.QueryRowContext(ctx, q, e.Name, e.Email, e.Role, e.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return r.insert(ctx, e)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EmployeePostgres) insert(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	const q = `
		INSERT INTO employees (name, email, role)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, role
	`
	return scanEmployee(r.db.QueryRowContext(ctx, q, e.Name, e.Email, e.Role))
}

// FindAll returns all employees in insertion order.
func (r *EmployeePostgres) FindAll(ctx context.Context) ([]model.Employee, error) {
	const q = `
		SELECT id, name, email, role
		FROM employees
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Employee, 0)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Role); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single employee by its ID.
func (r *EmployeePostgres) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	const q = `
		SELECT id, name, email, role
		FROM employees
		WHERE id = $1
	`
	return scanEmployee(r.db.QueryRowContext(ctx, q, id))
}

// Delete removes an employee row. It does not return an error if the row does not exist.
func (r *EmployeePostgres) Delete(ctx context.Context, e *model.Employee) error {
	const q = `DELETE FROM employees WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, e.ID)
	return err
}

func scanEmployee(row *sql.Row) (*model.Employee, error) {
	var e model.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Role); err != nil {
		return nil, err
	}
	return &e, nil
}
