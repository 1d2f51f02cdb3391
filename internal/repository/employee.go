package repository

import (
	"context"

	"employeeapi/internal/model"
)

// EmployeeRepository defines data access for employees.
// Implementations live in subpackages (postgres, sqlite) and hold no business logic.
type EmployeeRepository interface {
	// Save inserts the employee when ID is zero, otherwise overwrites the row with that ID.
	// A non-zero ID that matches no row is inserted as a new row with a store-assigned ID.
	// Returns the stored employee including its ID.
	Save(ctx context.Context, e *model.Employee) (*model.Employee, error)

	// FindAll returns every stored employee ordered by ID. The slice is empty, not nil, when there are none.
	FindAll(ctx context.Context) ([]model.Employee, error)

	// FindByID returns the employee with the given ID or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.Employee, error)

	// Delete removes the employee's row. A missing row is not an error.
	Delete(ctx context.Context, e *model.Employee) error
}
