package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"employeeapi/internal/model"
	"employeeapi/internal/repository"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("employee not found")

// NotFoundError reports that no employee is stored under ID.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Employee not found with id: %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// EmployeeService defines the use cases for managing employees.
type EmployeeService interface {
	// Create stores a new employee. Any ID on the input is ignored.
	Create(ctx context.Context, e model.Employee) (*model.Employee, error)

	// List returns every stored employee.
	List(ctx context.Context) ([]model.Employee, error)

	// Get returns a single employee or a *NotFoundError.
	Get(ctx context.Context, id int64) (*model.Employee, error)

	// Update overwrites name, email and role of an existing employee.
	Update(ctx context.Context, id int64, e model.Employee) (*model.Employee, error)

	// Delete removes an existing employee.
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	repo repository.EmployeeRepository
	log  zerolog.Logger
}

// NewEmployeeService constructs a new EmployeeService.
func NewEmployeeService(repo repository.EmployeeRepository, log zerolog.Logger) EmployeeService {
	return &employeeService{
		repo: repo,
		log:  log.With().Str("component", "employee_service").Logger(),
	}
}

func (s *employeeService) Create(ctx context.Context, e model.Employee) (*model.Employee, error) {
	s.log.Info().Str("event", "employee_create").Str("name", e.Name).Msg("creating employee")
	e.ID = 0
	return s.repo.Save(ctx, &e)
}

func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	s.log.Info().Str("event", "employee_list").Msg("fetching all employees")
	return s.repo.FindAll(ctx)
}

func (s *employeeService) Get(ctx context.Context, id int64) (*model.Employee, error) {
	s.log.Info().Str("event", "employee_get").Int64("id", id).Msg("fetching employee")
	return s.find(ctx, id)
}

// Update loads, mutates and saves without a transaction; concurrent writers may interleave.
func (s *employeeService) Update(ctx context.Context, id int64, e model.Employee) (*model.Employee, error) {
	s.log.Info().Str("event", "employee_update").Int64("id", id).Msg("updating employee")
	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = e.Name
	existing.Email = e.Email
	existing.Role = e.Role
	return s.repo.Save(ctx, existing)
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	s.log.Info().Str("event", "employee_delete").Int64("id", id).Msg("deleting employee")
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, existing)
}

func (s *employeeService) find(ctx context.Context, id int64) (*model.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return e, nil
}
