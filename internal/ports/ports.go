package ports

import (
	"context"
	"io"

	"github.com/csg33k/employee-admin/internal/domain"
)

// EmployeeAPI is the remote employee service the UI is built on.
type EmployeeAPI interface {
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Employee, error)
	Create(ctx context.Context, in domain.EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id domain.ID, in domain.EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id domain.ID) error
}

// EmployeeRepository defines persistence operations for the local fake API.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id domain.ID) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, in domain.EmployeeInput) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id domain.ID, in domain.EmployeeInput) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id domain.ID) error
}

type AlertOptions struct {
	// KeepAfterRouteChange keeps the alert until the page after the next
	// navigation has rendered it.
	KeepAfterRouteChange bool
}

// Notifier shows alerts to the user.
type Notifier interface {
	Success(message string, opts AlertOptions)
	Error(err error)
}

// Navigator moves the user to another screen. Paths may be relative to the
// current one ("." for the parent collection, ".." one level further up).
type Navigator interface {
	Push(to string)
}

// RosterExporter renders the employee list as a downloadable document.
type RosterExporter interface {
	WriteRoster(employees []domain.Employee, w io.Writer) error
}
