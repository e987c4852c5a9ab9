package employees_test

import (
	"context"
	"sync"

	"github.com/csg33k/employee-admin/internal/domain"
	"github.com/csg33k/employee-admin/internal/employees"
	"github.com/csg33k/employee-admin/internal/ports"
)

type fakeAPI struct {
	GetAllFn  func(ctx context.Context) ([]domain.Employee, error)
	GetByIDFn func(ctx context.Context, id domain.ID) (*domain.Employee, error)
	CreateFn  func(ctx context.Context, in domain.EmployeeInput) (*domain.Employee, error)
	UpdateFn  func(ctx context.Context, id domain.ID, in domain.EmployeeInput) (*domain.Employee, error)
	DeleteFn  func(ctx context.Context, id domain.ID) error
}

func (f *fakeAPI) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeAPI) GetByID(ctx context.Context, id domain.ID) (*domain.Employee, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeAPI) Create(ctx context.Context, in domain.EmployeeInput) (*domain.Employee, error) {
	return f.CreateFn(ctx, in)
}
func (f *fakeAPI) Update(ctx context.Context, id domain.ID, in domain.EmployeeInput) (*domain.Employee, error) {
	return f.UpdateFn(ctx, id, in)
}
func (f *fakeAPI) Delete(ctx context.Context, id domain.ID) error {
	return f.DeleteFn(ctx, id)
}

type success struct {
	Message string
	Opts    ports.AlertOptions
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []success
	errs      []error
}

func (n *recordingNotifier) Success(message string, opts ports.AlertOptions) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, success{message, opts})
}

func (n *recordingNotifier) Error(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errs = append(n.errs, err)
}

type recordingNavigator struct {
	pushed []string
}

func (n *recordingNavigator) Push(to string) { n.pushed = append(n.pushed, to) }

func validForm() employees.Form {
	return employees.Form{
		FullName:      "Jane Doe",
		Picture:       "p.png",
		Job:           "Engineer",
		Salary:        "90000",
		Status:        "Active",
		ContractDate:  "2024-01-15",
		BFullName:     "John Doe",
		BRelationship: "Spouse",
		BBirthday:     "1992-02-02",
		BGender:       "Male",
	}
}
