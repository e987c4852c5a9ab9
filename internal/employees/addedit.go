package employees

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/csg33k/employee-admin/internal/domain"
	"github.com/csg33k/employee-admin/internal/ports"
)

type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "add"
}

const (
	MsgAdded   = "Employee added"
	MsgUpdated = "Employee updated"
)

// ErrSubmitPending is returned when Submit is called again before the
// previous submit settled.
var ErrSubmitPending = errors.New("employee form: submit already in progress")

// AddEdit drives the single form used to create and to edit an employee.
// The presence of an id is the only thing that selects edit mode.
type AddEdit struct {
	id     domain.ID
	api    ports.EmployeeAPI
	notify ports.Notifier
	nav    ports.Navigator

	mu         sync.Mutex
	submitting bool
}

func NewAddEdit(id domain.ID, api ports.EmployeeAPI, notify ports.Notifier, nav ports.Navigator) *AddEdit {
	return &AddEdit{id: id, api: api, notify: notify, nav: nav}
}

func (a *AddEdit) ID() domain.ID { return a.id }

func (a *AddEdit) Mode() Mode {
	if a.id == "" {
		return ModeAdd
	}
	return ModeEdit
}

func (a *AddEdit) IsAddMode() bool { return a.Mode() == ModeAdd }

func (a *AddEdit) Heading() string {
	if a.IsAddMode() {
		return "Add Employee"
	}
	return "Edit Employee"
}

// CancelURL is relative to the form's own path: the add screen sits one
// level below the list, the edit screen two.
func (a *AddEdit) CancelURL() string {
	if a.IsAddMode() {
		return "."
	}
	return ".."
}

// Load returns the initial form. In edit mode the record is fetched and
// mapped onto the flat fields; a failed fetch is reported and an empty form
// returned alongside the error.
func (a *AddEdit) Load(ctx context.Context) (Form, error) {
	if a.IsAddMode() {
		return NewForm(), nil
	}
	e, err := a.api.GetByID(ctx, a.id)
	if err != nil {
		a.notify.Error(err)
		return Form{}, err
	}
	return FormFromEmployee(e), nil
}

// Submitting reports whether a submit is in flight.
func (a *AddEdit) Submitting() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.submitting
}

// Submit validates f and, when it is clean, sends the transformed body to
// the API. Field errors block the request and are returned with a nil error.
// On success the user is notified and navigated back to the list; on a
// request failure the error is reported and returned, with no navigation.
func (a *AddEdit) Submit(ctx context.Context, f Form) (FieldErrors, error) {
	if !a.begin() {
		return nil, ErrSubmitPending
	}
	defer a.end()

	if errs := f.Validate(); len(errs) > 0 {
		return errs, nil
	}
	body, err := f.Body()
	if err != nil {
		return nil, err
	}
	if a.IsAddMode() {
		return nil, a.create(ctx, body)
	}
	return nil, a.update(ctx, body)
}

func (a *AddEdit) create(ctx context.Context, body domain.EmployeeInput) error {
	if _, err := a.api.Create(ctx, body); err != nil {
		a.notify.Error(err)
		return err
	}
	a.notify.Success(MsgAdded, ports.AlertOptions{KeepAfterRouteChange: true})
	a.nav.Push(".")
	return nil
}

func (a *AddEdit) update(ctx context.Context, body domain.EmployeeInput) error {
	if _, err := a.api.Update(ctx, a.id, body); err != nil {
		a.notify.Error(err)
		return err
	}
	a.notify.Success(MsgUpdated, ports.AlertOptions{KeepAfterRouteChange: true})
	a.nav.Push("..")
	return nil
}

func (a *AddEdit) begin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.submitting {
		return false
	}
	a.submitting = true
	return true
}

func (a *AddEdit) end() {
	a.mu.Lock()
	a.submitting = false
	a.mu.Unlock()
}
