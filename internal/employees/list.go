package employees

import (
	"context"
	"net/url"
	"sync"

	"github.com/csg33k/employee-admin/internal/domain"
	"github.com/csg33k/employee-admin/internal/ports"
)

const EmptyMessage = "No employees To Display"

// Row is a listed employee plus the UI-only deleting flag.
type Row struct {
	domain.Employee
	IsDeleting bool
}

type ListState struct {
	Loading bool
	Empty   bool
	Rows    []Row
}

// List holds the employees fetched for the list screen. Deletes may run
// concurrently, one per row.
type List struct {
	api    ports.EmployeeAPI
	notify ports.Notifier

	mu     sync.Mutex
	loaded bool
	rows   []Row
}

func NewList(api ports.EmployeeAPI, notify ports.Notifier) *List {
	return &List{api: api, notify: notify}
}

// Load fetches every employee once. Until it succeeds the list reports
// Loading.
func (l *List) Load(ctx context.Context) error {
	employees, err := l.api.GetAll(ctx)
	if err != nil {
		l.notify.Error(err)
		return err
	}
	rows := make([]Row, len(employees))
	for i, e := range employees {
		rows[i] = Row{Employee: e}
	}
	l.mu.Lock()
	l.rows = rows
	l.loaded = true
	l.mu.Unlock()
	return nil
}

// State returns a copy safe to render while deletes are in flight.
func (l *List) State() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.loaded {
		return ListState{Loading: true}
	}
	rows := make([]Row, len(l.rows))
	copy(rows, l.rows)
	return ListState{Empty: len(rows) == 0, Rows: rows}
}

// Delete marks the row as deleting before calling the API and drops it once
// the API confirms. A failed delete clears the mark again so the row can be
// retried, and the error is reported.
func (l *List) Delete(ctx context.Context, id domain.ID) error {
	l.setDeleting(id, true)
	if err := l.api.Delete(ctx, id); err != nil {
		l.setDeleting(id, false)
		l.notify.Error(err)
		return err
	}
	l.mu.Lock()
	kept := l.rows[:0:0]
	for _, r := range l.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	l.rows = kept
	l.mu.Unlock()
	return nil
}

func (l *List) setDeleting(id domain.ID, deleting bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.rows {
		if l.rows[i].ID == id {
			l.rows[i].IsDeleting = deleting
		}
	}
}

// AddURL is the list's link to the add form, below base.
func AddURL(base string) string { return base + "/add" }

// EditURL escapes id so it stays a single path segment.
func EditURL(base string, id domain.ID) string {
	return base + "/edit/" + url.PathEscape(string(id))
}
