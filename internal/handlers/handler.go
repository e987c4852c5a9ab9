package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-admin/internal/adapters/alert"
	"github.com/csg33k/employee-admin/internal/adapters/navigation"
	"github.com/csg33k/employee-admin/internal/domain"
	"github.com/csg33k/employee-admin/internal/employees"
	"github.com/csg33k/employee-admin/internal/ports"
	"github.com/csg33k/employee-admin/internal/templates"
)

type Handler struct {
	api    ports.EmployeeAPI
	roster ports.RosterExporter
	alerts *alert.Center
	log    *slog.Logger
	base   string
}

// New serves the admin under basePath, e.g. "/employees".
func New(api ports.EmployeeAPI, roster ports.RosterExporter, alerts *alert.Center, log *slog.Logger, basePath string) *Handler {
	return &Handler{api: api, roster: roster, alerts: alerts, log: log, base: basePath}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", h.index)
	mux.HandleFunc("GET "+h.base, h.listPage)
	mux.HandleFunc("GET "+h.base+"/rows", h.listRows)
	mux.HandleFunc("GET "+h.base+"/export.pdf", h.exportPDF)
	mux.HandleFunc("DELETE "+h.base+"/{id}", h.deleteEmployee)
	mux.HandleFunc("GET "+h.base+"/add", h.showForm)
	mux.HandleFunc("POST "+h.base+"/add", h.submitForm)
	mux.HandleFunc("GET "+h.base+"/edit/{id}", h.showForm)
	mux.HandleFunc("POST "+h.base+"/edit/{id}", h.submitForm)
	return mux
}

// index sends the root and any unknown page to the list.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.base, http.StatusFound)
}

// listPage renders the shell; the table body fetches listRows on load and
// shows a spinner until then.
func (h *Handler) listPage(w http.ResponseWriter, r *http.Request) {
	notify := h.alerts.For(w, r)
	render(w, r, templates.EmployeeList(templates.ListPage{
		Page:      h.page("Employees", notify),
		AddURL:    employees.AddURL(h.base),
		RowsURL:   h.base + "/rows",
		ExportURL: h.base + "/export.pdf",
	}))
}

func (h *Handler) listRows(w http.ResponseWriter, r *http.Request) {
	notify := h.alerts.For(w, r)
	list := employees.NewList(h.api, notify)
	if err := list.Load(r.Context()); err != nil {
		// The table keeps its spinner; only the alert region changes.
		h.retargetAlerts(w, r, notify)
		return
	}
	render(w, r, templates.EmployeeRows(templates.RowsView{BasePath: h.base, State: list.State()}))
}

// deleteEmployee answers an empty 200 so htmx swaps the row away. On failure
// the row stays and its button re-enables once the request settles.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	notify := h.alerts.For(w, r)
	list := employees.NewList(h.api, notify)
	if err := list.Delete(r.Context(), domain.ID(r.PathValue("id"))); err != nil {
		h.retargetAlerts(w, r, notify)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) showForm(w http.ResponseWriter, r *http.Request) {
	notify := h.alerts.For(w, r)
	ae := employees.NewAddEdit(domain.ID(r.PathValue("id")), h.api, notify, navigation.For(w, r))
	form, err := ae.Load(r.Context())
	if err != nil {
		form = employees.NewForm()
	}
	h.renderForm(w, r, http.StatusOK, ae, notify, form, nil)
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	form, err := employees.DecodeForm(r.PostForm)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	notify := h.alerts.For(w, r)
	nav := navigation.For(w, r)
	ae := employees.NewAddEdit(domain.ID(r.PathValue("id")), h.api, notify, nav)

	fieldErrs, err := ae.Submit(r.Context(), form)
	if _, done := nav.Navigated(); done {
		return
	}
	if err != nil && len(fieldErrs) == 0 {
		h.log.Info("employee submit failed", "mode", ae.Mode(), "id", ae.ID(), "err", err)
	}
	status := http.StatusOK
	if len(fieldErrs) > 0 && !navigation.IsHTMX(r) {
		status = http.StatusUnprocessableEntity
	}
	h.renderForm(w, r, status, ae, notify, form, fieldErrs)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, ae *employees.AddEdit, notify *alert.Notifier, form employees.Form, errs employees.FieldErrors) {
	v := templates.NewFormView(
		h.page(ae.Heading(), notify),
		ae.Heading(),
		r.URL.Path,
		navigation.Resolve(r.URL.Path, ae.CancelURL()),
		form, errs,
	)
	c := templates.EmployeeForm(v)
	if navigation.IsHTMX(r) {
		c = templates.EmployeeFormFragment(v)
	}
	renderStatus(w, r, status, c)
}

func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	list, err := h.api.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	var buf bytes.Buffer
	if err := h.roster.WriteRoster(list, &buf); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	filename := fmt.Sprintf("employees_%s.pdf", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

// page drains the notifier, so it must be built before anything is written.
func (h *Handler) page(title string, notify *alert.Notifier) templates.Page {
	return templates.Page{Title: title, BasePath: h.base, Alerts: notify.Drain()}
}

// retargetAlerts swaps the request's alerts into #alerts instead of the
// element that issued it.
func (h *Handler) retargetAlerts(w http.ResponseWriter, r *http.Request, notify *alert.Notifier) {
	if r.Context().Err() != nil {
		return
	}
	alerts := notify.Drain()
	w.Header().Set("HX-Retarget", "#alerts")
	w.Header().Set("HX-Reswap", "innerHTML")
	render(w, r, templates.AlertList(alerts))
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

func renderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	if status == http.StatusOK {
		render(w, r, c)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		slog.Error("render", "err", err)
	}
}
