// Package templates renders the employee admin pages.
//
// NOTE: these would normally be .templ files compiled via `templ generate`.
// They are html/template sources exposed as templ components, so handlers
// render everything through one templ.Component path either way.
package templates

import (
	"html/template"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-admin/internal/adapters/alert"
)

var funcs = template.FuncMap{
	"editURL":    editURL,
	"deleteURL":  deleteURL,
	"isImageURL": isImageURL,
	"alertClass": alertClass,
	"theme":      func() template.CSS { return template.CSS(theme) },
}

var baseTmpl = template.Must(template.New("base").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} · Employee Admin</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@400;500;600&family=IBM+Plex+Sans:wght@300;400;500;600&display=swap" rel="stylesheet">
<style>{{theme}}</style>
</head>
<body>
<div style="max-width:1100px;margin:0 auto;padding:32px 24px;">

<div style="display:flex;align-items:flex-end;justify-content:space-between;margin-bottom:24px;">
  <div>
    <div class="mono" style="font-size:0.65rem;letter-spacing:0.2em;color:var(--muted);margin-bottom:4px;">HUMAN RESOURCES</div>
    <a href="{{.BasePath}}" style="text-decoration:none;">
      <span class="mono" style="font-size:1.4rem;font-weight:600;letter-spacing:-0.02em;">Employee Admin</span>
    </a>
  </div>
</div>

<div id="alerts">{{template "alert-list" .Alerts}}</div>

{{template "content" .}}

</div>
</body>
</html>
{{define "alert-list"}}{{range .}}<div class="alert {{alertClass .Kind}}" role="alert">{{.Message}}</div>{{end}}{{end}}
{{define "alerts-oob"}}<div id="alerts" hx-swap-oob="true">{{template "alert-list" .}}</div>{{end}}
{{define "content"}}{{end}}`))

var listTmpl = template.Must(template.Must(baseTmpl.Clone()).Parse(`
{{define "content"}}
<h1 class="mono" style="font-size:1.2rem;margin:0 0 12px;">Employees</h1>
<div style="display:flex;gap:8px;margin-bottom:12px;">
  <a href="{{.AddURL}}" class="btn btn-sm btn-success">Add Employee</a>
  <a href="{{.ExportURL}}" class="btn btn-sm btn-link">Export PDF</a>
</div>
<table class="roster">
  <thead>
    <tr>
      <th style="width:18%">Full Name</th>
      <th style="width:18%">Picture</th>
      <th style="width:18%">Job</th>
      <th style="width:18%">Salary</th>
      <th style="width:18%">Status</th>
      <th style="width:10%"></th>
    </tr>
  </thead>
  <tbody id="employee-rows" hx-get="{{.RowsURL}}" hx-trigger="load" hx-swap="innerHTML">
    <tr><td colspan="6" class="text-center"><span class="spinner spinner-lg"></span></td></tr>
  </tbody>
</table>
{{end}}`))

var rowsTmpl = template.Must(template.Must(baseTmpl.Clone()).Parse(`{{define "rows"}}
{{- with .State}}
{{- if .Loading}}
<tr><td colspan="6" class="text-center"><span class="spinner spinner-lg"></span></td></tr>
{{- else if .Empty}}
<tr><td colspan="6" class="text-center"><div style="padding:8px;">No employees To Display</div></td></tr>
{{- else}}
{{- range .Rows}}
<tr id="employee-{{.ID}}">
  <td>{{.FullName}}</td>
  <td>{{if isImageURL .Picture}}<img class="thumb" src="{{.Picture}}" alt="">{{else}}{{.Picture}}{{end}}</td>
  <td>{{.Job}}</td>
  <td class="mono">{{.Salary}}</td>
  <td>{{.Status}}</td>
  <td style="white-space:nowrap;">
    <a href="{{editURL $.BasePath .ID}}" class="btn btn-sm btn-primary">Edit</a>
    <button class="btn btn-sm btn-danger btn-delete-employee"
      hx-delete="{{deleteURL $.BasePath .ID}}"
      hx-target="closest tr"
      hx-swap="outerHTML"
      hx-disabled-elt="this">
      <span class="spinner htmx-indicator"></span><span class="when-idle">Delete</span>
    </button>
  </td>
</tr>
{{- end}}
{{- end}}
{{- end}}
{{end}}`))

var formTmpl = template.Must(template.Must(baseTmpl.Clone()).Parse(`
{{define "content"}}{{template "employee-form" .}}{{end}}

{{define "field"}}
<div>
  <label class="field-label" for="{{.Field}}">{{.Display}}</label>
  {{- if eq .Input "select"}}
  <select id="{{.Field}}" name="{{.Field}}"{{if .Error}} class="is-invalid"{{end}}>
    {{- range .Options}}
    <option value="{{.Value}}"{{if eq (print .Value) $.Value}} selected{{end}}>{{.Label}}</option>
    {{- end}}
  </select>
  {{- else}}
  <input id="{{.Field}}" name="{{.Field}}" type="{{.Input}}" value="{{.Value}}"{{if .Error}} class="is-invalid"{{end}}>
  {{- end}}
  <div class="invalid-feedback">{{.Error}}</div>
</div>
{{end}}

{{define "employee-form"}}
<form id="employee-form" class="card" style="padding:24px;"
  method="post" action="{{.Action}}"
  hx-post="{{.Action}}" hx-target="this" hx-swap="outerHTML"
  hx-disabled-elt="#employee-form-submit">
  <h1 class="mono" style="font-size:1.2rem;margin:0 0 16px;">{{.Heading}}</h1>
  <div class="grid">
    {{- range .EmployeeFields}}{{template "field" .}}{{end}}
  </div>
  <div class="section-header" style="margin-top:20px;">Beneficiary</div>
  <div class="grid">
    {{- range .BeneficiaryFields}}{{template "field" .}}{{end}}
  </div>
  <div style="margin-top:20px;display:flex;gap:8px;align-items:center;">
    <button id="employee-form-submit" type="submit" class="btn btn-primary">
      <span class="spinner htmx-indicator"></span> Save
    </button>
    <a href="{{.CancelURL}}" class="btn btn-link">Cancel</a>
  </div>
</form>
{{- if .Fragment}}{{template "alerts-oob" .Alerts}}{{end}}
{{end}}`))

// EmployeeList is the list page shell. Its rows load in a follow-up request.
func EmployeeList(v ListPage) templ.Component {
	return templ.FromGoHTML(listTmpl, v)
}

// EmployeeRows is the table body fragment.
func EmployeeRows(v RowsView) templ.Component {
	return templ.FromGoHTML(rowsTmpl.Lookup("rows"), v)
}

// EmployeeForm is the full add/edit page.
func EmployeeForm(v FormView) templ.Component {
	v.Fragment = false
	return templ.FromGoHTML(formTmpl, v)
}

// EmployeeFormFragment re-renders just the form, with the alert region
// swapped out-of-band.
func EmployeeFormFragment(v FormView) templ.Component {
	v.Fragment = true
	return templ.FromGoHTML(formTmpl.Lookup("employee-form"), v)
}

// AlertList renders alerts for swapping into #alerts.
func AlertList(alerts []alert.Alert) templ.Component {
	return templ.FromGoHTML(baseTmpl.Lookup("alert-list"), alerts)
}
