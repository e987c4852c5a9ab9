package templates

import (
	"github.com/csg33k/employee-admin/internal/adapters/alert"
	"github.com/csg33k/employee-admin/internal/domain"
	"github.com/csg33k/employee-admin/internal/employees"
)

// Page is what the layout needs on every full page.
type Page struct {
	Title    string
	BasePath string
	Alerts   []alert.Alert
}

type ListPage struct {
	Page
	AddURL    string
	RowsURL   string
	ExportURL string
}

type RowsView struct {
	BasePath string
	State    employees.ListState
}

type FormView struct {
	Page
	Heading   string
	Action    string
	CancelURL string
	Fields    []FieldView
	Fragment  bool
}

type FieldView struct {
	employees.FieldSpec
	Value   string
	Error   string
	Options []domain.GenderOption
}

// Display is the label shown above the input. Beneficiary inputs sit under
// their own section header, so they drop the prefix.
func (f FieldView) Display() string {
	if f.Beneficiary() {
		return f.ShortLabel()
	}
	return f.Label
}

// NewFormView lays the form out in schema order.
func NewFormView(page Page, heading, action, cancelURL string, form employees.Form, errs employees.FieldErrors) FormView {
	fields := make([]FieldView, 0, len(employees.Schema))
	for _, fs := range employees.Schema {
		fv := FieldView{FieldSpec: fs, Value: form.Value(fs.Field), Error: errs[fs.Field]}
		if fs.Input == employees.InputSelect {
			fv.Options = domain.GenderOptions
		}
		fields = append(fields, fv)
	}
	return FormView{Page: page, Heading: heading, Action: action, CancelURL: cancelURL, Fields: fields}
}

func (v FormView) EmployeeFields() []FieldView {
	return v.filter(false)
}

func (v FormView) BeneficiaryFields() []FieldView {
	return v.filter(true)
}

func (v FormView) filter(beneficiary bool) []FieldView {
	var out []FieldView
	for _, f := range v.Fields {
		if f.Beneficiary() == beneficiary {
			out = append(out, f)
		}
	}
	return out
}
