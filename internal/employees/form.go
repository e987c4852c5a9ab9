package employees

import (
	"net/url"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/csg33k/employee-admin/internal/domain"
)

// Field names a flat form input. Beneficiary inputs carry a "B" prefix in
// front of the nested property name.
type Field string

const (
	FieldFullName      Field = "fullName"
	FieldPicture       Field = "picture"
	FieldJob           Field = "job"
	FieldSalary        Field = "salary"
	FieldStatus        Field = "status"
	FieldContractDate  Field = "contractDate"
	FieldBFullName     Field = "BfullName"
	FieldBRelationship Field = "Brelationship"
	FieldBBirthday     Field = "Bbirthday"
	FieldBGender       Field = "Bgender"
)

const beneficiaryPrefix = "B"

// Input kinds understood by the form template.
const (
	InputText   = "text"
	InputNumber = "number"
	InputDate   = "date"
	InputSelect = "select"
)

type FieldSpec struct {
	Field    Field
	Label    string
	Input    string
	Required bool
}

// Beneficiary reports whether the field belongs to the nested record.
func (s FieldSpec) Beneficiary() bool {
	return strings.HasPrefix(string(s.Field), beneficiaryPrefix)
}

// ShortLabel drops the "Beneficiary " prefix for use inside the beneficiary
// section of the form.
func (s FieldSpec) ShortLabel() string {
	return strings.TrimPrefix(s.Label, "Beneficiary ")
}

// Schema lists every form field in display order.
var Schema = []FieldSpec{
	{Field: FieldFullName, Input: InputText, Required: true},
	{Field: FieldPicture, Input: InputText, Required: true},
	{Field: FieldJob, Input: InputText, Required: true},
	{Field: FieldSalary, Input: InputNumber, Required: true},
	{Field: FieldStatus, Input: InputText, Required: true},
	{Field: FieldContractDate, Input: InputDate, Required: true},
	{Field: FieldBFullName, Input: InputText, Required: true},
	{Field: FieldBRelationship, Input: InputText, Required: true},
	{Field: FieldBBirthday, Input: InputDate, Required: true},
	{Field: FieldBGender, Input: InputSelect, Required: true},
}

var labels = map[Field]string{}

func init() {
	for i := range Schema {
		Schema[i].Label = humanize(Schema[i].Field)
		labels[Schema[i].Field] = Schema[i].Label
	}
}

// Label returns the display name used in headings and error messages.
func Label(f Field) string {
	if l, ok := labels[f]; ok {
		return l
	}
	return humanize(f)
}

// humanize turns "contractDate" into "Contract Date" and "Bbirthday" into
// "Beneficiary Birthday".
func humanize(f Field) string {
	name := string(f)
	prefix := ""
	if strings.HasPrefix(name, beneficiaryPrefix) {
		name = strings.TrimPrefix(name, beneficiaryPrefix)
		prefix = "Beneficiary "
	}
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return prefix + cases.Title(language.English).String(b.String())
}

// Form is the flat add/edit form. Every input is a string; the nested
// Beneficiary only exists in the request body built by Body.
type Form struct {
	FullName      string `form:"fullName" validate:"required"`
	Picture       string `form:"picture" validate:"required"`
	Job           string `form:"job" validate:"required"`
	Salary        string `form:"salary" validate:"required,numeric"`
	Status        string `form:"status" validate:"required"`
	ContractDate  string `form:"contractDate" validate:"required,isodate"`
	BFullName     string `form:"BfullName" validate:"required"`
	BRelationship string `form:"Brelationship" validate:"required"`
	BBirthday     string `form:"Bbirthday" validate:"required,isodate"`
	BGender       string `form:"Bgender" validate:"required"`
}

// FieldErrors maps a field to its single inline message.
type FieldErrors map[Field]string

var (
	decoder  = form.NewDecoder()
	encoder  = form.NewEncoder()
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// DecodeForm binds posted values to a Form. Unknown keys are ignored.
func DecodeForm(values url.Values) (Form, error) {
	var f Form
	if err := decoder.Decode(&f, values); err != nil {
		return Form{}, errors.Wrap(err, "decode employee form")
	}
	return f, nil
}

// Values is the inverse of DecodeForm.
func (f Form) Values() (url.Values, error) {
	v, err := encoder.Encode(f)
	if err != nil {
		return nil, errors.Wrap(err, "encode employee form")
	}
	return v, nil
}

// Value returns the current input of a field.
func (f Form) Value(field Field) string {
	switch field {
	case FieldFullName:
		return f.FullName
	case FieldPicture:
		return f.Picture
	case FieldJob:
		return f.Job
	case FieldSalary:
		return f.Salary
	case FieldStatus:
		return f.Status
	case FieldContractDate:
		return f.ContractDate
	case FieldBFullName:
		return f.BFullName
	case FieldBRelationship:
		return f.BRelationship
	case FieldBBirthday:
		return f.BBirthday
	case FieldBGender:
		return f.BGender
	}
	return ""
}

// Normalize trims surrounding whitespace from every input.
func (f *Form) Normalize() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Picture = strings.TrimSpace(f.Picture)
	f.Job = strings.TrimSpace(f.Job)
	f.Salary = strings.TrimSpace(f.Salary)
	f.Status = strings.TrimSpace(f.Status)
	f.ContractDate = strings.TrimSpace(f.ContractDate)
	f.BFullName = strings.TrimSpace(f.BFullName)
	f.BRelationship = strings.TrimSpace(f.BRelationship)
	f.BBirthday = strings.TrimSpace(f.BBirthday)
	f.BGender = strings.TrimSpace(f.BGender)
}

// Validate normalizes the form and checks every rule in one pass. The result
// is empty when the form may be submitted.
func (f *Form) Validate() FieldErrors {
	f.Normalize()
	errs := FieldErrors{}
	err := validate.Struct(f)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// *validator.InvalidValidationError: a bad rule, not bad input.
		panic(err)
	}
	for _, fe := range verrs {
		field := Field(fe.Field())
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = message(field, fe.Tag())
	}
	return errs
}

func message(field Field, tag string) string {
	label := Label(field)
	switch tag {
	case "required":
		return label + " is required"
	case "isodate":
		return label + " must be a valid date"
	case "numeric":
		return label + " must be a number"
	default:
		return label + " is invalid"
	}
}

// Body builds the create/update request: the B-prefixed inputs become the
// nested beneficiary and both dates become ISO-8601 timestamps.
func (f Form) Body() (domain.EmployeeInput, error) {
	contractDate, err := domain.ISOTimestamp(f.ContractDate)
	if err != nil {
		return domain.EmployeeInput{}, errors.Wrap(err, string(FieldContractDate))
	}
	birthday, err := domain.ISOTimestamp(f.BBirthday)
	if err != nil {
		return domain.EmployeeInput{}, errors.Wrap(err, string(FieldBBirthday))
	}
	return domain.EmployeeInput{
		FullName:     f.FullName,
		Picture:      f.Picture,
		Job:          f.Job,
		Salary:       f.Salary,
		Status:       f.Status,
		ContractDate: contractDate,
		Beneficiary: domain.Beneficiary{
			FullName:     f.BFullName,
			Relationship: f.BRelationship,
			Birthday:     birthday,
			Gender:       domain.Gender(f.BGender),
		},
	}, nil
}

// FormFromEmployee fills the form from a fetched record. Dates are reduced to
// date-input values.
func FormFromEmployee(e *domain.Employee) Form {
	return Form{
		FullName:      e.FullName,
		Picture:       e.Picture,
		Job:           e.Job,
		Salary:        e.Salary,
		Status:        e.Status,
		ContractDate:  domain.DateOnly(e.ContractDate),
		BFullName:     e.Beneficiary.FullName,
		BRelationship: e.Beneficiary.Relationship,
		BBirthday:     domain.DateOnly(e.Beneficiary.Birthday),
		BGender:       string(e.Beneficiary.Gender),
	}
}

// NewForm is the blank add-mode form. The gender select starts on its first
// option.
func NewForm() Form {
	return Form{BGender: string(domain.GenderOptions[0].Value)}
}
