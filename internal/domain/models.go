package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ISOLayout matches JavaScript's Date.prototype.toISOString output, which is
// what the employee API stores for every date field.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// DateLayout is the value format of an HTML date input.
const DateLayout = "2006-01-02"

// ID is the opaque identifier the employee API assigns on creation.
// Some backends send it as a number, so both JSON forms are accepted.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Gender is free text on the wire; the form offers GenderOptions.
type Gender string

const (
	GenderMale           = Gender("Male")
	GenderFemale         = Gender("Female")
	GenderPreferNotToSay = Gender("PreferNotToSay")
)

// GenderOption pairs a select value with its display text.
type GenderOption struct {
	Value Gender
	Label string
}

// GenderOptions lists the select options in display order. The first entry is
// the default selection of a new form.
var GenderOptions = []GenderOption{
	{Value: GenderMale, Label: "Male"},
	{Value: GenderFemale, Label: "Female"},
	{Value: GenderPreferNotToSay, Label: "Prefer Not To Say"},
}

// Beneficiary has no identity of its own; it is created, replaced and
// deleted together with its Employee.
type Beneficiary struct {
	FullName     string `json:"fullName"`
	Relationship string `json:"relationship"`
	Birthday     string `json:"birthday"` // ISO-8601 timestamp
	Gender       Gender `json:"gender"`
}

// EmployeeInput is the create/update request body.
type EmployeeInput struct {
	FullName     string      `json:"fullName"`
	Picture      string      `json:"picture"`
	Job          string      `json:"job"`
	Salary       string      `json:"salary"`
	Status       string      `json:"status"`
	ContractDate string      `json:"contractDate"` // ISO-8601 timestamp
	Beneficiary  Beneficiary `json:"beneficiary"`
}

type Employee struct {
	ID ID `json:"id,omitempty"`
	EmployeeInput
}

// ISOTimestamp normalizes a date-input value ("2006-01-02") or an RFC 3339
// timestamp to ISOLayout in UTC. Bare dates are taken as UTC midnight.
func ISOTimestamp(v string) (string, error) {
	t, err := ParseDate(v)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(ISOLayout), nil
}

// ParseDate accepts the formats ISOTimestamp does.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(DateLayout, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", v)
	}
	return t, nil
}

// DateOnly reduces a stored timestamp to a date-input value. Values that do
// not parse are returned unchanged so the user still sees what the API sent.
func DateOnly(v string) string {
	t, err := ParseDate(v)
	if err != nil {
		return v
	}
	return t.UTC().Format(DateLayout)
}

// ErrNotFound is returned by repositories when no employee has the id.
var ErrNotFound = errors.New("Employee not found")
