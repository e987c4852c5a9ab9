package pdf

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-admin/internal/domain"
)

func fixedRoster() *Roster {
	r := NewRoster("Employee Roster")
	r.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC) }
	return r
}

func TestWriteRoster_ProducesPDF(t *testing.T) {
	employees := []domain.Employee{{
		ID: "7",
		EmployeeInput: domain.EmployeeInput{
			FullName: "Ann Lee", Job: "Engineer", Salary: "5000", Status: "Active",
			ContractDate: "2024-03-01T00:00:00.000Z",
			Beneficiary:  domain.Beneficiary{FullName: "Bo Lee", Relationship: "Son"},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, fixedRoster().WriteRoster(employees, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteRoster_EmptyAndManyPages(t *testing.T) {
	var empty bytes.Buffer
	require.NoError(t, fixedRoster().WriteRoster(nil, &empty))
	assert.True(t, bytes.HasPrefix(empty.Bytes(), []byte("%PDF-")))

	many := make([]domain.Employee, 120)
	for i := range many {
		many[i].ID = domain.ID(strconv.Itoa(i))
		many[i].FullName = "Employee " + strconv.Itoa(i)
	}
	var big bytes.Buffer
	require.NoError(t, fixedRoster().WriteRoster(many, &big))
	assert.Greater(t, big.Len(), empty.Len())
}

func TestSalaryDisplay(t *testing.T) {
	assert.Equal(t, "$5000.00", salaryDisplay("5000"))
	assert.Equal(t, "$12.50", salaryDisplay(" 12.5 "))
	assert.Equal(t, "negotiable", salaryDisplay("negotiable"))
}

func TestBeneficiaryLine(t *testing.T) {
	assert.Equal(t, "Bo Lee (Son)", beneficiaryLine(domain.Beneficiary{FullName: "Bo Lee", Relationship: "Son"}))
	assert.Equal(t, "Bo Lee", beneficiaryLine(domain.Beneficiary{FullName: "Bo Lee"}))
	assert.Equal(t, "Son", beneficiaryLine(domain.Beneficiary{Relationship: "Son"}))
}

func TestFit(t *testing.T) {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetFont("Helvetica", "", 8.5)

	assert.Equal(t, "Ann", fit(pdf, "Ann", 50))
	long := fit(pdf, "A very long beneficiary name that cannot fit", 20)
	assert.True(t, len(long) < 45)
	assert.LessOrEqual(t, pdf.GetStringWidth(long), 20.0)
	assert.Contains(t, long, "...")
}
