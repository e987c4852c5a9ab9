// Package pdf renders the employee roster as a printable PDF table: one row
// per employee with the beneficiary summarized in the last column.
package pdf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/employee-admin/internal/domain"
	"github.com/csg33k/employee-admin/internal/ports"
)

type Roster struct {
	title string
	now   func() time.Time
}

var _ ports.RosterExporter = (*Roster)(nil)

func NewRoster(title string) *Roster {
	return &Roster{title: title, now: time.Now}
}

type column struct {
	header string
	width  float64 // share of the content width
	align  string
	value  func(e *domain.Employee) string
}

var columns = []column{
	{"Full Name", 0.20, "L", func(e *domain.Employee) string { return e.FullName }},
	{"Job", 0.17, "L", func(e *domain.Employee) string { return e.Job }},
	{"Salary", 0.11, "R", func(e *domain.Employee) string { return salaryDisplay(e.Salary) }},
	{"Status", 0.11, "L", func(e *domain.Employee) string { return e.Status }},
	{"Contract Date", 0.13, "C", func(e *domain.Employee) string { return domain.DateOnly(e.ContractDate) }},
	{"Beneficiary", 0.28, "L", func(e *domain.Employee) string { return beneficiaryLine(e.Beneficiary) }},
}

const rowH = 6.5

// WriteRoster writes the table to w. The header bar and column headings are
// repeated on every page.
func (ro *Roster) WriteRoster(employees []domain.Employee, w io.Writer) error {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(false, 14)
	pdf.AliasNbPages("{nb}")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	marginL, marginT, marginR, marginB := pdf.GetMargins()
	contentW := pageW - marginL - marginR
	generated := ro.now().Format("2006-01-02 15:04")

	pdf.SetHeaderFunc(func() {
		// ── Header bar ───────────────────────────────────────────────────────
		pdf.SetFillColor(30, 30, 30)
		pdf.Rect(marginL, marginT, contentW, 10, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetXY(marginL+2, marginT+1.5)
		pdf.CellFormat(contentW-40, 7, tr(strings.ToUpper(ro.title)), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(36, 7, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")

		// ── Column headings ──────────────────────────────────────────────────
		pdf.SetXY(marginL, marginT+13)
		pdf.SetFont("Helvetica", "B", 8.5)
		for _, c := range columns {
			pdf.CellFormat(contentW*c.width, 7, c.header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetXY(marginL, pageH-marginB-2)
		pdf.SetFont("Helvetica", "I", 7.5)
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(contentW/2, 5, "Generated "+generated, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 5, fmt.Sprintf("%d employees", len(employees)), "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	bottom := pageH - marginB - 6

	if len(employees) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetX(marginL)
		pdf.CellFormat(contentW, rowH, "No employees", "1", 1, "C", false, 0, "")
	}

	for i := range employees {
		if pdf.GetY()+rowH > bottom {
			pdf.AddPage()
		}
		e := &employees[i]
		// Alternating row background
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Helvetica", "", 8.5)
		pdf.SetX(marginL)
		for _, c := range columns {
			cw := contentW * c.width
			pdf.CellFormat(cw, rowH, fit(pdf, tr(c.value(e)), cw-2), "1", 0, c.align, true, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// fit shortens s with an ellipsis until it is at most width wide.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func salaryDisplay(s string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}
	return "$" + strconv.FormatFloat(f, 'f', 2, 64)
}

// beneficiaryLine returns "Name (Relationship)" or just whichever is set.
func beneficiaryLine(b domain.Beneficiary) string {
	switch {
	case b.FullName != "" && b.Relationship != "":
		return b.FullName + " (" + b.Relationship + ")"
	case b.FullName != "":
		return b.FullName
	default:
		return b.Relationship
	}
}
