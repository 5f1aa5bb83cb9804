// Package export renders semester compliance stats as downloadable documents.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"sigma/internal/cycle"
	"sigma/internal/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// StatsReport is one semester's compliance as rendered into a document.
type StatsReport struct {
	Semester    cycle.Semester
	Year        int
	Stats       models.SemesterStats
	GeneratedAt time.Time
}

type row struct {
	typ       models.InstallationType
	total     int
	completed int
}

func (r row) percent() float64 {
	if r.total == 0 {
		return 0
	}
	return float64(r.completed) * 100 / float64(r.total)
}

// rows orders types by name so output is stable.
func (r StatsReport) rows() []row {
	out := make([]row, 0, len(r.Stats))
	for typ, s := range r.Stats {
		out = append(out, row{typ: typ, total: s.Total, completed: s.Completed})
	}
	slices.SortFunc(out, func(a, b row) int { return strings.Compare(string(a.typ), string(b.typ)) })
	return out
}

func (r StatsReport) title() string {
	return fmt.Sprintf("Semester %d / %d compliance", r.Semester, r.Year)
}

// Build dispatches on format and returns the document with its content type.
func Build(format string, r StatsReport) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case FormatXLSX, "":
		b, err := BuildStatsXLSX(r)
		return b, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	case FormatPDF:
		b, err := BuildStatsPDF(r)
		return b, "application/pdf", err
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// BuildStatsPDF renders a one-page PDF with a row per installation type.
func BuildStatsPDF(r StatsReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, r.title())
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Installation", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Completed", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Compliance %", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range r.rows() {
		pdf.CellFormat(50, 6, string(row.typ), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d", row.total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d", row.completed), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.1f", row.percent()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildStatsXLSX renders a workbook with a summary sheet and a per-type sheet.
func BuildStatsXLSX(r StatsReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	typesSheet := "types"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(typesSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", r.title())
	_ = f.SetCellValue(summarySheet, "A3", "Semester")
	_ = f.SetCellValue(summarySheet, "B3", int(r.Semester))
	_ = f.SetCellValue(summarySheet, "A4", "Year")
	_ = f.SetCellValue(summarySheet, "B4", r.Year)
	_ = f.SetCellValue(summarySheet, "A5", "Generated")
	_ = f.SetCellValue(summarySheet, "B5", r.GeneratedAt.Format(time.RFC3339))

	_ = f.SetCellValue(typesSheet, "A1", "Installation")
	_ = f.SetCellValue(typesSheet, "B1", "Total")
	_ = f.SetCellValue(typesSheet, "C1", "Completed")
	_ = f.SetCellValue(typesSheet, "D1", "Compliance %")
	for i, row := range r.rows() {
		n := i + 2
		_ = f.SetCellValue(typesSheet, fmt.Sprintf("A%d", n), string(row.typ))
		_ = f.SetCellValue(typesSheet, fmt.Sprintf("B%d", n), row.total)
		_ = f.SetCellValue(typesSheet, fmt.Sprintf("C%d", n), row.completed)
		_ = f.SetCellValue(typesSheet, fmt.Sprintf("D%d", n), row.percent())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
