package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/limaJavier/sectionplanner/pkg/model"
)

// PDFExporter renders timetables as a landscape table, one block of rows per timetable.
type PDFExporter struct {
	title string
}

// NewPDFExporter constructs a PDF exporter; title is printed on top when not empty.
func NewPDFExporter(title string) *PDFExporter {
	return &PDFExporter{title: title}
}

func (e *PDFExporter) Export(w io.Writer, schedules []model.CombinedSchedule) error {
	return e.Render(w, SectionDataset(schedules))
}

// Render draws the dataset as a bordered table.
func (e *PDFExporter) Render(w io.Writer, data Dataset) error {
	if len(data.Headers) == 0 {
		return fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	if e.title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(translate(e.title)), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	pdf.SetFont("Arial", "B", 9)
	colWidth := 277.0 / float64(len(data.Headers))
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, record := range data.Records() {
		for _, value := range record {
			pdf.CellFormat(colWidth, 7, translate(value), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
