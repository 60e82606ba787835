package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/limaJavier/sectionplanner/pkg/model"
)

// CSVExporter writes one CSV row per section.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(w io.Writer, schedules []model.CombinedSchedule) error {
	return e.Render(w, SectionDataset(schedules))
}

// Render writes the dataset as CSV.
func (e *CSVExporter) Render(w io.Writer, data Dataset) error {
	if len(data.Headers) == 0 {
		return fmt.Errorf("csv requires at least one header")
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(data.Headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	if err := writer.WriteAll(data.Records()); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}
