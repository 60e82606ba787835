package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/limaJavier/sectionplanner/pkg/model"
)

const (
	SummarySheet  = "Schedules"
	SectionsSheet = "Sections"
)

// XLSXExporter writes a workbook with a summary sheet (one row per timetable) and a
// sections sheet (one row per section).
type XLSXExporter struct{}

// NewXLSXExporter builds a workbook exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Export(w io.Writer, schedules []model.CombinedSchedule) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSheet(file, SummarySheet, SummaryDataset(schedules)); err != nil {
		return err
	}
	if _, err := file.NewSheet(SectionsSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", SectionsSheet, err)
	}
	if err := writeSheet(file, SectionsSheet, SectionDataset(schedules)); err != nil {
		return err
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(file *excelize.File, sheet string, data Dataset) error {
	if err := writeRow(file, sheet, 1, data.Headers); err != nil {
		return err
	}

	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(data.Headers), 1)
		_ = file.SetCellStyle(sheet, startCell, endCell, style)
	}

	for i, record := range data.Records() {
		if err := writeRow(file, sheet, i+2, record); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(file *excelize.File, sheet string, row int, values []string) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
