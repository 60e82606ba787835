// Package export writes timetables to files other tools can open: CSV, PDF, Excel
// workbooks and iCalendar.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
	"github.com/limaJavier/sectionplanner/pkg/model"
)

// Exporter writes timetables to w in a single format
type Exporter interface {
	Export(w io.Writer, schedules []model.CombinedSchedule) error
}

// Formats lists the supported file extensions
var Formats = []string{".csv", ".pdf", ".xlsx", ".ics"}

// ExporterFor chooses the exporter matching the extension of path
func ExporterFor(path string, term Term) (Exporter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVExporter(), nil
	case ".pdf":
		return NewPDFExporter("Timetables"), nil
	case ".xlsx":
		return NewXLSXExporter(), nil
	case ".ics":
		return NewICSExporter(term), nil
	}
	return nil, apperrors.Clonef(apperrors.ErrExportFailed, "cannot export to %q: use one of %s", path, strings.Join(Formats, ", "))
}

// ExportFile writes the timetables to path in the format given by its extension
func ExportFile(path string, schedules []model.CombinedSchedule, term Term) (err error) {
	exporter, err := ExporterFor(path, term)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrExportFailed.Code, fmt.Sprintf("cannot create %s", path))
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = apperrors.Wrap(closeErr, apperrors.ErrExportFailed.Code, fmt.Sprintf("cannot write %s", path))
		}
	}()

	if err := exporter.Export(file, schedules); err != nil {
		return apperrors.Wrap(err, apperrors.ErrExportFailed.Code, fmt.Sprintf("cannot export to %s", path))
	}
	return nil
}
