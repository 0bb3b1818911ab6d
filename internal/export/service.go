package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/receiptwise/extractor/internal/pipeline"
)

// Service produces XLSX bytes for batch extraction results.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteResultsXLSX returns an XLSX workbook (as bytes) with one row per
// batch item. Failed items are included with their error so reviewers see
// the whole run.
func (s *Service) WriteResultsXLSX(items []pipeline.BatchItem) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source File",
		"Status",
		"Vendor",
		"Transaction Date",
		"Subtotal",
		"Tax",
		"Total",
		"Overall Confidence",
		"Validation Passed",
		"Methods",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, it.Path)
		write(2, string(it.Status))
		if r := it.Result; r != nil {
			write(3, r.Vendor)
			write(4, r.Date)
			if r.Subtotal != nil {
				write(5, fmt.Sprintf("%.2f", *r.Subtotal))
			}
			if r.Tax != nil {
				write(6, fmt.Sprintf("%.2f", *r.Tax))
			}
			if r.Total != nil {
				write(7, fmt.Sprintf("%.2f", *r.Total))
			}
			write(8, fmt.Sprintf("%.2f", r.OverallConfidence))
			write(9, r.ValidationPassed)
			write(10, joinMethods(r.ExtractionMethods))
		}
		write(11, it.Error)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(items),
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func joinMethods(methods []string) string {
	out := ""
	for i, m := range methods {
		if i > 0 {
			out += ", "
		}
		out += m
	}
	return out
}
