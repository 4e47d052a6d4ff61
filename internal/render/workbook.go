package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jengzang/accident-dashboard-go/internal/models"
)

// Sheet names of the exported workbook
const (
	SheetAggregated = "Aggregated"
	SheetTop        = "Top"
)

// WriteWorkbook exports the chart table and the ranked table as an XLSX file
func WriteWorkbook(w io.Writer, d models.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetAggregated); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetTop); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	// Aggregated: subregion column followed by one column per series
	header := []interface{}{HeadingRegion}
	for _, s := range d.Chart.Series {
		header = append(header, s.Label)
	}
	if err := setRow(f, SheetAggregated, 1, header); err != nil {
		return err
	}
	for i, subregion := range d.Chart.Index {
		row := []interface{}{subregion}
		for _, s := range d.Chart.Series {
			row = append(row, s.Values[i])
		}
		if err := setRow(f, SheetAggregated, i+2, row); err != nil {
			return err
		}
	}

	topHeader := make([]interface{}, 0, len(d.Top.Columns))
	for _, c := range d.Top.Columns {
		topHeader = append(topHeader, c)
	}
	if err := setRow(f, SheetTop, 1, topHeader); err != nil {
		return err
	}
	for i, e := range d.Top.Entries {
		if err := setRow(f, SheetTop, i+2, []interface{}{e.Subregion, e.Value}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
