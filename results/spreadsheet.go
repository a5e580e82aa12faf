// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/glasanje/models"
)

const (
	SpreadsheetName        = "vote_results.xlsx"
	SpreadsheetSheet       = "results"
	SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var spreadsheetHeader = []any{"ID", "Name", "Votes", "Link"}

// WriteSpreadsheet writes options as an xlsx workbook with one header row
// and one row per option, in the order given.
func WriteSpreadsheet(w io.Writer, options []models.Option) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SpreadsheetSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(SpreadsheetSheet, "A1", &spreadsheetHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, o := range options {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{o.ID, o.Name, o.Votes, o.Link}
		if err := f.SetSheetRow(SpreadsheetSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
