package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	DailySheet   = "Daily totals"

	// excelize built-in number format "#,##0.00"
	amountNumFmt = 4
)

// ErrNoReport is returned when exporting before a report was generated
var ErrNoReport = errors.New("no report has been generated")

// Export writes the current report as an xlsx workbook with a summary sheet
// and the daily breakdown
func (g *ReportGenerator) Export(w io.Writer) error {
	if g.Report == nil {
		return ErrNoReport
	}

	f := excelize.NewFile()
	defer f.Close()

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return fmt.Errorf("create amount style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	summary := g.Report.Summary
	rows := [][]interface{}{
		{"Start date", FormatReportDate(g.StartDate)},
		{"End date", FormatReportDate(g.EndDate)},
		{"Payment method", g.PaymentMethod.Label()},
		{"Total amount", summary.TotalAmount.InexactFloat64()},
		{"Total payments", summary.TotalCount},
	}
	for _, method := range enum.PaymentMethods {
		rows = append(rows, []interface{}{method.Label(), summary.MethodBreakdown.For(method).InexactFloat64()})
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	if err := f.SetCellStyle(SummarySheet, "B4", "B4", amountStyle); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}
	lastBreakdown, _ := excelize.CoordinatesToCellName(2, len(rows))
	if err := f.SetCellStyle(SummarySheet, "B6", lastBreakdown, amountStyle); err != nil {
		return fmt.Errorf("style breakdown: %w", err)
	}

	if _, err := f.NewSheet(DailySheet); err != nil {
		return fmt.Errorf("create daily sheet: %w", err)
	}
	header := []interface{}{"Date", "Amount", "Payments"}
	if err := f.SetSheetRow(DailySheet, "A1", &header); err != nil {
		return fmt.Errorf("write daily header: %w", err)
	}
	for i, day := range g.Report.DailyTotals {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{day.Date, day.Amount.InexactFloat64(), day.Count}
		if err := f.SetSheetRow(DailySheet, cell, &row); err != nil {
			return fmt.Errorf("write daily row: %w", err)
		}
	}
	if n := len(g.Report.DailyTotals); n > 0 {
		last, _ := excelize.CoordinatesToCellName(2, n+1)
		if err := f.SetCellStyle(DailySheet, "B2", last, amountStyle); err != nil {
			return fmt.Errorf("style daily amounts: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
