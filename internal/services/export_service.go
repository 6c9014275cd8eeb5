package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/xuri/excelize/v2"
)

var registerHeader = []string{
	"Employee ID", "Employee", "Days Worked", "Gross Wage",
	"PF Basis", "PF Capped", "PF Employee", "PF Employer",
	"ESI Basis", "ESI Employee", "ESI Employer",
	"Total Deduction", "Employer Contribution", "Net Payable",
	"PF Explanation", "ESI Explanation",
}

// ExportService renders a stored computation as a contribution register
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func registerRow(r *models.EmployeeStatutory) []any {
	return []any{
		r.EmployeeID, r.EmployeeName, r.DaysWorked, r.GrossWage,
		r.PFWageBasis, r.PFWageCapped, r.PFEmployeeAmount, r.PFEmployerAmount,
		r.ESIWageBasis, r.ESIEmployeeAmount, r.ESIEmployerAmount,
		r.TotalEmployeeDeduction, r.TotalEmployerContribution, r.NetPayable,
		r.PFExplanation, r.ESIExplanation,
	}
}

func registerTotals(c *models.StatutoryComputation) []any {
	return []any{
		"", "TOTAL", "", c.TotalGrossWages,
		"", "", c.TotalPFEmployee, c.TotalPFEmployer,
		"", c.TotalESIEmployee, c.TotalESIEmployer,
		c.TotalEmployeeDeductions, c.TotalEmployerContributions, c.TotalNetPayable,
		"", "",
	}
}

func registerFilename(c *models.StatutoryComputation, ext string) string {
	if c.BillingPeriod != nil {
		return fmt.Sprintf("statutory_register_%s_%s.%s",
			c.BillingPeriod.FromDate.Format(dateLayout), c.BillingPeriod.ToDate.Format(dateLayout), ext)
	}
	return fmt.Sprintf("statutory_register_%d.%s", c.BillingPeriodID, ext)
}

func (s *ExportService) ExportCSV(ctx context.Context, c *models.StatutoryComputation) ([]byte, string, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	toStrings := func(values []any) []string {
		out := make([]string, len(values))
		for i, v := range values {
			switch t := v.(type) {
			case decimal.Decimal:
				out[i] = t.StringFixed(2)
			default:
				out[i] = fmt.Sprint(t)
			}
		}
		return out
	}

	if err := writer.Write(registerHeader); err != nil {
		return nil, "", err
	}
	for i := range c.Rows {
		if err := writer.Write(toStrings(registerRow(&c.Rows[i]))); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Write(toStrings(registerTotals(c))); err != nil {
		return nil, "", err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), registerFilename(c, "csv"), nil
}

func (s *ExportService) ExportXLSX(ctx context.Context, c *models.StatutoryComputation) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Register"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	if period := c.BillingPeriod; period != nil {
		_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Statutory register %s to %s",
			period.FromDate.Format(dateLayout), period.ToDate.Format(dateLayout)))
	}
	status := "unlocked"
	if c.Locked {
		status = "locked"
	}
	_ = f.SetCellValue(sheet, "A2", fmt.Sprintf("Computation #%d (%s), computed %s by %s",
		c.ID, status, c.ComputedAt.Format("2006-01-02 15:04"), c.ComputedBy))

	writeRow := func(row int, values []any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		converted := make([]any, len(values))
		for i, v := range values {
			if d, ok := v.(decimal.Decimal); ok {
				converted[i] = d.InexactFloat64()
				continue
			}
			converted[i] = v
		}
		return f.SetSheetRow(sheet, cell, &converted)
	}

	headerRow := 4
	header := make([]any, len(registerHeader))
	for i, h := range registerHeader {
		header[i] = h
	}
	if err := writeRow(headerRow, header); err != nil {
		return nil, "", err
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(registerHeader), headerRow)
	_ = f.SetCellStyle(sheet, "A4", lastCol, headerStyle)

	for i := range c.Rows {
		if err := writeRow(headerRow+1+i, registerRow(&c.Rows[i])); err != nil {
			return nil, "", err
		}
	}
	if err := writeRow(headerRow+1+len(c.Rows), registerTotals(c)); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), registerFilename(c, "xlsx"), nil
}
