package wage

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
)

// WriteSlip implements wage.WageService.
func (s *WageServiceImpl) WriteSlip(ctx context.Context, employeeID, month string, w io.Writer) error {
	emp, breakdown, err := s.breakdownFor(ctx, employeeID, month)
	if err != nil {
		return err
	}

	withdrawn, err := s.withdrawalRepo.Exists(ctx, emp.ID, month)
	if err != nil {
		return fmt.Errorf("failed to check withdrawal: %w", err)
	}

	pdf := renderSlip(emp, month, breakdown, withdrawn)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render wage slip: %w", err)
	}
	return nil
}

func renderSlip(emp employee.Employee, month string, b wage.WageBreakdown, withdrawn bool) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Wage slip "+emp.Name+" "+month, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Wage Slip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	line := func(label, value string) {
		pdf.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	line("Employee", emp.Name)
	line("Position", string(emp.Position))
	line("Month", month)
	line("Hours worked", strconv.FormatFloat(workhours.RoundHours(b.Hours), 'f', 2, 64))
	pdf.Ln(4)

	if b.FixedSalary {
		line("Wage", wage.FixedSalaryLabel)
	} else {
		line("Hourly rate", wage.FormatCurrency(b.HourlyRate))
		line("Base wage", wage.FormatCurrency(b.BaseWage))
		line("Performance bonus", wage.FormatCurrency(b.PerformanceBonus))
		line("Fixed bonus", wage.FormatCurrency(b.FixedBonus))
		pdf.SetFont("Helvetica", "B", 12)
		line("Total", wage.FormatCurrency(b.TotalWage))
		pdf.SetFont("Helvetica", "", 12)
	}

	pdf.Ln(4)
	status := "Not withdrawn"
	if withdrawn {
		status = "Withdrawn"
	}
	line("Status", status)

	return pdf
}
