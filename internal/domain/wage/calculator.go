package wage

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
)

// FixedSalaryLabel is shown instead of an amount for fixed-salary positions.
const FixedSalaryLabel = "Gaji Tetap"

var fixedSalaryPositions = map[employee.Position]bool{
	employee.PositionCEO:     true,
	employee.PositionCoCEO:   true,
	employee.PositionManager: true,
}

// hourlyRates in rupiah per hour.
var hourlyRates = map[employee.Position]decimal.Decimal{
	employee.PositionSupervisor: decimal.NewFromInt(12000),
	employee.PositionKaryawan:   decimal.NewFromInt(9000),
	employee.PositionTrainee:    decimal.NewFromInt(7000),
}

// WageBreakdown is derived on demand and never persisted.
type WageBreakdown struct {
	Position         employee.Position
	Hours            float64
	HourlyRate       decimal.Decimal
	BaseWage         decimal.Decimal
	PerformanceBonus decimal.Decimal
	FixedBonus       decimal.Decimal
	TotalWage        decimal.Decimal
	FixedSalary      bool
}

func IsFixedSalary(position employee.Position) bool {
	return fixedSalaryPositions[position]
}

// HourlyRate returns the rate for an hourly position.
func HourlyRate(position employee.Position) (decimal.Decimal, error) {
	rate, ok := hourlyRates[position]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownPosition, position)
	}
	return rate, nil
}

// Calculate computes the monthly wage for hours worked. Fixed-salary positions
// ignore hours and carry zero amounts.
func Calculate(position employee.Position, hours float64) (WageBreakdown, error) {
	if IsFixedSalary(position) {
		return WageBreakdown{
			Position:         position,
			Hours:            hours,
			HourlyRate:       decimal.Zero,
			BaseWage:         decimal.Zero,
			PerformanceBonus: decimal.Zero,
			FixedBonus:       decimal.Zero,
			TotalWage:        decimal.Zero,
			FixedSalary:      true,
		}, nil
	}

	rate, err := HourlyRate(position)
	if err != nil {
		return WageBreakdown{}, err
	}

	base := rate.Mul(decimal.NewFromFloat(hours)).Round(0)
	return WageBreakdown{
		Position:         position,
		Hours:            hours,
		HourlyRate:       rate,
		BaseWage:         base,
		PerformanceBonus: decimal.Zero,
		FixedBonus:       decimal.Zero,
		TotalWage:        base,
	}, nil
}

// Display is the human-readable total: the fixed-salary label or a rupiah amount.
func (b WageBreakdown) Display() string {
	if b.FixedSalary {
		return FixedSalaryLabel
	}
	return FormatCurrency(b.TotalWage)
}

var idrPrinter = message.NewPrinter(language.Indonesian)

// FormatCurrency renders whole rupiah with Indonesian digit grouping, e.g. "Rp 90.000".
func FormatCurrency(amount decimal.Decimal) string {
	return idrPrinter.Sprintf("Rp %d", amount.Round(0).IntPart())
}
