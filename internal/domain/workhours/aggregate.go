package workhours

import (
	"math"
	"strings"
	"time"
)

// ElapsedHours returns the fractional hours between checkIn and checkOut.
func ElapsedHours(checkIn, checkOut time.Time) float64 {
	return checkOut.Sub(checkIn).Hours()
}

// RoundHours rounds to two decimals for display and export.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// Close sets the check-out and recomputes the stored total.
func (w *WorkingHours) Close(checkOut time.Time) {
	hours := ElapsedHours(w.CheckIn, checkOut)
	w.CheckOut = &checkOut
	w.TotalHours = &hours
}

// Recompute keeps TotalHours consistent after check-in or check-out was edited.
func (w *WorkingHours) Recompute() {
	if w.CheckOut == nil {
		w.TotalHours = nil
		return
	}
	w.Close(*w.CheckOut)
}

// MonthlyHours sums hours of entries whose date falls in month (YYYY-MM).
func MonthlyHours(entries []WorkingHours, month string) float64 {
	var total float64
	prefix := month + "-"
	for _, wh := range entries {
		if strings.HasPrefix(wh.Date, prefix) {
			total += wh.Hours()
		}
	}
	return total
}

// TotalHours sums every entry.
func TotalHours(entries []WorkingHours) float64 {
	var total float64
	for _, wh := range entries {
		total += wh.Hours()
	}
	return total
}

// MonthlyTotals groups MonthlyHours per employee.
func MonthlyTotals(entries []WorkingHours, month string) map[string]float64 {
	totals := make(map[string]float64)
	prefix := month + "-"
	for _, wh := range entries {
		if strings.HasPrefix(wh.Date, prefix) {
			totals[wh.EmployeeID] += wh.Hours()
		}
	}
	return totals
}
