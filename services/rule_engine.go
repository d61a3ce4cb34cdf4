package services

import (
	"time"

	"github.com/NabeelAltarteer/GetEmpStatusBE/constants"
	"github.com/NabeelAltarteer/GetEmpStatusBE/dto"
	"github.com/NabeelAltarteer/GetEmpStatusBE/models"
)

// The salary pipeline is a fixed sequence of pure steps: December bonus,
// summer deduction, total, tax, average, highest, status band. Every step
// works on request-local copies and never mutates its input.

func isSummerMonth(month int) bool {
	return month == 6 || month == 7 || month == 8
}

// ApplyAdjustments returns a new slice of adjusted salary records with the
// same length and ordering as the input. December records get the bonus
// first, summer records the deduction after; the month sets are disjoint so
// no record ever receives both.
func ApplyAdjustments(records []models.Salary) []models.Salary {
	adjusted := make([]models.Salary, len(records))
	copy(adjusted, records)

	for i := range adjusted {
		if adjusted[i].Month == constants.DecemberMonth {
			adjusted[i].Amount *= constants.DecemberBonusRate
		}
	}
	for i := range adjusted {
		if isSummerMonth(adjusted[i].Month) {
			adjusted[i].Amount *= constants.SummerDeductionRate
		}
	}
	return adjusted
}

// TotalSalary sums the adjusted amounts
func TotalSalary(records []models.Salary) float64 {
	var total float64
	for _, record := range records {
		total += record.Amount
	}
	return total
}

// CalculateTax applies the flat rate strictly above the threshold; a total
// of exactly 10000 pays no tax.
func CalculateTax(total float64) float64 {
	if total > constants.TaxThreshold {
		return total * constants.TaxRate
	}
	return 0
}

// AverageSalary divides the net pool by the raw record count. Zero count
// yields zero; the orchestrator's history gate keeps that theoretical.
func AverageSalary(total, tax float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return (total - tax) / float64(count)
}

// HighestSalary returns the maximum adjusted amount, 0 for an empty list
func HighestSalary(records []models.Salary) float64 {
	var highest float64
	for _, record := range records {
		if record.Amount > highest {
			highest = record.Amount
		}
	}
	return highest
}

// ClassifyStatus maps an average to its band, inclusive on the lower edge
func ClassifyStatus(average float64) string {
	switch {
	case average >= constants.GreenThreshold:
		return constants.StatusGreen
	case average >= constants.OrangeThreshold:
		return constants.StatusOrange
	default:
		return constants.StatusRed
	}
}

// ComputeEmployeeStatus runs the full pipeline for one employee and builds
// the response shape. LastUpdated is set to computedAt in UTC.
func ComputeEmployeeStatus(employee *models.Employee, records []models.Salary, computedAt time.Time) *dto.EmployeeStatusResponse {
	adjusted := ApplyAdjustments(records)
	total := TotalSalary(adjusted)
	tax := CalculateTax(total)
	average := AverageSalary(total, tax, len(adjusted))
	highest := HighestSalary(adjusted)

	salaries := make([]dto.SalaryItem, 0, len(adjusted))
	for _, record := range adjusted {
		salaries = append(salaries, dto.SalaryItem{
			Amount: record.Amount,
			Month:  record.Month,
			Year:   record.Year,
		})
	}

	return &dto.EmployeeStatusResponse{
		EmployeeID:    employee.ID,
		Username:      employee.Username,
		NationalKey:   employee.NationalKey,
		Email:         employee.Email,
		PhoneNumber:   employee.PhoneNumber,
		Salaries:      salaries,
		TotalSalary:   total,
		AverageSalary: average,
		HighestSalary: highest,
		TaxAmount:     tax,
		Status:        ClassifyStatus(average),
		LastUpdated:   computedAt.UTC().Format(time.RFC3339),
	}
}
