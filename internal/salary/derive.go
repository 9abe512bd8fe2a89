package salary

import (
	"github.com/iwvelando/salary-calculator/pkg/constants"
	"github.com/iwvelando/salary-calculator/pkg/mathutil"
)

// Result is the set of figures derived from one Input.
type Result struct {
	TotalHours float64 `json:"totalHours"`
	MonthlyMin float64 `json:"monthlyMin"`
	MonthlyMax float64 `json:"monthlyMax"`
	HourlyMin  float64 `json:"hourlyMin"`
	HourlyMax  float64 `json:"hourlyMax"`
	AnnualMin  float64 `json:"annualMin"`
	AnnualMax  float64 `json:"annualMax"`
}

// Derive computes the monthly, hourly and annual ranges for in. It accepts
// any Input, including one that fails validation.
//
// Average overtime hours take precedence over fixed overtime hours when
// assuming the monthly working time, but only fixed overtime pay is added
// to the monthly salary.
func Derive(in Input) Result {
	overtimeHours := mathutil.FirstPositive(in.OvertimeAverage.Hours, in.OvertimeFixed.Hours)
	totalHours := constants.BaseWorkHoursPerMonth + float64(overtimeHours)

	monthlyMin := float64(in.BaseSalaryMin + in.OvertimeFixed.AmountMin)
	monthlyMax := float64(in.BaseSalaryMax + in.OvertimeFixed.AmountMax)

	return Result{
		TotalHours: totalHours,
		MonthlyMin: monthlyMin,
		MonthlyMax: monthlyMax,
		HourlyMin:  mathutil.SafeDivide(monthlyMin, totalHours),
		HourlyMax:  mathutil.SafeDivide(monthlyMax, totalHours),
		AnnualMin:  monthlyMin*constants.MonthsPerYear + float64(in.Bonus),
		AnnualMax:  monthlyMax*constants.MonthsPerYear + float64(in.Bonus),
	}
}
