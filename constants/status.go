package constants

import "time"

// Compensation status bands
const (
	StatusGreen  = "GREEN"
	StatusOrange = "ORANGE"
	StatusRed    = "RED"
)

// Status band thresholds (inclusive on the lower edge)
const (
	GreenThreshold  = 5000.0
	OrangeThreshold = 3000.0
)

// Salary adjustment rules
const (
	DecemberBonusRate   = 1.10
	SummerDeductionRate = 0.95
	DecemberMonth       = 12
)

// Tax rules: 7% applies strictly above the threshold
const (
	TaxRate      = 0.07
	TaxThreshold = 10000.0
)

// Salary record bounds
const (
	MinSalaryMonth = 1
	MaxSalaryMonth = 12
	MinSalaryYear  = 2000
)

// MinSalaryHistory is the minimum number of salary records required
// before a status can be computed.
const MinSalaryHistory = 3

// Cache settings
const (
	EmployeeCachePrefix = "employee:"
	DefaultCacheTTL     = 3600 * time.Second
)
