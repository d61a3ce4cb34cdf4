package dto

// SalaryItem is one adjusted salary record in the status response
type SalaryItem struct {
	Amount float64 `json:"amount"`
	Month  int     `json:"month"`
	Year   int     `json:"year"`
}

// EmployeeStatusResponse is the computed compensation status for one employee
type EmployeeStatusResponse struct {
	EmployeeID    uint         `json:"EmployeeID"`
	Username      string       `json:"Username"`
	NationalKey   string       `json:"NationalKey"`
	Email         string       `json:"Email"`
	PhoneNumber   string       `json:"PhoneNumber"`
	Salaries      []SalaryItem `json:"Salaries"`
	TotalSalary   float64      `json:"TotalSalary"`
	AverageSalary float64      `json:"AverageSalary"`
	HighestSalary float64      `json:"HighestSalary"`
	TaxAmount     float64      `json:"TaxAmount"`
	Status        string       `json:"Status"`
	LastUpdated   string       `json:"LastUpdated"`
}

// EmployeeSearchResult is one row of the fuzzy directory search
type EmployeeSearchResult struct {
	ID          uint    `json:"id"`
	Username    string  `json:"username"`
	NationalKey string  `json:"nationalKey"`
	Email       string  `json:"email"`
	Score       float64 `json:"score"`
}
