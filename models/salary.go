package models

import "time"

type Salary struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employeeId"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Month      int       `gorm:"not null" json:"month"`
	Year       int       `gorm:"not null" json:"year"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
