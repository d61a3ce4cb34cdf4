package models

import "time"

type Employee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Username    string    `gorm:"not null" json:"username"`
	NationalKey string    `gorm:"unique;type:varchar(7);not null" json:"nationalKey"`
	Email       string    `gorm:"unique" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(11)" json:"phoneNumber"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`

	Salaries []Salary `json:"salaries" gorm:"foreignKey:EmployeeID"`
}
