package services

import (
	"context"
	"errors"

	"github.com/NabeelAltarteer/GetEmpStatusBE/models"

	"gorm.io/gorm"
)

// EmployeeStore supplies the employee record and its salary history.
// Absent records are reported as (nil, nil), not as an error; any error
// returned is a data-access failure.
type EmployeeStore interface {
	FindByNationalKey(ctx context.Context, nationalKey string) (*models.Employee, error)
	ListSalaries(ctx context.Context, employeeID uint) ([]models.Salary, error)
}

// GormEmployeeStore implements EmployeeStore over Postgres
type GormEmployeeStore struct {
	db *gorm.DB
}

func NewGormEmployeeStore(db *gorm.DB) *GormEmployeeStore {
	return &GormEmployeeStore{db: db}
}

func (s *GormEmployeeStore) FindByNationalKey(ctx context.Context, nationalKey string) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.WithContext(ctx).Where("national_key = ?", nationalKey).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// ListSalaries returns the salary history newest-first so responses stay
// reproducible across calls.
func (s *GormEmployeeStore) ListSalaries(ctx context.Context, employeeID uint) ([]models.Salary, error) {
	var salaries []models.Salary
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&salaries).Error
	if err != nil {
		return nil, err
	}
	return salaries, nil
}
