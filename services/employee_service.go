package services

import (
	"context"
	"strings"
	"time"

	"github.com/NabeelAltarteer/GetEmpStatusBE/constants"
	"github.com/NabeelAltarteer/GetEmpStatusBE/dto"
	"github.com/NabeelAltarteer/GetEmpStatusBE/errors"
	"github.com/NabeelAltarteer/GetEmpStatusBE/models"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services/logger"
	"github.com/NabeelAltarteer/GetEmpStatusBE/validator"
)

// EmployeeStatusService owns the end-to-end status request flow: cache
// lookup, retried record fetch, domain validation, salary pipeline, status
// derivation and cache population.
type EmployeeStatusService struct {
	store     EmployeeStore
	cache     StatusCache
	logger    logger.Logger
	retryOpts RetryOptions
	cacheTTL  time.Duration
	now       func() time.Time
}

type EmployeeStatusServiceOptions struct {
	Store  EmployeeStore
	Cache  StatusCache
	Logger logger.Logger
	// RetryOptions overrides the data-store retry settings when non-nil
	RetryOptions *RetryOptions
	// CacheTTL overrides the default entry lifetime when positive
	CacheTTL time.Duration
}

func NewEmployeeStatusService(opts EmployeeStatusServiceOptions) *EmployeeStatusService {
	retryOpts := DatabaseRetryOptions()
	if opts.RetryOptions != nil {
		retryOpts = *opts.RetryOptions
	}
	cacheTTL := opts.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = constants.DefaultCacheTTL
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	cache := opts.Cache
	if cache == nil {
		// No cache handle means degraded mode, same as a Redis that
		// never came up.
		cache = NewCacheService(nil, log)
	}
	return &EmployeeStatusService{
		store:     opts.Store,
		cache:     cache,
		logger:    log,
		retryOpts: retryOpts,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

// GetEmployeeStatus computes the compensation status for one national key.
// A cache hit short-circuits the whole pipeline; only a fully successful
// computation is ever written back to the cache.
func (s *EmployeeStatusService) GetEmployeeStatus(ctx context.Context, nationalKey string) (*dto.EmployeeStatusResponse, error) {
	if err := validator.ValidateNationalKey(nationalKey); err != nil {
		s.logger.Info("rejected status request, invalid national key %q", nationalKey)
		return nil, err
	}
	key := strings.ToUpper(strings.TrimSpace(nationalKey))
	cacheKey := EmployeeStatusKey(key)

	var cached dto.EmployeeStatusResponse
	if s.cache.Get(ctx, cacheKey, &cached) {
		s.logger.Info("cache hit for %s", cacheKey)
		return &cached, nil
	}
	s.logger.Info("cache miss for %s", cacheKey)

	employee, err := s.fetchEmployee(ctx, key)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		s.logger.Info("no employee record for national key %s", key)
		return nil, errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Employee not found", errors.ErrEmployeeNotFound)
	}

	if !validator.IsActive(employee.IsActive) {
		s.logger.Info("employee %s is inactive", key)
		return nil, errors.NewAppError(errors.ErrCodeInactiveEmployee, "Employee is inactive", errors.ErrEmployeeInactive)
	}

	salaries, err := s.fetchSalaries(ctx, employee.ID)
	if err != nil {
		return nil, err
	}

	if !validator.HasMinimumHistory(len(salaries)) {
		s.logger.Info("employee %s has only %d salary records, need %d", key, len(salaries), constants.MinSalaryHistory)
		return nil, errors.NewAppError(errors.ErrCodeInsufficientData, "Not enough salary history to compute a status", nil)
	}

	if err := validator.ValidateSalaryShape(salaries); err != nil {
		s.logger.Info("employee %s has malformed salary data: %v", key, err)
		return nil, err
	}

	status := ComputeEmployeeStatus(employee, salaries, s.now())

	// Best-effort write; the computed response goes out regardless of the
	// cache outcome.
	s.cache.Set(ctx, cacheKey, status, s.cacheTTL)

	return status, nil
}

func (s *EmployeeStatusService) fetchEmployee(ctx context.Context, key string) (*models.Employee, error) {
	opts := s.retryOpts
	opts.OnRetry = func(attempt int, err error) {
		s.logger.Error("record store lookup for %s failed on attempt %d: %v", key, attempt, err)
	}
	result, err := ExecuteWithRetry(func() (*models.Employee, error) {
		return s.store.FindByNationalKey(ctx, key)
	}, opts)
	if err != nil {
		s.logger.Error("record store lookup for %s exhausted %d attempts: %v", key, opts.MaxAttempts, err)
		return nil, errors.NewAppError(errors.ErrCodeDataAccess, "Could not reach the record store", err)
	}
	if result.Attempts > 1 {
		s.logger.Info("record store lookup for %s recovered after %d attempts", key, result.Attempts)
	}
	return result.Value, nil
}

func (s *EmployeeStatusService) fetchSalaries(ctx context.Context, employeeID uint) ([]models.Salary, error) {
	opts := s.retryOpts
	opts.OnRetry = func(attempt int, err error) {
		s.logger.Error("salary history fetch for employee %d failed on attempt %d: %v", employeeID, attempt, err)
	}
	result, err := ExecuteWithRetry(func() ([]models.Salary, error) {
		return s.store.ListSalaries(ctx, employeeID)
	}, opts)
	if err != nil {
		s.logger.Error("salary history fetch for employee %d exhausted %d attempts: %v", employeeID, opts.MaxAttempts, err)
		return nil, errors.NewAppError(errors.ErrCodeDataAccess, "Could not reach the record store", err)
	}
	if result.Attempts > 1 {
		s.logger.Info("salary history fetch for employee %d recovered after %d attempts", employeeID, result.Attempts)
	}
	return result.Value, nil
}

// InvalidateEmployee drops the cached status for one national key
func (s *EmployeeStatusService) InvalidateEmployee(ctx context.Context, nationalKey string) error {
	if err := validator.ValidateNationalKey(nationalKey); err != nil {
		return err
	}
	key := strings.ToUpper(strings.TrimSpace(nationalKey))
	s.cache.Delete(ctx, EmployeeStatusKey(key))
	return nil
}

// InvalidateAll drops every cached employee status and returns the count
func (s *EmployeeStatusService) InvalidateAll(ctx context.Context) int {
	deleted := s.cache.DeleteByPrefix(ctx, constants.EmployeeCachePrefix)
	s.logger.Info("invalidated %d cached employee statuses", deleted)
	return deleted
}
