package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NabeelAltarteer/GetEmpStatusBE/constants"
	apperrors "github.com/NabeelAltarteer/GetEmpStatusBE/errors"
	"github.com/NabeelAltarteer/GetEmpStatusBE/models"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services/logger"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	employees map[string]*models.Employee
	salaries  map[uint][]models.Salary

	findErr   error
	failFindN int // fail the first N FindByNationalKey calls
	findCalls int
	listErr   error
	listCalls int
}

func (s *fakeStore) FindByNationalKey(ctx context.Context, nationalKey string) (*models.Employee, error) {
	s.findCalls++
	if s.findErr != nil && (s.failFindN == 0 || s.findCalls <= s.failFindN) {
		return nil, s.findErr
	}
	return s.employees[nationalKey], nil
}

func (s *fakeStore) ListSalaries(ctx context.Context, employeeID uint) ([]models.Salary, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.salaries[employeeID], nil
}

// fakeCache serializes values the same way the real cache does, so the
// hit path exercises the unmarshal step too.
type fakeCache struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (c *fakeCache) Get(ctx context.Context, key string, target interface{}) bool {
	data, ok := c.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, target) == nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.entries[key] = data
	c.ttls[key] = ttl
	c.sets++
}

func (c *fakeCache) Delete(ctx context.Context, key string) {
	delete(c.entries, key)
}

func (c *fakeCache) DeleteByPrefix(ctx context.Context, prefix string) int {
	deleted := 0
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
			deleted++
		}
	}
	return deleted
}

func (c *fakeCache) IsAvailable() bool { return true }

func twelveSalaries(amount float64) []models.Salary {
	salaries := make([]models.Salary, 0, 12)
	for month := 12; month >= 1; month-- {
		salaries = append(salaries, models.Salary{Amount: amount, Month: month, Year: 2024})
	}
	return salaries
}

func newTestService(store EmployeeStore, cache StatusCache) *EmployeeStatusService {
	retryOpts := RetryOptions{
		MaxAttempts:       3,
		InitialDelay:      time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          5 * time.Millisecond,
	}
	return NewEmployeeStatusService(EmployeeStatusServiceOptions{
		Store:        store,
		Cache:        cache,
		Logger:       logger.NewDefaultLogger(logger.ErrorLevel),
		RetryOptions: &retryOpts,
	})
}

func TestGetEmployeeStatusGreenScenario(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1001": {ID: 1, Username: "nabeel", NationalKey: "NAT1001", IsActive: true},
		},
		salaries: map[uint][]models.Salary{
			1: twelveSalaries(6000),
		},
	}
	cache := newFakeCache()
	service := newTestService(store, cache)

	status, err := service.GetEmployeeStatus(context.Background(), "NAT1001")

	require.NoError(t, err)
	assert.Equal(t, "GREEN", status.Status)
	assert.Len(t, status.Salaries, 12)
	assert.True(t, status.AverageSalary >= 5000)

	// Only the fully computed response gets cached.
	assert.Equal(t, 1, cache.sets)
	_, cached := cache.entries["employee:NAT1001"]
	assert.True(t, cached)
}

func TestGetEmployeeStatusCachesWithDefaultTTL(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1001": {ID: 1, NationalKey: "NAT1001", IsActive: true},
		},
		salaries: map[uint][]models.Salary{1: twelveSalaries(6000)},
	}
	cache := newFakeCache()
	service := newTestService(store, cache)

	_, err := service.GetEmployeeStatus(context.Background(), "NAT1001")

	require.NoError(t, err)
	assert.Equal(t, constants.DefaultCacheTTL, cache.ttls["employee:NAT1001"])
}

func TestGetEmployeeStatusCachesWithOverriddenTTL(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1001": {ID: 1, NationalKey: "NAT1001", IsActive: true},
		},
		salaries: map[uint][]models.Salary{1: twelveSalaries(6000)},
	}
	cache := newFakeCache()
	retryOpts := RetryOptions{
		MaxAttempts:       3,
		InitialDelay:      time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          5 * time.Millisecond,
	}
	service := NewEmployeeStatusService(EmployeeStatusServiceOptions{
		Store:        store,
		Cache:        cache,
		Logger:       logger.NewDefaultLogger(logger.ErrorLevel),
		RetryOptions: &retryOpts,
		CacheTTL:     90 * time.Second,
	})

	_, err := service.GetEmployeeStatus(context.Background(), "NAT1001")

	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cache.ttls["employee:NAT1001"])
}

func TestNewEmployeeStatusServiceDefaultsCacheToDegraded(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1001": {ID: 1, NationalKey: "NAT1001", IsActive: true},
		},
		salaries: map[uint][]models.Salary{1: twelveSalaries(6000)},
	}
	retryOpts := RetryOptions{
		MaxAttempts:       3,
		InitialDelay:      time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          5 * time.Millisecond,
	}
	service := NewEmployeeStatusService(EmployeeStatusServiceOptions{
		Store:        store,
		Logger:       logger.NewDefaultLogger(logger.ErrorLevel),
		RetryOptions: &retryOpts,
	})

	status, err := service.GetEmployeeStatus(context.Background(), "NAT1001")

	require.NoError(t, err)
	assert.Equal(t, "GREEN", status.Status)
}

func TestGetEmployeeStatusInvalidKey(t *testing.T) {
	store := &fakeStore{}
	service := newTestService(store, newFakeCache())

	_, err := service.GetEmployeeStatus(context.Background(), "not-a-key")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidKey, apperrors.GetAppError(err).Code)
	assert.Equal(t, 0, store.findCalls)
}

func TestGetEmployeeStatusNotFound(t *testing.T) {
	store := &fakeStore{employees: map[string]*models.Employee{}}
	cache := newFakeCache()
	service := newTestService(store, cache)

	_, err := service.GetEmployeeStatus(context.Background(), "ZZZ9999")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeEmployeeNotFound, apperrors.GetAppError(err).Code)
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	// A miss is never cached.
	assert.Equal(t, 0, cache.sets)
}

func TestGetEmployeeStatusInactiveIsNotNotFound(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1003": {ID: 3, NationalKey: "NAT1003", IsActive: false},
		},
		salaries: map[uint][]models.Salary{3: twelveSalaries(6000)},
	}
	service := newTestService(store, newFakeCache())

	_, err := service.GetEmployeeStatus(context.Background(), "NAT1003")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInactiveEmployee, apperrors.GetAppError(err).Code)
	assert.ErrorIs(t, err, apperrors.ErrEmployeeInactive)
	// Activity is checked before salary history is even fetched.
	assert.Equal(t, 0, store.listCalls)
}

func TestGetEmployeeStatusInsufficientHistory(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1005": {ID: 5, NationalKey: "NAT1005", IsActive: true},
		},
		salaries: map[uint][]models.Salary{
			5: {
				{Amount: 5000, Month: 1, Year: 2024},
				{Amount: 5000, Month: 2, Year: 2024},
			},
		},
	}
	service := newTestService(store, newFakeCache())

	_, err := service.GetEmployeeStatus(context.Background(), "NAT1005")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInsufficientData, apperrors.GetAppError(err).Code)
}

func TestGetEmployeeStatusMalformedSalary(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1007": {ID: 7, NationalKey: "NAT1007", IsActive: true},
		},
		salaries: map[uint][]models.Salary{
			7: {
				{Amount: 5000, Month: 1, Year: 2024},
				{Amount: -5000, Month: 2, Year: 2024},
				{Amount: 5000, Month: 3, Year: 2024},
			},
		},
	}
	cache := newFakeCache()
	service := newTestService(store, cache)

	_, err := service.GetEmployeeStatus(context.Background(), "NAT1007")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetAppError(err).Code)
	assert.Equal(t, 0, cache.sets)
}

func TestGetEmployeeStatusCacheHitSkipsStore(t *testing.T) {
	store := &fakeStore{}
	cache := newFakeCache()
	service := newTestService(store, cache)

	cached, err := json.Marshal(map[string]interface{}{
		"NationalKey": "NAT1001",
		"Status":      "GREEN",
	})
	require.NoError(t, err)
	cache.entries["employee:NAT1001"] = cached

	status, err := service.GetEmployeeStatus(context.Background(), "NAT1001")

	require.NoError(t, err)
	assert.Equal(t, "GREEN", status.Status)
	assert.Equal(t, 0, store.findCalls)
	assert.Equal(t, 0, store.listCalls)
}

func TestGetEmployeeStatusKeyIsNormalizedBeforeLookup(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1001": {ID: 1, NationalKey: "NAT1001", IsActive: true},
		},
		salaries: map[uint][]models.Salary{1: twelveSalaries(4000)},
	}
	cache := newFakeCache()
	service := newTestService(store, cache)

	status, err := service.GetEmployeeStatus(context.Background(), "  nat1001 ")

	require.NoError(t, err)
	assert.Equal(t, "NAT1001", status.NationalKey)
	_, ok := cache.entries["employee:NAT1001"]
	assert.True(t, ok)
}

func TestGetEmployeeStatusRetryExhaustion(t *testing.T) {
	rootCause := errors.New("connection refused")
	store := &fakeStore{findErr: rootCause}
	service := newTestService(store, newFakeCache())

	_, err := service.GetEmployeeStatus(context.Background(), "NAT1001")

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeDataAccess, appErr.Code)
	assert.ErrorIs(t, err, rootCause)
	assert.Equal(t, 3, store.findCalls)
}

func TestGetEmployeeStatusRecoversAfterOneFailure(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1001": {ID: 1, NationalKey: "NAT1001", IsActive: true},
		},
		salaries:  map[uint][]models.Salary{1: twelveSalaries(6000)},
		findErr:   errors.New("transient"),
		failFindN: 1,
	}
	service := newTestService(store, newFakeCache())

	status, err := service.GetEmployeeStatus(context.Background(), "NAT1001")

	require.NoError(t, err)
	assert.Equal(t, "GREEN", status.Status)
	assert.Equal(t, 2, store.findCalls)
}

func TestGetEmployeeStatusWithDegradedCache(t *testing.T) {
	// The real cache service with a nil client stands in for a Redis
	// that never came up; the request must still succeed.
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1001": {ID: 1, NationalKey: "NAT1001", IsActive: true},
		},
		salaries: map[uint][]models.Salary{1: twelveSalaries(2000)},
	}
	cache := NewCacheService(nil, logger.NewDefaultLogger(logger.ErrorLevel))
	service := newTestService(store, cache)

	status, err := service.GetEmployeeStatus(context.Background(), "NAT1001")

	require.NoError(t, err)
	assert.Equal(t, "RED", status.Status)
}

func TestGetEmployeeStatusIsIdempotent(t *testing.T) {
	store := &fakeStore{
		employees: map[string]*models.Employee{
			"NAT1001": {ID: 1, NationalKey: "NAT1001", IsActive: true},
		},
		salaries: map[uint][]models.Salary{1: twelveSalaries(3500)},
	}
	// No cache between the calls so both run the full pipeline.
	cacheA := NewCacheService(nil, logger.NewDefaultLogger(logger.ErrorLevel))
	service := newTestService(store, cacheA)

	first, err := service.GetEmployeeStatus(context.Background(), "NAT1001")
	require.NoError(t, err)
	second, err := service.GetEmployeeStatus(context.Background(), "NAT1001")
	require.NoError(t, err)

	assert.Equal(t, first.Salaries, second.Salaries)
	assert.Equal(t, first.TotalSalary, second.TotalSalary)
	assert.Equal(t, first.TaxAmount, second.TaxAmount)
	assert.Equal(t, first.AverageSalary, second.AverageSalary)
	assert.Equal(t, first.HighestSalary, second.HighestSalary)
	assert.Equal(t, first.Status, second.Status)
}

func TestInvalidateEmployee(t *testing.T) {
	cache := newFakeCache()
	cache.entries["employee:NAT1001"] = []byte(`{}`)
	service := newTestService(&fakeStore{}, cache)

	require.NoError(t, service.InvalidateEmployee(context.Background(), "NAT1001"))
	_, ok := cache.entries["employee:NAT1001"]
	assert.False(t, ok)

	err := service.InvalidateEmployee(context.Background(), "bad")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidKey, apperrors.GetAppError(err).Code)
}

func TestInvalidateAll(t *testing.T) {
	cache := newFakeCache()
	cache.entries["employee:NAT1001"] = []byte(`{}`)
	cache.entries["employee:NAT1002"] = []byte(`{}`)
	cache.entries["other:key"] = []byte(`{}`)
	service := newTestService(&fakeStore{}, cache)

	deleted := service.InvalidateAll(context.Background())

	assert.Equal(t, 2, deleted)
	_, ok := cache.entries["other:key"]
	assert.True(t, ok)
}
