package service

import (
	"context"
	"errors"
	"testing"

	"saisonnalite/internal/models"
	"saisonnalite/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// productRepoStub is a stub for repository.ProductRepository.
type productRepoStub struct {
	createFn         func(context.Context, *models.Product) error
	getByIDFn        func(context.Context, uint) (*models.Product, error)
	updateFn         func(context.Context, *models.Product) error
	deleteFn         func(context.Context, uint) error
	listByProducerFn func(context.Context, uint) ([]models.Product, error)
	listAvailableFn  func(context.Context, models.Date, models.Date, repository.AvailabilityFilter) ([]models.Product, error)
}

func (s *productRepoStub) Create(ctx context.Context, product *models.Product) error {
	return s.createFn(ctx, product)
}
func (s *productRepoStub) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.getByIDFn(ctx, id)
}
func (s *productRepoStub) Update(ctx context.Context, product *models.Product) error {
	return s.updateFn(ctx, product)
}
func (s *productRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *productRepoStub) ListByProducer(ctx context.Context, producerID uint) ([]models.Product, error) {
	return s.listByProducerFn(ctx, producerID)
}
func (s *productRepoStub) ListAvailable(ctx context.Context, start, end models.Date, filter repository.AvailabilityFilter) ([]models.Product, error) {
	return s.listAvailableFn(ctx, start, end, filter)
}

func noopProductRepo() *productRepoStub {
	return &productRepoStub{
		createFn:         func(_ context.Context, _ *models.Product) error { return nil },
		getByIDFn:        func(_ context.Context, _ uint) (*models.Product, error) { return &models.Product{}, nil },
		updateFn:         func(_ context.Context, _ *models.Product) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		listByProducerFn: func(_ context.Context, _ uint) ([]models.Product, error) { return nil, nil },
		listAvailableFn: func(_ context.Context, _, _ models.Date, _ repository.AvailabilityFilter) ([]models.Product, error) {
			return nil, nil
		},
	}
}

// locationRepoStub is a stub for repository.LocationRepository.
type locationRepoStub struct {
	createFn         func(context.Context, *models.Location) error
	getByIDFn        func(context.Context, uint) (*models.Location, error)
	updateFn         func(context.Context, *models.Location) error
	deleteFn         func(context.Context, uint) error
	listByProducerFn func(context.Context, uint) ([]models.Location, error)
}

func (s *locationRepoStub) Create(ctx context.Context, location *models.Location) error {
	return s.createFn(ctx, location)
}
func (s *locationRepoStub) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	return s.getByIDFn(ctx, id)
}
func (s *locationRepoStub) Update(ctx context.Context, location *models.Location) error {
	return s.updateFn(ctx, location)
}
func (s *locationRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *locationRepoStub) ListByProducer(ctx context.Context, producerID uint) ([]models.Location, error) {
	return s.listByProducerFn(ctx, producerID)
}

func noopLocationRepo() *locationRepoStub {
	return &locationRepoStub{
		createFn:         func(_ context.Context, _ *models.Location) error { return nil },
		getByIDFn:        func(_ context.Context, _ uint) (*models.Location, error) { return &models.Location{}, nil },
		updateFn:         func(_ context.Context, _ *models.Location) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		listByProducerFn: func(_ context.Context, _ uint) ([]models.Location, error) { return nil, nil },
	}
}

// favoriteRepoStub is a stub for repository.FavoriteRepository.
type favoriteRepoStub struct {
	existsFn         func(context.Context, uint, uint) (bool, error)
	insertFn         func(context.Context, uint, uint) error
	removeFn         func(context.Context, uint, uint) error
	listProductIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *favoriteRepoStub) Exists(ctx context.Context, userID, productID uint) (bool, error) {
	return s.existsFn(ctx, userID, productID)
}
func (s *favoriteRepoStub) Insert(ctx context.Context, userID, productID uint) error {
	return s.insertFn(ctx, userID, productID)
}
func (s *favoriteRepoStub) Remove(ctx context.Context, userID, productID uint) error {
	return s.removeFn(ctx, userID, productID)
}
func (s *favoriteRepoStub) ListProductIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.listProductIDsFn(ctx, userID)
}

func noopFavoriteRepo() *favoriteRepoStub {
	return &favoriteRepoStub{
		existsFn:         func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		insertFn:         func(_ context.Context, _, _ uint) error { return nil },
		removeFn:         func(_ context.Context, _, _ uint) error { return nil },
		listProductIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertForbiddenError asserts that err is an AppError with code FORBIDDEN.
func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}
