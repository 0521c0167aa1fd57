package repository

import (
	"context"
	"errors"

	"saisonnalite/internal/cache"
	"saisonnalite/internal/models"

	"gorm.io/gorm"
)

// LocationRepository defines persistence operations for sale locations.
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uint) (*models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id uint) error
	ListByProducer(ctx context.Context, producerID uint) ([]models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository returns a new LocationRepository implementation.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *models.Location) error {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProducerCatalog(ctx, location.ProducerID)
	return nil
}

func (r *locationRepository) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	if err := r.db.WithContext(ctx).First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Location", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &location, nil
}

func (r *locationRepository) Update(ctx context.Context, location *models.Location) error {
	if err := r.db.WithContext(ctx).Save(location).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProducerCatalog(ctx, location.ProducerID)
	return nil
}

func (r *locationRepository) Delete(ctx context.Context, id uint) error {
	var location models.Location
	if err := r.db.WithContext(ctx).First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Location", id)
		}
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Delete(&location).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProducerCatalog(ctx, location.ProducerID)
	return nil
}

func (r *locationRepository) ListByProducer(ctx context.Context, producerID uint) ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.WithContext(ctx).
		Where("producer_id = ?", producerID).
		Order("created_at DESC").
		Find(&locations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return locations, nil
}
