package repository

import (
	"context"
	"errors"

	"saisonnalite/internal/cache"
	"saisonnalite/internal/models"

	"gorm.io/gorm"
)

// AvailabilityFilter selects how a product's availability range is matched
// against a week window.
type AvailabilityFilter string

const (
	// FilterContain requires both endpoints of the range inside the window.
	// Products spanning week boundaries match no week at all.
	FilterContain AvailabilityFilter = "contain"
	// FilterOverlap matches any range intersecting the window.
	FilterOverlap AvailabilityFilter = "overlap"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	// Delete removes the product and its favorites in one transaction.
	Delete(ctx context.Context, id uint) error
	ListByProducer(ctx context.Context, producerID uint) ([]models.Product, error)
	// ListAvailable returns products matching the [start, end] window under
	// the given filter, with producer profile and locations attached.
	ListAvailable(ctx context.Context, start, end models.Date, filter AvailabilityFilter) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a new ProductRepository implementation.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProducerCatalog(ctx, product.ProducerID)
	cache.InvalidateWeekCatalog(ctx)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Product", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProducerCatalog(ctx, product.ProducerID)
	cache.InvalidateWeekCatalog(ctx)
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	var producerID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		producerID = product.ProducerID
		// Favorites referencing the product go with it.
		if err := tx.Where("product_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Product", id)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateProducerCatalog(ctx, producerID)
	cache.InvalidateWeekCatalog(ctx)
	return nil
}

func (r *productRepository) ListByProducer(ctx context.Context, producerID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("producer_id = ?", producerID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return products, nil
}

func (r *productRepository) ListAvailable(ctx context.Context, start, end models.Date, filter AvailabilityFilter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Preload("Producer").
		Preload("Locations")

	switch filter {
	case FilterOverlap:
		query = query.Where("availability_start <= ? AND availability_end >= ?", end, start)
	default:
		query = query.Where("availability_start >= ? AND availability_end <= ?", start, end)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return products, nil
}
