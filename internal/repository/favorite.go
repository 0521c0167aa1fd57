package repository

import (
	"context"

	"saisonnalite/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository defines persistence operations for user favorites.
type FavoriteRepository interface {
	Exists(ctx context.Context, userID, productID uint) (bool, error)
	Insert(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
	ListProductIDs(ctx context.Context, userID uint) ([]uint, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *favoriteRepository) Insert(ctx context.Context, userID, productID uint) error {
	favorite := models.Favorite{UserID: userID, ProductID: productID}
	if err := r.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if isUniqueConstraintError(err) {
			// a concurrent toggle already inserted the row
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Remove deletes a favorite if present. Removing a favorite that does not
// exist is not an error.
func (r *favoriteRepository) Remove(ctx context.Context, userID, productID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favorite{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *favoriteRepository) ListProductIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("product_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
