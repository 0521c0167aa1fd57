package service

import (
	"context"

	"saisonnalite/internal/middleware"
	"saisonnalite/internal/repository"
)

type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	productRepo repository.ProductRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// Toggle flips the favorite state of a product for a user and reports the
// resulting state.
func (s *FavoriteService) Toggle(ctx context.Context, userID, productID uint) (bool, error) {
	// The product must exist; favorites never point at deleted products.
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return false, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, productID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.favoriteRepo.Remove(ctx, userID, productID); err != nil {
			return false, err
		}
		middleware.FavoriteToggles.WithLabelValues("removed").Inc()
		return false, nil
	}

	if err := s.favoriteRepo.Insert(ctx, userID, productID); err != nil {
		return false, err
	}
	middleware.FavoriteToggles.WithLabelValues("added").Inc()
	return true, nil
}

// ListProductIDs returns the IDs of the user's favorite products, most
// recently added first.
func (s *FavoriteService) ListProductIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids, err := s.favoriteRepo.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}
