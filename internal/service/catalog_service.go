// Package service holds the business rules between HTTP handlers and
// repositories.
package service

import (
	"context"
	"time"

	"saisonnalite/internal/cache"
	"saisonnalite/internal/calendar"
	"saisonnalite/internal/middleware"
	"saisonnalite/internal/models"
	"saisonnalite/internal/repository"
)

// CatalogWeek is one week of the browsing calendar: the window, its seven
// days and every product on sale during it.
type CatalogWeek struct {
	Week     calendar.Week    `json:"week"`
	Days     []models.Date    `json:"days"`
	Products []models.Product `json:"products"`
}

type CatalogService struct {
	productRepo  repository.ProductRepository
	favoriteRepo repository.FavoriteRepository
	weekStart    time.Weekday
	filter       repository.AvailabilityFilter
	queryTimeout time.Duration
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	favoriteRepo repository.FavoriteRepository,
	weekStart time.Weekday,
	filter repository.AvailabilityFilter,
	queryTimeout time.Duration,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		favoriteRepo: favoriteRepo,
		weekStart:    weekStart,
		filter:       filter,
		queryTimeout: queryTimeout,
	}
}

// WeekOf resolves the calendar window containing ref.
func (s *CatalogService) WeekOf(ref time.Time) calendar.Week {
	return calendar.WeekOf(ref, s.weekStart)
}

// GetWeek returns the catalog for the week containing ref. When userID is
// nonzero the products carry the caller's favorite marks.
func (s *CatalogService) GetWeek(ctx context.Context, ref time.Time, userID uint) (*CatalogWeek, error) {
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	week := s.WeekOf(ref)
	middleware.CatalogQueries.WithLabelValues(string(s.filter)).Inc()

	var products []models.Product
	key := cache.WeekCatalogKey(week.Start.String(), string(s.filter))
	err := cache.Aside(ctx, key, &products, cache.WeekCatalogTTL, func() error {
		var err error
		products, err = s.productRepo.ListAvailable(ctx, week.Start, week.End, s.filter)
		return err
	})
	if err != nil {
		return nil, err
	}

	if userID != 0 && len(products) > 0 {
		if err := s.markFavorites(ctx, userID, products); err != nil {
			return nil, err
		}
	}

	return &CatalogWeek{
		Week:     week,
		Days:     week.Days(),
		Products: products,
	}, nil
}

func (s *CatalogService) markFavorites(ctx context.Context, userID uint, products []models.Product) error {
	ids, err := s.favoriteRepo.ListProductIDs(ctx, userID)
	if err != nil {
		return err
	}
	favorites := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		favorites[id] = struct{}{}
	}
	for i := range products {
		_, products[i].IsFavorite = favorites[products[i].ID]
	}
	return nil
}
