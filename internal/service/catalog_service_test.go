package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"saisonnalite/internal/models"
	"saisonnalite/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetWeek_WindowComputation(t *testing.T) {
	t.Parallel()

	var gotStart, gotEnd models.Date
	var gotFilter repository.AvailabilityFilter

	repo := noopProductRepo()
	repo.listAvailableFn = func(_ context.Context, start, end models.Date, filter repository.AvailabilityFilter) ([]models.Product, error) {
		gotStart, gotEnd, gotFilter = start, end, filter
		return []models.Product{{ID: 1, Name: "Chard"}}, nil
	}

	svc := NewCatalogService(repo, noopFavoriteRepo(), time.Monday, repository.FilterContain, 0)

	// Thursday 2024-06-06 falls in the Monday week 06-03..06-09.
	ref := time.Date(2024, 6, 6, 15, 30, 0, 0, time.UTC)
	week, err := svc.GetWeek(context.Background(), ref, 0)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-03", gotStart.String())
	assert.Equal(t, "2024-06-09", gotEnd.String())
	assert.Equal(t, repository.FilterContain, gotFilter)

	assert.Equal(t, "2024-06-03", week.Week.Start.String())
	assert.Equal(t, "2024-06-09", week.Week.End.String())
	require.Len(t, week.Days, 7)
	assert.Equal(t, "2024-06-03", week.Days[0].String())
	assert.Equal(t, "2024-06-09", week.Days[6].String())
	require.Len(t, week.Products, 1)
	assert.False(t, week.Products[0].IsFavorite)
}

func TestCatalogService_GetWeek_SundayStart(t *testing.T) {
	t.Parallel()

	var gotStart models.Date
	repo := noopProductRepo()
	repo.listAvailableFn = func(_ context.Context, start, _ models.Date, _ repository.AvailabilityFilter) ([]models.Product, error) {
		gotStart = start
		return nil, nil
	}

	svc := NewCatalogService(repo, noopFavoriteRepo(), time.Sunday, repository.FilterOverlap, 0)

	ref := time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)
	_, err := svc.GetWeek(context.Background(), ref, 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", gotStart.String())
}

func TestCatalogService_GetWeek_MarksFavorites(t *testing.T) {
	t.Parallel()

	repo := noopProductRepo()
	repo.listAvailableFn = func(_ context.Context, _, _ models.Date, _ repository.AvailabilityFilter) ([]models.Product, error) {
		return []models.Product{{ID: 1}, {ID: 2}, {ID: 3}}, nil
	}
	favRepo := noopFavoriteRepo()
	favRepo.listProductIDsFn = func(_ context.Context, userID uint) ([]uint, error) {
		assert.Equal(t, uint(7), userID)
		return []uint{2}, nil
	}

	svc := NewCatalogService(repo, favRepo, time.Monday, repository.FilterContain, 0)

	week, err := svc.GetWeek(context.Background(), time.Now(), 7)
	require.NoError(t, err)
	require.Len(t, week.Products, 3)
	assert.False(t, week.Products[0].IsFavorite)
	assert.True(t, week.Products[1].IsFavorite)
	assert.False(t, week.Products[2].IsFavorite)
}

func TestCatalogService_GetWeek_AnonymousSkipsFavoriteLookup(t *testing.T) {
	t.Parallel()

	repo := noopProductRepo()
	repo.listAvailableFn = func(_ context.Context, _, _ models.Date, _ repository.AvailabilityFilter) ([]models.Product, error) {
		return []models.Product{{ID: 1}}, nil
	}
	favRepo := noopFavoriteRepo()
	favRepo.listProductIDsFn = func(_ context.Context, _ uint) ([]uint, error) {
		t.Fatal("favorite lookup must not run for anonymous callers")
		return nil, nil
	}

	svc := NewCatalogService(repo, favRepo, time.Monday, repository.FilterContain, 0)

	_, err := svc.GetWeek(context.Background(), time.Now(), 0)
	require.NoError(t, err)
}

func TestCatalogService_GetWeek_RepositoryError(t *testing.T) {
	t.Parallel()

	repo := noopProductRepo()
	repo.listAvailableFn = func(_ context.Context, _, _ models.Date, _ repository.AvailabilityFilter) ([]models.Product, error) {
		return nil, errors.New("db down")
	}

	svc := NewCatalogService(repo, noopFavoriteRepo(), time.Monday, repository.FilterContain, 0)

	week, err := svc.GetWeek(context.Background(), time.Now(), 0)
	assert.Error(t, err)
	assert.Nil(t, week)
}

func TestCatalogService_GetWeek_AppliesQueryTimeout(t *testing.T) {
	t.Parallel()

	repo := noopProductRepo()
	repo.listAvailableFn = func(ctx context.Context, _, _ models.Date, _ repository.AvailabilityFilter) ([]models.Product, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok, "context should carry a deadline")
		assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
		return nil, nil
	}

	svc := NewCatalogService(repo, noopFavoriteRepo(), time.Monday, repository.FilterContain, 5*time.Second)

	_, err := svc.GetWeek(context.Background(), time.Now(), 0)
	require.NoError(t, err)
}
