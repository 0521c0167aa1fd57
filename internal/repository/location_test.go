package repository

import (
	"context"
	"regexp"
	"testing"

	"saisonnalite/internal/cache"
	"saisonnalite/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLocationRepository_ListByProducer(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "address", "producer_id"}).
		AddRow(2, "Saturday market", "Place du Marché", 4).
		AddRow(1, "Farm stand", "12 Route des Vergers", 4)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations" WHERE producer_id = $1 AND "locations"."deleted_at" IS NULL ORDER BY created_at DESC`)).
		WithArgs(4).
		WillReturnRows(rows)

	locations, err := repo.ListByProducer(ctx, 4)
	assert.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Saturday market", locations[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations" WHERE "locations"."id" = $1`)).
			WithArgs(2, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "producer_id"}).AddRow(2, 4))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "locations" SET "deleted_at"=$1 WHERE "locations"."id" = $2`)).
			WithArgs(sqlmock.AnyArg(), 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(ctx, 2)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations" WHERE "locations"."id" = $1`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		err := repo.Delete(ctx, 99)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLocationRepository_Delete_DropsCachedCatalog(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	db, mock := setupMockDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	key := cache.ProducerCatalogKey(4)
	require.NoError(t, cache.SetJSON(ctx, key, []uint{2}, cache.ProducerCatalogTTL))
	require.True(t, mr.Exists(key))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations" WHERE "locations"."id" = $1`)).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "producer_id"}).AddRow(2, 4))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "locations" SET "deleted_at"=$1`)).
		WithArgs(sqlmock.AnyArg(), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(ctx, 2))
	assert.False(t, mr.Exists(key))
	assert.NoError(t, mock.ExpectationsWereMet())
}
