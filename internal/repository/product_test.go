package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"saisonnalite/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProductRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		productID     uint
		mockBehavior  func()
		expectedName  string
		expectedError bool
	}{
		{
			name:      "Success",
			productID: 1,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "name", "producer_id"}).
					AddRow(1, "Heirloom tomatoes", 4)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE "products"."id" = $1 AND "products"."deleted_at" IS NULL ORDER BY "products"."id" LIMIT $2`)).
					WithArgs(1, 1).
					WillReturnRows(rows)
			},
			expectedName: "Heirloom tomatoes",
		},
		{
			name:      "Not Found",
			productID: 99,
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE "products"."id" = $1`)).
					WithArgs(99, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			product, err := repo.GetByID(ctx, tt.productID)

			if tt.expectedError {
				assert.Error(t, err)
			} else if assert.NotNil(t, product) {
				assert.Equal(t, tt.expectedName, product.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_ListAvailable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	start := models.NewDate(2024, 6, 3)
	end := models.NewDate(2024, 6, 9)

	t.Run("Contain Filter", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "producer_id", "availability_start", "availability_end"}).
			AddRow(1, "Strawberries", 4, "2024-06-03", "2024-06-09")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE availability_start >= $1 AND availability_end <= $2 AND "products"."deleted_at" IS NULL`)).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(rows)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations" WHERE "locations"."producer_id" = $1`)).
			WithArgs(4).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "producer_id"}).
				AddRow(10, "Wednesday market", 4))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE "profiles"."user_id" = $1`)).
			WithArgs(4).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name", "role"}).
				AddRow(4, "Marta", "producer"))

		products, err := repo.ListAvailable(ctx, start, end, FilterContain)
		assert.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Strawberries", products[0].Name)
		require.Len(t, products[0].Locations, 1)
		require.NotNil(t, products[0].Producer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Overlap Filter Swaps Comparison", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE availability_start <= $1 AND availability_end >= $2 AND "products"."deleted_at" IS NULL`)).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "producer_id"}))

		products, err := repo.ListAvailable(ctx, start, end, FilterOverlap)
		assert.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
			WillReturnError(errors.New("connection timeout"))

		products, err := repo.ListAvailable(ctx, start, end, FilterContain)
		assert.Error(t, err)
		assert.Nil(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_ListByProducer(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "producer_id"}).
		AddRow(2, "Squash", 4).
		AddRow(1, "Kale", 4)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE producer_id = $1 AND "products"."deleted_at" IS NULL ORDER BY created_at DESC`)).
		WithArgs(4).
		WillReturnRows(rows)

	products, err := repo.ListByProducer(ctx, 4)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Squash", products[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("Removes Favorites In Same Transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE "products"."id" = $1`)).
			WithArgs(5, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "producer_id"}).AddRow(5, 4))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE product_id = $1`)).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET "deleted_at"=$1 WHERE "products"."id" = $2`)).
			WithArgs(sqlmock.AnyArg(), 5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(ctx, 5)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE "products"."id" = $1`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectRollback()

		err := repo.Delete(ctx, 99)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
