package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"car-shop-service/models"
	"car-shop-service/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}))
	return db
}

func ledgerRow(name, brand, model string, qty, price int, orderTime string) models.Order {
	return models.Order{
		Name:          name,
		Phone:         "0712345678",
		Country:       "Kenya",
		County:        "Nairobi",
		Brand:         brand,
		Model:         model,
		Quantity:      qty,
		Price:         price,
		TotalCost:     price * qty,
		PaymentMethod: "cash",
		OrderTime:     orderTime,
	}
}

func TestCreateAll_PersistsOneRowPerItem(t *testing.T) {
	repo := repository.NewGormOrderRepository(newTestDB(t))

	rows := []models.Order{
		ledgerRow("Alice", "Toyota", "Corolla", 2, 2500000, "2026-08-28 10:00:00"),
		ledgerRow("Alice", "Honda", "Civic", 1, 2300000, "2026-08-28 10:00:00"),
	}
	require.NoError(t, repo.CreateAll(context.Background(), rows))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, got[0].OrderTime, got[1].OrderTime, "all rows of one checkout share a timestamp")
	for _, o := range got {
		assert.NotZero(t, o.ID)
		assert.Equal(t, o.Price*o.Quantity, o.TotalCost)
	}
}

func TestFindAll_NewestFirst(t *testing.T) {
	repo := repository.NewGormOrderRepository(newTestDB(t))

	require.NoError(t, repo.CreateAll(context.Background(), []models.Order{
		ledgerRow("Old", "Toyota", "RAV4", 1, 3500000, "2026-08-26 09:00:00"),
	}))
	require.NoError(t, repo.CreateAll(context.Background(), []models.Order{
		ledgerRow("New", "BMW", "X5", 1, 7200000, "2026-08-28 18:30:00"),
	}))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "New", got[0].Name)
	assert.Equal(t, "Old", got[1].Name)
}

func TestDelete_RemovesExactlyOneRow(t *testing.T) {
	repo := repository.NewGormOrderRepository(newTestDB(t))

	require.NoError(t, repo.CreateAll(context.Background(), []models.Order{
		ledgerRow("Alice", "Toyota", "Corolla", 1, 2500000, "2026-08-28 10:00:00"),
		ledgerRow("Bob", "Honda", "Pilot", 1, 4500000, "2026-08-28 11:00:00"),
	}))

	before, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, repo.Delete(context.Background(), before[0].ID))

	after, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.NotEqual(t, before[0].ID, after[0].ID)
}

func TestDelete_SecondDeleteReturnsNotFound(t *testing.T) {
	repo := repository.NewGormOrderRepository(newTestDB(t))

	require.NoError(t, repo.CreateAll(context.Background(), []models.Order{
		ledgerRow("Alice", "Toyota", "Corolla", 1, 2500000, "2026-08-28 10:00:00"),
	}))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, repo.Delete(context.Background(), got[0].ID))
	err = repo.Delete(context.Background(), got[0].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDelete_UnknownIDReturnsNotFound(t *testing.T) {
	repo := repository.NewGormOrderRepository(newTestDB(t))
	err := repo.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
