package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-shop-service/models"
	"car-shop-service/repository"
)

func seededCatalog() repository.CatalogRepository {
	return repository.NewInMemoryCatalogRepository(repository.SeedCars())
}

func TestCatalog_ListReturnsSeedOrder(t *testing.T) {
	catalog := seededCatalog()

	cars := catalog.List()
	require.Len(t, cars, 9)
	assert.Equal(t, "Toyota", cars[0].Brand)
	assert.Equal(t, "Corolla", cars[0].Model)
	assert.Equal(t, 2500000, cars[0].Price)
	assert.Equal(t, "BMW", cars[8].Brand)
	assert.Equal(t, "X5", cars[8].Model)
}

func TestCatalog_SetPriceVisibleOnNextList(t *testing.T) {
	catalog := seededCatalog()

	require.NoError(t, catalog.SetPrice("Toyota", "Corolla", 2600000))

	for _, car := range catalog.List() {
		if car.Brand == "Toyota" && car.Model == "Corolla" {
			assert.Equal(t, 2600000, car.Price)
			continue
		}
		// every other entry keeps its seeded price
		for _, seeded := range repository.SeedCars() {
			if seeded.Brand == car.Brand && seeded.Model == car.Model {
				assert.Equal(t, seeded.Price, car.Price)
			}
		}
	}
}

func TestCatalog_SetPriceUnknownPairLeavesCatalogUnchanged(t *testing.T) {
	catalog := seededCatalog()

	err := catalog.SetPrice("Tesla", "Model S", 9000000)
	assert.ErrorIs(t, err, repository.ErrCarNotFound)
	assert.Equal(t, repository.SeedCars(), catalog.List())
}

func TestCatalog_ListReturnsCopies(t *testing.T) {
	catalog := seededCatalog()

	cars := catalog.List()
	cars[0].Price = 1

	assert.Equal(t, 2500000, catalog.List()[0].Price)
}

func TestCatalog_IdentityIsBrandModelPair(t *testing.T) {
	catalog := repository.NewInMemoryCatalogRepository([]models.Car{
		{Brand: "Toyota", Model: "Corolla", Price: 100},
		{Brand: "Honda", Model: "Corolla", Price: 200},
	})

	require.NoError(t, catalog.SetPrice("Honda", "Corolla", 250))

	cars := catalog.List()
	assert.Equal(t, 100, cars[0].Price)
	assert.Equal(t, 250, cars[1].Price)
}
