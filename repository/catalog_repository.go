package repository

import (
	"errors"
	"sync"

	"car-shop-service/models"
)

// ErrCarNotFound is returned when no catalog entry matches a (brand, model) pair.
var ErrCarNotFound = errors.New("car model not found")

// CatalogRepository defines the interface for catalog data access. The
// catalog is seeded at process start; price changes are held in memory only
// and revert to the seed on restart.
type CatalogRepository interface {
	List() []models.Car
	SetPrice(brand, model string, price int) error
}

// inMemoryCatalogRepository implements CatalogRepository over a seeded slice.
type inMemoryCatalogRepository struct {
	mu   sync.RWMutex
	cars []models.Car
}

// NewInMemoryCatalogRepository creates a catalog repository seeded with the
// given cars.
func NewInMemoryCatalogRepository(seed []models.Car) CatalogRepository {
	cars := make([]models.Car, len(seed))
	copy(cars, seed)
	return &inMemoryCatalogRepository{cars: cars}
}

// List returns a copy of the catalog in seed order.
func (r *inMemoryCatalogRepository) List() []models.Car {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Car, len(r.cars))
	copy(out, r.cars)
	return out
}

// SetPrice replaces the stored price for an exact (brand, model) match.
func (r *inMemoryCatalogRepository) SetPrice(brand, model string, price int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cars {
		if r.cars[i].Brand == brand && r.cars[i].Model == model {
			r.cars[i].Price = price
			return nil
		}
	}
	return ErrCarNotFound
}

// SeedCars returns the fixed catalog the service starts with.
func SeedCars() []models.Car {
	return []models.Car{
		{Brand: "Toyota", Model: "Corolla", Price: 2500000, Image: "images/corolla.jpg", Description: "Reliable sedan, fuel-efficient."},
		{Brand: "Toyota", Model: "RAV4", Price: 3500000, Image: "images/rav4.jpg", Description: "Compact SUV, great for families."},
		{Brand: "Toyota", Model: "Land Cruiser", Price: 8500000, Image: "images/landcruiser.jpg", Description: "Powerful off-road SUV."},
		{Brand: "Honda", Model: "Civic", Price: 2300000, Image: "images/civic.jpg", Description: "Sporty compact with modern features."},
		{Brand: "Honda", Model: "CRV", Price: 3300000, Image: "images/crv.jpg", Description: "Comfortable crossover."},
		{Brand: "Honda", Model: "Pilot", Price: 4500000, Image: "images/pilot.jpg", Description: "Spacious 7-seater."},
		{Brand: "BMW", Model: "X1", Price: 4200000, Image: "images/x1.jpg", Description: "Entry luxury crossover."},
		{Brand: "BMW", Model: "X3", Price: 5200000, Image: "images/x3.jpg", Description: "Sporty and refined."},
		{Brand: "BMW", Model: "X5", Price: 7200000, Image: "images/x5.jpg", Description: "Luxury SUV with power."},
	}
}
