package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-shop-service/models"
	"car-shop-service/repository"
)

func TestRenderDashboard_WithOrders(t *testing.T) {
	html, err := RenderDashboard(&models.DashboardSummary{
		OrdersToday: 3,
		ShipmentFee: 3000,
		Weekday:     "Thursday",
		Cars:        repository.SeedCars(),
		Orders: []models.Order{
			{ID: 12, Name: "Alice", Phone: "0712345678", Country: "Kenya", County: "Nairobi",
				Brand: "Toyota", Model: "Corolla", Quantity: 2, Price: 2500000, TotalCost: 5000000,
				PaymentMethod: "cash", OrderTime: "2026-08-27 14:05:09"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Total Orders Today: <span style=\"color:#0b6d3a;\">3</span>")
	assert.Contains(t, html, "Shipment Fee Applied to All Orders: KSh 3,000")
	assert.Contains(t, html, "(Thursday)")
	assert.Contains(t, html, "order-row-12")
	assert.Contains(t, html, "KSh 2,500,000")
	assert.Contains(t, html, "2026-08-27 14:05:09")
	assert.Contains(t, html, `id="price-Toyota-Land_Cruiser"`)
	assert.NotContains(t, html, "No orders have been placed yet.")
}

func TestRenderDashboard_NoOrders(t *testing.T) {
	html, err := RenderDashboard(&models.DashboardSummary{
		ShipmentFee: 3000,
		Weekday:     "Monday",
		Cars:        repository.SeedCars(),
	})
	require.NoError(t, err)

	assert.Contains(t, html, "No orders have been placed yet.")
	assert.NotContains(t, html, `<table id="ordersTable">`)
}

func TestPriceFieldID_SanitizesModelName(t *testing.T) {
	assert.Equal(t, "Toyota-Land_Cruiser", priceFieldID("Toyota", "Land Cruiser"))
	assert.Equal(t, "BMW-X5", priceFieldID("BMW", "X5"))
	assert.Equal(t, "A-B20", priceFieldID("A", "B2.0"))
}
