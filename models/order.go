package models

// Order is one persisted line of a checkout, capturing a historical
// price/quantity snapshot. A checkout with N items produces N rows sharing
// the same customer fields and order_time; there is no order header entity.
type Order struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"type:text" json:"name"`
	Phone         string `gorm:"type:text" json:"phone"`
	Country       string `gorm:"type:text" json:"country"`
	County        string `gorm:"type:text" json:"county"`
	Brand         string `gorm:"type:text" json:"brand"`
	Model         string `gorm:"type:text" json:"model"`
	Quantity      int    `json:"quantity"`
	Price         int    `json:"price"`
	TotalCost     int    `gorm:"column:total_cost" json:"total_cost"`
	PaymentMethod string `gorm:"column:payment_method;type:text" json:"payment_method"`
	OrderTime     string `gorm:"column:order_time;type:text" json:"order_time"`
}

// TableName keeps the table name compatible with the original schema.
func (Order) TableName() string { return "orders" }

// OrderItemRequest is one cart line inside a checkout submission. The price
// is the client-quoted unit price; it is stored as-is, not re-read from the
// catalog.
type OrderItemRequest struct {
	Brand    string `json:"brand" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Price    int    `json:"price" binding:"required,gt=0"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// SubmitOrderRequest is the payload for POST /api/order.
type SubmitOrderRequest struct {
	Name    string             `json:"name" binding:"required"`
	Phone   string             `json:"phone" binding:"required"`
	Country string             `json:"country" binding:"required"`
	County  string             `json:"county" binding:"required"`
	Payment string             `json:"payment" binding:"required"`
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// DashboardSummary is the read aggregation rendered on the admin dashboard.
type DashboardSummary struct {
	OrdersToday int
	ShipmentFee int
	Weekday     string
	Cars        []Car
	Orders      []Order
}
