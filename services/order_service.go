package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"car-shop-service/models"
	"car-shop-service/repository"
	"car-shop-service/utils"
)

const orderTimeLayout = "2006-01-02 15:04:05"

// SundayClosedMessage is returned whenever an order is submitted on a Sunday.
const SundayClosedMessage = "Sorry, our online ordering system is closed on Sundays. Please try again tomorrow."

// InvalidDataMessage is the generic rejection for malformed checkout payloads.
const InvalidDataMessage = "Invalid data received."

// OrderService defines the storefront business logic.
type OrderService interface {
	ListCars() *models.CarListResponse
	OrderingClosed() bool
	SubmitOrder(ctx context.Context, req *models.SubmitOrderRequest) (string, *ServiceError)
}

// orderServiceImpl implements OrderService.
type orderServiceImpl struct {
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	shipmentFee int
	logger      *zap.Logger
	now         func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	shipmentFee int,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		shipmentFee: shipmentFee,
		logger:      logger,
		now:         time.Now,
	}
}

// ListCars returns the current catalog and the fixed shipment fee.
func (s *orderServiceImpl) ListCars() *models.CarListResponse {
	return &models.CarListResponse{
		Cars:        s.catalogRepo.List(),
		ShipmentFee: s.shipmentFee,
	}
}

// OrderingClosed reports whether the closure rule applies right now.
func (s *orderServiceImpl) OrderingClosed() bool {
	return s.now().Weekday() == time.Sunday
}

// SubmitOrder validates a checkout, computes its totals and persists one
// ledger row per cart line. The client-quoted unit price is trusted and
// stored as a historical snapshot; it is not re-read from the catalog.
func (s *orderServiceImpl) SubmitOrder(ctx context.Context, req *models.SubmitOrderRequest) (string, *ServiceError) {
	if s.OrderingClosed() {
		return "", &ServiceError{StatusCode: 403, Kind: KindClosed, Message: SundayClosedMessage}
	}

	if req == nil || len(req.Items) == 0 {
		return "", &ServiceError{StatusCode: 400, Kind: KindValidation, Message: InvalidDataMessage}
	}

	// One timestamp per checkout, shared by every line row.
	orderTime := s.now().Format(orderTimeLayout)

	subtotal := 0
	rows := make([]models.Order, 0, len(req.Items))
	for _, item := range req.Items {
		lineTotal := item.Price * item.Quantity
		subtotal += lineTotal
		rows = append(rows, models.Order{
			Name:          req.Name,
			Phone:         req.Phone,
			Country:       req.Country,
			County:        req.County,
			Brand:         item.Brand,
			Model:         item.Model,
			Quantity:      item.Quantity,
			Price:         item.Price,
			TotalCost:     lineTotal,
			PaymentMethod: req.Payment,
			OrderTime:     orderTime,
		})
	}
	finalTotal := subtotal + s.shipmentFee

	if err := s.orderRepo.CreateAll(ctx, rows); err != nil {
		s.logger.Error("Failed to persist checkout",
			zap.Int("items", len(rows)),
			zap.Error(err),
		)
		return "", &ServiceError{StatusCode: 500, Kind: KindInternal, Message: "Error processing order."}
	}

	s.logger.Info("Order placed",
		zap.Int("items", len(rows)),
		zap.Int("subtotal", subtotal),
		zap.Int("final_total", finalTotal),
	)

	msg := fmt.Sprintf(
		"Order placed successfully! Total including KSh %s shipment fee: KSh %s.",
		utils.FormatKES(s.shipmentFee),
		utils.FormatKES(finalTotal),
	)
	return msg, nil
}
