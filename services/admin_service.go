package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"car-shop-service/models"
	"car-shop-service/repository"
	"car-shop-service/utils"
)

// AdminService defines the dashboard business logic: password check, price
// mutation, order deletion and summary reporting.
type AdminService interface {
	Login(password string) *ServiceError
	SetPrice(req *models.SetPriceRequest) (string, *ServiceError)
	DeleteOrder(ctx context.Context, id uint) (string, *ServiceError)
	DashboardSummary(ctx context.Context) (*models.DashboardSummary, *ServiceError)
}

// adminServiceImpl implements AdminService.
type adminServiceImpl struct {
	orderRepo     repository.OrderRepository
	catalogRepo   repository.CatalogRepository
	adminPassword string
	shipmentFee   int
	logger        *zap.Logger
	now           func() time.Time
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	adminPassword string,
	shipmentFee int,
	logger *zap.Logger,
) AdminService {
	return &adminServiceImpl{
		orderRepo:     orderRepo,
		catalogRepo:   catalogRepo,
		adminPassword: adminPassword,
		shipmentFee:   shipmentFee,
		logger:        logger,
		now:           time.Now,
	}
}

// Login compares the supplied password against the configured secret. Plain
// equality, no hashing or rate limiting: the secret gates a demo dashboard.
func (s *adminServiceImpl) Login(password string) *ServiceError {
	if password != s.adminPassword {
		return &ServiceError{StatusCode: 401, Kind: KindUnauthorized, Message: "Invalid Admin Password"}
	}
	return nil
}

// SetPrice replaces the catalog price for an exact (brand, model) pair. The
// change lives in memory only and reverts to the seed on restart.
func (s *adminServiceImpl) SetPrice(req *models.SetPriceRequest) (string, *ServiceError) {
	if req == nil || req.Brand == "" || req.Model == "" || len(req.NewPrice) == 0 {
		return "", &ServiceError{StatusCode: 400, Kind: KindValidation, Message: "Missing required fields."}
	}

	var price models.FlexInt
	if err := json.Unmarshal(req.NewPrice, &price); err != nil {
		return "", &ServiceError{StatusCode: 400, Kind: KindValidation, Message: "Price must be an integer."}
	}
	if price <= 0 {
		return "", &ServiceError{StatusCode: 400, Kind: KindValidation, Message: "Price must be a positive integer."}
	}

	if err := s.catalogRepo.SetPrice(req.Brand, req.Model, int(price)); err != nil {
		return "", &ServiceError{StatusCode: 404, Kind: KindNotFound, Message: "Car model not found."}
	}

	s.logger.Info("Catalog price updated",
		zap.String("brand", req.Brand),
		zap.String("model", req.Model),
		zap.Int("new_price", int(price)),
	)
	return fmt.Sprintf("Price for %s %s updated to KSh %s", req.Brand, req.Model, utils.FormatKES(int(price))), nil
}

// DeleteOrder removes one ledger row by id. Deletion is immediate and
// irreversible.
func (s *adminServiceImpl) DeleteOrder(ctx context.Context, id uint) (string, *ServiceError) {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &ServiceError{StatusCode: 404, Kind: KindNotFound, Message: fmt.Sprintf("Order ID %d not found.", id)}
		}
		s.logger.Error("Failed to delete order", zap.Uint("id", id), zap.Error(err))
		return "", &ServiceError{StatusCode: 500, Kind: KindInternal, Message: "Error deleting order."}
	}

	s.logger.Info("Order deleted", zap.Uint("id", id))
	return fmt.Sprintf("Order ID %d deleted.", id), nil
}

// DashboardSummary aggregates everything the admin dashboard shows.
func (s *adminServiceImpl) DashboardSummary(ctx context.Context) (*models.DashboardSummary, *ServiceError) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load orders for dashboard", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Kind: KindInternal, Message: "Error loading dashboard."}
	}

	today := s.now()
	count := 0
	for _, o := range orders {
		t, parseErr := time.ParseInLocation(orderTimeLayout, o.OrderTime, time.Local)
		if parseErr != nil {
			continue
		}
		if sameCalendarDate(t, today) {
			count++
		}
	}

	return &models.DashboardSummary{
		OrdersToday: count,
		ShipmentFee: s.shipmentFee,
		Weekday:     today.Weekday().String(),
		Cars:        s.catalogRepo.List(),
		Orders:      orders,
	}, nil
}

func sameCalendarDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
