package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"car-shop-service/middleware"
	"car-shop-service/models"
	"car-shop-service/services"
)

// OrderController handles the storefront endpoints.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// ListCars handles GET /api/cars.
func (oc *OrderController) ListCars(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, oc.orderService.ListCars())
}

// SubmitOrder handles POST /api/order. The Sunday closure check runs before
// the payload is even parsed.
func (oc *OrderController) SubmitOrder(ctx *gin.Context) {
	defer func() {
		ok := ctx.Writer.Status() >= 200 && ctx.Writer.Status() < 300
		middleware.RecordOrderOperation("submit", ok)
	}()

	if oc.orderService.OrderingClosed() {
		ctx.JSON(http.StatusForbidden, gin.H{
			"message": services.SundayClosedMessage,
			"kind":    services.KindClosed,
		})
		return
	}

	var req models.SubmitOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": services.InvalidDataMessage,
			"kind":    services.KindValidation,
		})
		return
	}

	msg, svcErr := oc.orderService.SubmitOrder(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message, "kind": svcErr.Kind})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": msg})
}
