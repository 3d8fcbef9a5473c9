package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"car-shop-service/middleware"
	"car-shop-service/models"
	"car-shop-service/services"
	"car-shop-service/views"
)

// AdminController handles the admin endpoints and the dashboard page.
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController.
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Login handles POST /api/admin/login.
func (ac *AdminController) Login(ctx *gin.Context) {
	var req models.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		req.Password = ""
	}

	if svcErr := ac.adminService.Login(req.Password); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{
			"success": false,
			"message": svcErr.Message,
			"kind":    svcErr.Kind,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// SetPrice handles POST /api/admin/set_price.
func (ac *AdminController) SetPrice(ctx *gin.Context) {
	var req models.SetPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Missing required fields.",
			"kind":    services.KindValidation,
		})
		return
	}

	msg, svcErr := ac.adminService.SetPrice(&req)
	if svcErr != nil {
		body := gin.H{"message": svcErr.Message, "kind": svcErr.Kind}
		if svcErr.StatusCode == http.StatusNotFound {
			body["success"] = false
		}
		ctx.JSON(svcErr.StatusCode, body)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// DeleteOrder handles POST /api/admin/delete_order/:id.
func (ac *AdminController) DeleteOrder(ctx *gin.Context) {
	defer func() {
		ok := ctx.Writer.Status() >= 200 && ctx.Writer.Status() < 300
		middleware.RecordOrderOperation("delete", ok)
	}()

	idParam := ctx.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": fmt.Sprintf("Order ID %s not found.", idParam),
			"kind":    services.KindNotFound,
		})
		return
	}

	msg, svcErr := ac.adminService.DeleteOrder(ctx.Request.Context(), uint(id))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{
			"success": false,
			"message": svcErr.Message,
			"kind":    svcErr.Kind,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// Dashboard handles GET /admin/orders and renders the admin page.
func (ac *AdminController) Dashboard(ctx *gin.Context) {
	summary, svcErr := ac.adminService.DashboardSummary(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message, "kind": svcErr.Kind})
		return
	}

	html, err := views.RenderDashboard(summary)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error loading dashboard.",
			"kind":    services.KindInternal,
		})
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
