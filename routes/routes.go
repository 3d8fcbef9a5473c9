package routes

import (
	"car-shop-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the storefront and admin routes.
func RegisterRoutes(r *gin.Engine, oc *controllers.OrderController, ac *controllers.AdminController) {
	api := r.Group("/api")
	api.GET("/cars", oc.ListCars)
	api.POST("/order", oc.SubmitOrder)

	admin := api.Group("/admin")
	admin.POST("/login", ac.Login)
	admin.POST("/set_price", ac.SetPrice)
	admin.POST("/delete_order/:id", ac.DeleteOrder)

	// The dashboard page itself is reachable without a session, matching the
	// original deployment behind a trusted network.
	r.GET("/admin/orders", ac.Dashboard)
}
