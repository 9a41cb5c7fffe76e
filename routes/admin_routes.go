package routes

import (
	"github.com/Govind-619/BooksCourier/controllers"
	"github.com/Govind-619/BooksCourier/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes registers routes restricted to admins
func initAdminRoutes(router *gin.Engine) {
	admin := []gin.HandlerFunc{middleware.AuthMiddleware(), middleware.AdminMiddleware()}

	router.DELETE("/users/:id", append(admin, controllers.DeleteUser)...)
	router.PATCH("/sellers/:id", append(admin, controllers.UpdateSeller)...)
	router.GET("/admin/payments/export", append(admin, controllers.ExportPayments)...)
}
