package routes

import (
	"github.com/Govind-619/BooksCourier/controllers"
	"github.com/Govind-619/BooksCourier/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes registers the marketplace routes
func initUserRoutes(router *gin.Engine) {
	auth := middleware.AuthMiddleware()

	// Users
	router.GET("/users", auth, controllers.GetUsers)
	router.POST("/users", controllers.CreateUser)
	router.GET("/users/:id", controllers.GetUser)
	router.PATCH("/users/:id", auth, controllers.UpdateUser)
	router.GET("/users/:id/role", controllers.GetUserRole)

	// Books
	router.POST("/books", controllers.CreateBook)
	router.GET("/books", controllers.GetBooks)
	router.GET("/books/:id", controllers.GetBook)
	router.PATCH("/books/:id", controllers.UpdateBook)
	router.DELETE("/books/:id", controllers.DeleteBook)

	// Orders
	router.POST("/orders", controllers.CreateOrder)
	router.GET("/orders", auth, controllers.GetOrders)
	router.GET("/orders/:id", controllers.GetOrder)
	router.PATCH("/orders/:id", controllers.UpdateOrder)
	router.DELETE("/orders/:id", controllers.DeleteOrder)
	router.GET("/seller-orders", controllers.GetSellerOrders)

	// Payments
	router.GET("/payments", auth, controllers.GetPayments)
	router.GET("/payments/:id/receipt", auth, controllers.DownloadPaymentReceipt)
	router.POST("/payment-checkout-session", controllers.CreateCheckoutSession)
	router.PATCH("/payment-success", controllers.ConfirmPaymentSuccess)

	// Sellers
	router.GET("/sellers", auth, controllers.GetSellers)
	router.POST("/sellers", controllers.CreateSeller)

	// Wishlist
	wishlist := router.Group("/wishlist", auth)
	{
		wishlist.GET("", controllers.GetWishlist)
		wishlist.POST("", controllers.AddToWishlist)
		wishlist.DELETE("/:book_id", controllers.RemoveFromWishlist)
	}
}
