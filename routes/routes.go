package routes

import (
	"net/http"

	"github.com/Govind-619/BooksCourier/controllers"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(sessionSecret string, secureCookies bool) *gin.Engine {
	router := gin.New()

	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// The cookie session remembers the last checkout so the payment-success
	// page can confirm without the session_id query parameter.
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24,
		Path:     "/",
		Secure:   secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("bookscourier", store))

	router.GET("/", controllers.Health)

	initUserRoutes(router)
	initAdminRoutes(router)

	return router
}
