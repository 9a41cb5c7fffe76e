package middleware

import (
	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
)

var verifier utils.TokenVerifier

// SetTokenVerifier installs the verifier used by AuthMiddleware
func SetTokenVerifier(v utils.TokenVerifier) {
	verifier = v
}

// AuthMiddleware requires a valid identity-provider ID token and puts the
// verified email in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			utils.LogError("Missing Authorization header on %s", c.Request.URL.Path)
			utils.RespondWithError(c, utils.UnauthorizedError(utils.ErrUnauthorized, nil))
			c.Abort()
			return
		}

		if verifier == nil {
			utils.LogError("No token verifier configured")
			utils.InternalServerError(c, utils.ErrInternalServer, nil)
			c.Abort()
			return
		}

		claims, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			utils.RespondWithError(c, utils.UnauthorizedError(utils.ErrUnauthorized, nil))
			c.Abort()
			return
		}

		utils.LogDebug("Decoded token for %s", claims.Email)
		c.Set(utils.ContextEmail, claims.Email)
		c.Set(utils.ContextUID, claims.UID)
		c.Next()
	}
}

// AdminMiddleware allows only users whose role is admin. It must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(utils.ContextEmail)
		if email == "" {
			utils.LogError("Email not found in context")
			utils.RespondWithError(c, utils.UnauthorizedError(utils.ErrUnauthorized, nil))
			c.Abort()
			return
		}

		user, err := utils.GetUserByEmail(config.DB, email)
		if err != nil || user.Role != models.RoleAdmin {
			utils.LogError("Non-admin %s attempted admin access", email)
			utils.RespondWithError(c, utils.ForbiddenError(utils.ErrForbidden, nil))
			c.Abort()
			return
		}

		c.Set(utils.ContextUser, *user)
		utils.LogInfo("Admin access granted for %s", email)
		c.Next()
	}
}
