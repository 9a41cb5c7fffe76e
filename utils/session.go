package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RememberCheckoutSession stores the last checkout session ID in the cookie session
func RememberCheckoutSession(c *gin.Context, sessionID string) error {
	session := sessions.Default(c)
	session.Set(SessionCheckoutKey, sessionID)
	return session.Save()
}

// LastCheckoutSession returns the checkout session ID stored by RememberCheckoutSession
func LastCheckoutSession(c *gin.Context) string {
	id, _ := sessions.Default(c).Get(SessionCheckoutKey).(string)
	return id
}

// ForgetCheckoutSession clears the stored checkout session ID
func ForgetCheckoutSession(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(SessionCheckoutKey)
	if err := session.Save(); err != nil {
		LogError("Failed to clear checkout session: %v", err)
	}
}
