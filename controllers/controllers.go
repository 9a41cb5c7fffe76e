package controllers

import (
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
)

// PaymentSettings wires the payment collaborators used by the checkout and
// confirmation handlers
type PaymentSettings struct {
	Gateway    utils.PaymentGateway
	Guard      utils.ConfirmGuard
	Mailer     *utils.Mailer
	Currency   string
	SiteDomain string
}

var payments = PaymentSettings{Guard: utils.NoopConfirmGuard{}}

// InitPayments installs the payment collaborators
func InitPayments(settings PaymentSettings) {
	if settings.Guard == nil {
		settings.Guard = utils.NoopConfirmGuard{}
	}
	payments = settings
}

// Health answers liveness checks
func Health(c *gin.Context) {
	c.String(200, "Server Running Successfully")
}

// pathID parses the :name path parameter, writing a 400 when it is not a valid ID
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		utils.LogError("Invalid %s parameter %q", name, c.Param(name))
		utils.RespondWithError(c, err)
		return 0, false
	}
	return id, true
}

// bindUpdates reads a JSON object and keeps only the allowed keys
func bindUpdates(c *gin.Context, allowed ...string) (map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.LogError("Invalid update body: %v", err)
		utils.BadRequest(c, utils.ErrInvalidRequest, err.Error())
		return nil, false
	}
	updates := utils.PickFields(body, allowed...)
	if len(updates) == 0 {
		utils.BadRequest(c, utils.ErrNoUpdatableFields, gin.H{"allowed": allowed})
		return nil, false
	}
	return updates, true
}
