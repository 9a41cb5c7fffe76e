package controllers

import (
	"time"

	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var sellerUpdatableFields = []string{"name", "email", "phone", "shop_name", "address", "status"}

var sellerStatuses = map[string]bool{
	models.SellerStatusPending:  true,
	models.SellerStatusApproved: true,
	models.SellerStatusRejected: true,
}

// GetSellers lists seller applications filtered by status and email
func GetSellers(c *gin.Context) {
	utils.LogInfo("GetSellers called")

	query := config.DB.Model(&models.Seller{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if email := c.Query("email"); email != "" {
		query = query.Where("email = ?", email)
	}

	var sellers []models.Seller
	if err := query.Order("created_at DESC").Find(&sellers).Error; err != nil {
		utils.LogError("Failed to fetch sellers: %v", err)
		utils.InternalServerError(c, "Failed to fetch sellers", err.Error())
		return
	}
	utils.Success(c, "Sellers retrieved successfully", sellers)
}

// CreateSeller files a seller application in pending state
func CreateSeller(c *gin.Context) {
	utils.LogInfo("CreateSeller called")

	var seller models.Seller
	if err := c.ShouldBindJSON(&seller); err != nil {
		utils.LogError("Invalid seller body: %v", err)
		utils.BadRequest(c, utils.ErrInvalidRequest, err.Error())
		return
	}
	if err := utils.ValidateSeller(&seller); err != nil {
		utils.BadRequest(c, "Validation failed", err)
		return
	}

	seller.ID = 0
	seller.Status = models.SellerStatusPending
	seller.CreatedAt = time.Now()
	if err := config.DB.Create(&seller).Error; err != nil {
		utils.LogError("Failed to create seller application for %s: %v", seller.Email, err)
		utils.InternalServerError(c, "Failed to create seller application", err.Error())
		return
	}

	utils.LogInfo("Seller application %d filed by %s", seller.ID, seller.Email)
	utils.Created(c, "Seller application submitted", seller)
}

// UpdateSeller edits an application. Approving it promotes the matching user
// to the seller role in the same transaction.
func UpdateSeller(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	updates, ok := bindUpdates(c, sellerUpdatableFields...)
	if !ok {
		return
	}

	status, hasStatus := updates["status"].(string)
	if _, present := updates["status"]; present && (!hasStatus || !sellerStatuses[status]) {
		utils.BadRequest(c, "Invalid seller status", gin.H{"status": updates["status"]})
		return
	}

	var promoted int64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := utils.UpdateByID(tx, &models.Seller{}, id, updates); err != nil {
			return err
		}
		if status != models.SellerStatusApproved {
			return nil
		}

		var seller models.Seller
		if err := tx.First(&seller, id).Error; err != nil {
			return err
		}
		n, err := utils.SetUserRole(tx, seller.Email, models.RoleSeller)
		promoted = n
		return err
	})
	if err != nil {
		utils.LogError("Failed to update seller %d: %v", id, err)
		utils.RespondWithError(c, err)
		return
	}

	if status == models.SellerStatusApproved {
		utils.LogInfo("Seller %d approved, %d user(s) promoted", id, promoted)
	}
	utils.Success(c, "Seller updated successfully", gin.H{
		"id":             id,
		"updated":        updates,
		"users_promoted": promoted,
	})
}
