package controllers

import (
	"time"

	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
)

// payment_status and tracking_id are only written by payment confirmation
var orderUpdatableFields = []string{
	"status", "quantity", "address", "customer_name", "customer_phone",
}

// CreateOrder places an unpaid order for a book
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.LogError("Invalid order body: %v", err)
		utils.BadRequest(c, utils.ErrInvalidRequest, err.Error())
		return
	}
	if order.Quantity == 0 {
		order.Quantity = 1
	}
	if err := utils.ValidateOrder(&order); err != nil {
		utils.BadRequest(c, "Validation failed", err)
		return
	}

	// Fill listing details the client left out
	if book, err := utils.GetBookByID(config.DB, order.BookID); err == nil {
		if order.BookTitle == "" {
			order.BookTitle = book.Title
		}
		if order.SellerEmail == "" {
			order.SellerEmail = book.SellerEmail
		}
		if order.Price == 0 {
			order.Price = book.Price
		}
	}

	order.ID = 0
	order.Status = models.OrderStatusPending
	order.PaymentStatus = models.PaymentStatusUnpaid
	order.TrackingID = ""
	order.OrderDate = time.Now()
	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create order: %v", err)
		utils.InternalServerError(c, "Failed to create order", err.Error())
		return
	}

	utils.LogInfo("Created order %d for %s (book %d)", order.ID, order.CustomerEmail, order.BookID)
	utils.Created(c, "Order placed successfully", order)
}

// GetOrders lists orders by order date, newest first, optionally for one customer email
func GetOrders(c *gin.Context) {
	utils.LogInfo("GetOrders called")
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{})
	if email := c.Query("email"); email != "" {
		query = query.Where("customer_email = ?", email)
	}

	var orders []models.Order
	if err := pagination.FindPage(query, "order_date DESC", &orders); err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", orders, pagination)
}

func GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var order models.Order
	if err := utils.FindByID(config.DB, &order, id); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.Success(c, "Order retrieved successfully", order)
}

func UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	updates, ok := bindUpdates(c, orderUpdatableFields...)
	if !ok {
		return
	}
	if err := utils.UpdateByID(config.DB, &models.Order{}, id, updates); err != nil {
		utils.LogError("Failed to update order %d: %v", id, err)
		utils.RespondWithError(c, err)
		return
	}
	utils.LogInfo("Updated order %d: %v", id, updates)
	utils.Success(c, "Order updated successfully", gin.H{"id": id, "updated": updates})
}

func DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := utils.DeleteByID(config.DB, &models.Order{}, id); err != nil {
		utils.LogError("Failed to delete order %d: %v", id, err)
		utils.RespondWithError(c, err)
		return
	}
	utils.LogInfo("Deleted order %d", id)
	utils.Success(c, "Order deleted successfully", gin.H{"id": id})
}

// GetSellerOrders lists orders for the seller dashboard. Cancelled orders are
// hidden unless asked for by status; "all" disables the status filter.
func GetSellerOrders(c *gin.Context) {
	utils.LogInfo("GetSellerOrders called")
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{}).
		Scopes(utils.SearchScope(c.Query("search"), "book_title", "customer_email", "CAST(id AS TEXT)"))

	status := c.Query("status")
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	} else {
		query = query.Where("status <> ?", models.OrderStatusCancelled)
	}
	if sellerEmail := c.Query("seller_email"); sellerEmail != "" {
		query = query.Where("seller_email = ?", sellerEmail)
	}

	var orders []models.Order
	if err := pagination.FindPage(query, "created_at DESC", &orders); err != nil {
		utils.LogError("Failed to fetch seller orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", orders, pagination)
}
