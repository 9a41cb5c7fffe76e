package controllers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
)

// GetPayments lists payment records, newest first. Filtering by email is only
// allowed for the caller's own email.
func GetPayments(c *gin.Context) {
	utils.LogInfo("GetPayments called")
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Payment{})
	if email := c.Query("email"); email != "" {
		if email != c.GetString(utils.ContextEmail) {
			utils.LogError("%s tried to list payments of %s", c.GetString(utils.ContextEmail), email)
			utils.RespondWithError(c, utils.ForbiddenError(utils.ErrForbidden, nil))
			return
		}
		query = query.Where("customer_email = ?", email)
	}

	var records []models.Payment
	if err := pagination.FindPage(query, "payment_date DESC", &records); err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Payments retrieved successfully", records, pagination)
}

type checkoutRequest struct {
	OrderID       uint    `json:"order_id" binding:"required"`
	BookID        uint    `json:"book_id"`
	BookTitle     string  `json:"book_title"`
	Amount        float64 `json:"amount"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
}

// CreateCheckoutSession opens a gateway checkout for an order and returns the
// URL the buyer pays at
func CreateCheckoutSession(c *gin.Context) {
	utils.LogInfo("CreateCheckoutSession called")

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid checkout request: %v", err)
		utils.BadRequest(c, "Invalid request. order_id is required", err.Error())
		return
	}

	var order models.Order
	if err := utils.FindByID(config.DB, &order, req.OrderID); err != nil {
		utils.LogError("Order %d not found for checkout: %v", req.OrderID, err)
		utils.RespondWithError(c, err)
		return
	}
	if order.PaymentStatus == models.PaymentStatusPaid {
		utils.LogError("Checkout requested for paid order %d", order.ID)
		utils.RespondWithError(c, utils.ConflictError("Order is already paid", fmt.Errorf("tracking id %s", order.TrackingID)))
		return
	}

	if req.BookID == 0 {
		req.BookID = order.BookID
	}
	if req.BookTitle == "" {
		req.BookTitle = order.BookTitle
	}
	if req.CustomerEmail == "" {
		req.CustomerEmail = order.CustomerEmail
	}
	if req.CustomerPhone == "" {
		req.CustomerPhone = order.CustomerPhone
	}
	if req.Amount <= 0 {
		req.Amount = order.Price * float64(order.Quantity)
	}
	if req.Amount <= 0 {
		utils.BadRequest(c, "Amount must be greater than 0", nil)
		return
	}

	session, err := payments.Gateway.CreateCheckoutSession(c.Request.Context(), utils.CheckoutRequest{
		OrderID:       strconv.FormatUint(uint64(order.ID), 10),
		BookID:        strconv.FormatUint(uint64(req.BookID), 10),
		BookTitle:     req.BookTitle,
		Amount:        req.Amount,
		Currency:      payments.Currency,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CallbackURL:   payments.SiteDomain + "/dashboard/payment-success",
	})
	if err != nil {
		utils.LogError("Failed to create checkout session for order %d: %v", order.ID, err)
		utils.RespondWithError(c, utils.BadGatewayError("Failed to create checkout session", err))
		return
	}

	if err := utils.RememberCheckoutSession(c, session.ID); err != nil {
		utils.LogError("Failed to store checkout session %s: %v", session.ID, err)
	}

	utils.LogInfo("Created checkout session %s for order %d", session.ID, order.ID)
	utils.Success(c, "Checkout session created", gin.H{
		"url":        session.URL,
		"session_id": session.ID,
	})
}

// ConfirmPaymentSuccess records the payment for a completed checkout session.
// Repeating the call for the same transaction returns the same tracking ID.
func ConfirmPaymentSuccess(c *gin.Context) {
	utils.LogInfo("ConfirmPaymentSuccess called")

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = utils.LastCheckoutSession(c)
	}
	if sessionID == "" {
		utils.BadRequest(c, "session_id is required", nil)
		return
	}

	ctx := c.Request.Context()
	guard := payments.Guard
	token, acquired, err := guard.Acquire(ctx, sessionID)
	if err != nil {
		// The guard is best effort; the unique transaction index still stops duplicates.
		utils.LogError("Confirm guard unavailable for %s: %v", sessionID, err)
	} else if !acquired {
		utils.LogInfo("Confirmation of %s already in progress", sessionID)
		utils.RespondWithError(c, utils.ConflictError(utils.ErrConfirmInProgress, nil))
		return
	} else {
		defer func() {
			if err := guard.Release(context.Background(), sessionID, token); err != nil {
				utils.LogError("Failed to release confirm guard for %s: %v", sessionID, err)
			}
		}()
	}

	result, err := utils.ConfirmPayment(ctx, config.DB, payments.Gateway, sessionID)
	if err != nil {
		utils.LogError("Payment confirmation failed for session %s: %v", sessionID, err)
		utils.RespondWithError(c, err)
		return
	}

	utils.ForgetCheckoutSession(c)

	if result.AlreadyRecorded {
		utils.Success(c, "Payment already recorded", result)
		return
	}

	payment, mailer := result.Payment, payments.Mailer
	go func() {
		if err := mailer.SendPaymentConfirmation(payment); err != nil {
			utils.LogError("Failed to email confirmation for %s: %v", payment.TransactionID, err)
		}
	}()

	utils.Success(c, "Payment confirmed", result)
}
