package utils

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Govind-619/BooksCourier/models"
	"gorm.io/gorm"
)

// PaymentConfirmation is the outcome of confirming a checkout session
type PaymentConfirmation struct {
	Success         bool            `json:"success"`
	TrackingID      string          `json:"tracking_id"`
	TransactionID   string          `json:"transaction_id"`
	AlreadyRecorded bool            `json:"already_recorded"`
	Payment         *models.Payment `json:"payment,omitempty"`
}

// ConfirmPayment records the payment behind a checkout session exactly once.
//
// A transaction that already has a payment record returns that record's
// tracking ID untouched. Otherwise a paid session gets a fresh tracking ID,
// a payment record, and its order flipped to paid, all in one transaction.
// Unpaid sessions are rejected without writing anything.
func ConfirmPayment(ctx context.Context, db *gorm.DB, gateway PaymentGateway, sessionID string) (*PaymentConfirmation, error) {
	if sessionID == "" {
		return nil, BadRequestError("session_id is required", nil)
	}

	session, err := gateway.RetrieveCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, BadGatewayError("Failed to retrieve checkout session", err)
	}
	LogDebug("Checkout session %s: status=%s transaction=%s", session.ID, session.PaymentStatus, session.TransactionID)

	db = db.WithContext(ctx)
	transactionID := session.TransactionID

	if transactionID != "" {
		existing, err := FindPaymentByTransactionID(db, transactionID)
		if err == nil {
			LogInfo("Payment already recorded for transaction %s", transactionID)
			return alreadyRecorded(existing), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, WrapError(err, "failed to look up payment")
		}
	}

	if session.PaymentStatus != models.PaymentStatusPaid {
		LogInfo("Checkout session %s not paid (status %s)", session.ID, session.PaymentStatus)
		return nil, BadRequestError(ErrPaymentNotCompleted, nil)
	}
	if transactionID == "" {
		return nil, BadGatewayError("Checkout session is paid but has no transaction", nil)
	}

	trackingID, err := GenerateTrackingID(time.Now())
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		Amount:        float64(session.AmountMinor) / 100,
		Currency:      session.Currency,
		CustomerEmail: session.CustomerEmail,
		CustomerPhone: session.CustomerPhone,
		OrderID:       parseID(session.Metadata[MetaOrderID]),
		BookID:        parseID(session.Metadata[MetaBookID]),
		BookTitle:     session.Metadata[MetaBookTitle],
		SessionID:     session.ID,
		TransactionID: transactionID,
		PaymentStatus: session.PaymentStatus,
		TrackingID:    trackingID,
		PaymentDate:   time.Now(),
	}

	// The insert runs first so a concurrent confirmation of the same
	// transaction fails on the unique index before it touches the order.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Order{}).
			Where("id = ?", payment.OrderID).
			Updates(map[string]interface{}{
				"payment_status": models.PaymentStatusPaid,
				"tracking_id":    trackingID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			LogError("Order %q from session %s not found; payment %s recorded without order update",
				session.Metadata[MetaOrderID], session.ID, transactionID)
		}
		return nil
	})
	if err != nil {
		if IsDuplicateKeyError(err) {
			existing, lookupErr := FindPaymentByTransactionID(db, transactionID)
			if lookupErr == nil {
				LogInfo("Lost race recording transaction %s; returning existing payment", transactionID)
				return alreadyRecorded(existing), nil
			}
		}
		return nil, WrapError(err, "failed to record payment")
	}

	LogInfo("Recorded payment %s for order %d with tracking ID %s", transactionID, payment.OrderID, trackingID)
	return &PaymentConfirmation{
		Success:       true,
		TrackingID:    trackingID,
		TransactionID: transactionID,
		Payment:       payment,
	}, nil
}

// FindPaymentByTransactionID loads the payment record for a gateway transaction
func FindPaymentByTransactionID(db *gorm.DB, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	if err := db.Where("transaction_id = ?", transactionID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// IsDuplicateKeyError reports whether err is a unique constraint violation.
// Drivers without error translation are matched on their message.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint failed")
}

func alreadyRecorded(p *models.Payment) *PaymentConfirmation {
	return &PaymentConfirmation{
		Success:         true,
		TrackingID:      p.TrackingID,
		TransactionID:   p.TransactionID,
		AlreadyRecorded: true,
		Payment:         p,
	}
}

func parseID(s string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// ParseID parses a numeric path parameter
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, BadRequestError(ErrInvalidID, fmt.Errorf("invalid id %q", s))
	}
	return uint(id), nil
}
