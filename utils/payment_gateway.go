package utils

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"
)

// CheckoutRequest describes a single-book checkout
type CheckoutRequest struct {
	OrderID       string
	BookID        string
	BookTitle     string
	Amount        float64 // major units, e.g. rupees
	Currency      string
	CustomerEmail string
	CustomerPhone string
	CallbackURL   string
}

// CheckoutSession is the gateway-side view of a checkout
type CheckoutSession struct {
	ID            string
	URL           string
	AmountMinor   int64
	Currency      string
	PaymentStatus string
	CustomerEmail string
	CustomerPhone string
	TransactionID string
	Metadata      map[string]string
}

// Metadata keys attached to every checkout session
const (
	MetaOrderID       = "orderId"
	MetaBookID        = "booksId"
	MetaBookTitle     = "bookTitle"
	MetaCustomerPhone = "customer_phone"
)

// PaymentGateway creates and retrieves checkout sessions
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

// RazorpayGateway implements PaymentGateway with Razorpay payment links
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(key, secret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(key, secret)}
}

// CreateCheckoutSession creates a payment link for the order
func (g *RazorpayGateway) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	customer := map[string]interface{}{"email": req.CustomerEmail}
	if req.CustomerPhone != "" {
		customer["contact"] = req.CustomerPhone
	}

	data := map[string]interface{}{
		"amount":      ToMinorUnits(req.Amount),
		"currency":    strings.ToUpper(req.Currency),
		"description": "Order Payment for this book: " + req.BookTitle,
		"customer":    customer,
		"notes": map[string]interface{}{
			MetaOrderID:       req.OrderID,
			MetaBookTitle:     req.BookTitle,
			MetaBookID:        req.BookID,
			MetaCustomerPhone: req.CustomerPhone,
		},
		"callback_url":    req.CallbackURL,
		"callback_method": "get",
	}

	link, err := g.client.PaymentLink.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay: create payment link: %w", err)
	}
	return sessionFromPaymentLink(link), nil
}

// RetrieveCheckoutSession fetches a payment link by ID
func (g *RazorpayGateway) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	link, err := g.client.PaymentLink.Fetch(sessionID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay: fetch payment link %s: %w", sessionID, err)
	}
	return sessionFromPaymentLink(link), nil
}

// ToMinorUnits converts a major-unit amount to the gateway's smallest unit
func ToMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

func sessionFromPaymentLink(link map[string]interface{}) *CheckoutSession {
	session := &CheckoutSession{
		ID:            stringField(link, "id"),
		URL:           stringField(link, "short_url"),
		AmountMinor:   int64Field(link, "amount"),
		Currency:      strings.ToLower(stringField(link, "currency")),
		PaymentStatus: stringField(link, "status"),
		Metadata:      map[string]string{},
	}

	if customer, ok := link["customer"].(map[string]interface{}); ok {
		session.CustomerEmail = stringField(customer, "email")
		session.CustomerPhone = stringField(customer, "contact")
	}

	if notes, ok := link["notes"].(map[string]interface{}); ok {
		for k, v := range notes {
			session.Metadata[k] = fmt.Sprint(v)
		}
	}
	if session.CustomerPhone == "" {
		session.CustomerPhone = session.Metadata[MetaCustomerPhone]
	}

	// A paid link lists its payments; the captured one is the transaction.
	if payments, ok := link["payments"].([]interface{}); ok {
		for _, p := range payments {
			pm, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			id := stringField(pm, "payment_id")
			if session.TransactionID == "" || stringField(pm, "status") == "captured" {
				session.TransactionID = id
			}
		}
	}

	return session
}

func stringField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func int64Field(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}
