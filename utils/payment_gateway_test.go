package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Trimmed payment link as returned by GET /v1/payment_links/:id
const paidPaymentLink = `{
	"id": "plink_ExjpAUN3gVHrPJ",
	"short_url": "https://rzp.io/i/nxrHnLJ",
	"amount": 50000,
	"amount_paid": 50000,
	"currency": "INR",
	"status": "paid",
	"customer": {"email": "buyer@example.com", "contact": "+919000090000"},
	"notes": {"orderId": "12", "booksId": "7", "bookTitle": "Gitanjali", "customer_phone": "+919000090000"},
	"payments": [
		{"payment_id": "pay_failed01", "status": "failed", "amount": 50000},
		{"payment_id": "pay_Ey8dA8O1", "status": "captured", "amount": 50000}
	]
}`

func decodeLink(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var link map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &link))
	return link
}

func TestSessionFromPaidPaymentLink(t *testing.T) {
	s := sessionFromPaymentLink(decodeLink(t, paidPaymentLink))

	assert.Equal(t, "plink_ExjpAUN3gVHrPJ", s.ID)
	assert.Equal(t, "https://rzp.io/i/nxrHnLJ", s.URL)
	assert.Equal(t, int64(50000), s.AmountMinor)
	assert.Equal(t, "inr", s.Currency)
	assert.Equal(t, "paid", s.PaymentStatus)
	assert.Equal(t, "buyer@example.com", s.CustomerEmail)
	assert.Equal(t, "+919000090000", s.CustomerPhone)
	assert.Equal(t, "pay_Ey8dA8O1", s.TransactionID)
	assert.Equal(t, "12", s.Metadata[MetaOrderID])
	assert.Equal(t, "7", s.Metadata[MetaBookID])
	assert.Equal(t, "Gitanjali", s.Metadata[MetaBookTitle])
}

func TestSessionFromUnpaidPaymentLink(t *testing.T) {
	s := sessionFromPaymentLink(decodeLink(t, `{
		"id": "plink_1",
		"amount": 12000,
		"currency": "INR",
		"status": "created",
		"customer": {"email": "buyer@example.com"},
		"notes": {"orderId": "3", "customer_phone": "+918888888888"}
	}`))

	assert.Equal(t, "created", s.PaymentStatus)
	assert.Empty(t, s.TransactionID)
	assert.Equal(t, "+918888888888", s.CustomerPhone, "phone falls back to the notes")
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(500), ToMinorUnits(5))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(10), ToMinorUnits(0.1))
	assert.Equal(t, int64(0), ToMinorUnits(0))
}
