package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Govind-619/BooksCourier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerOrdersHideCancelled(t *testing.T) {
	s := newTestServer(t)
	book := s.seedBook(t, 5)
	kept := s.placeOrder(t, book.ID)
	cancelled := s.placeOrder(t, book.ID)

	w := s.request(t, http.MethodPatch, fmt.Sprintf("/orders/%d", cancelled.ID),
		map[string]interface{}{"status": models.OrderStatusCancelled}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var orders []models.Order
	w = s.request(t, http.MethodGet, "/seller-orders", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, kept.ID, orders[0].ID)

	w = s.request(t, http.MethodGet, "/seller-orders?status=all", nil, "")
	decode(t, w, &orders)
	assert.Len(t, orders, 1)

	w = s.request(t, http.MethodGet, "/seller-orders?status=cancelled", nil, "")
	decode(t, w, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, cancelled.ID, orders[0].ID)

	w = s.request(t, http.MethodGet, fmt.Sprintf("/seller-orders?search=%d", kept.ID), nil, "")
	decode(t, w, &orders)
	require.NotEmpty(t, orders)
	assert.Equal(t, kept.ID, orders[0].ID)
}

func TestUpdateOrderCannotMarkPaid(t *testing.T) {
	s := newTestServer(t)
	book := s.seedBook(t, 5)
	order := s.placeOrder(t, book.ID)

	w := s.request(t, http.MethodPatch, fmt.Sprintf("/orders/%d", order.ID),
		map[string]interface{}{"payment_status": models.PaymentStatusPaid, "tracking_id": "BC-20240101-DEADBEEF"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Order
	require.NoError(t, s.db.First(&stored, order.ID).Error)
	assert.Equal(t, models.PaymentStatusUnpaid, stored.PaymentStatus)
}

func TestListOrdersByEmail(t *testing.T) {
	s := newTestServer(t)
	book := s.seedBook(t, 5)
	s.placeOrder(t, book.ID)
	s.placeOrder(t, book.ID)

	w := s.request(t, http.MethodGet, "/orders?email="+buyerEmail+"&limit=1", nil, buyerToken)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	env := decode(t, w, &orders)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(2), env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.TotalPages)

	w = s.request(t, http.MethodGet, "/orders?email="+otherEmail, nil, buyerToken)
	decode(t, w, &orders)
	assert.Empty(t, orders)
}

func TestOrderNotFound(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, s.request(t, http.MethodGet, "/orders/42", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, s.request(t, http.MethodDelete, "/orders/42", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.request(t, http.MethodPost, "/orders", map[string]interface{}{"customer_email": buyerEmail}, "").Code)
}

func TestBooksSearchAndFilter(t *testing.T) {
	s := newTestServer(t)
	s.seedBook(t, 5)
	other := models.Book{Title: "Chokher Bali", Author: "Rabindranath Tagore", SellerEmail: otherEmail}
	require.NoError(t, s.db.Create(&other).Error)

	var books []models.Book
	w := s.request(t, http.MethodGet, "/books?search=tagore", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &books)
	require.Len(t, books, 1)
	assert.Equal(t, other.ID, books[0].ID)

	w = s.request(t, http.MethodGet, "/books?seller_email="+otherEmail, nil, "")
	decode(t, w, &books)
	require.Len(t, books, 1)

	w = s.request(t, http.MethodPost, "/books", map[string]interface{}{"title": "", "price": 3}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
