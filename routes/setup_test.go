package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/controllers"
	"github.com/Govind-619/BooksCourier/middleware"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	buyerToken = "buyer-token"
	adminToken = "admin-token"
	otherToken = "other-token"

	buyerEmail = "buyer@example.com"
	adminEmail = "admin@example.com"
	otherEmail = "other@example.com"
)

type fakeVerifier map[string]string

func (f fakeVerifier) VerifyIDToken(_ context.Context, token string) (*utils.IdentityClaims, error) {
	email, ok := f[token]
	if !ok {
		return nil, utils.ErrInvalidToken
	}
	return &utils.IdentityClaims{UID: "uid-" + token, Email: email, EmailVerified: true}, nil
}

// fakeGateway keeps checkout sessions in memory; markPaid plays the buyer
// completing the payment
type fakeGateway struct {
	mu          sync.Mutex
	sessions    map[string]*utils.CheckoutSession
	requests    []utils.CheckoutRequest
	retrieveErr error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, req utils.CheckoutRequest) (*utils.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.requests = append(g.requests, req)
	id := fmt.Sprintf("plink_%d", len(g.requests))
	s := &utils.CheckoutSession{
		ID:            id,
		URL:           "https://rzp.io/i/" + id,
		AmountMinor:   utils.ToMinorUnits(req.Amount),
		Currency:      strings.ToLower(req.Currency),
		PaymentStatus: "created",
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Metadata: map[string]string{
			utils.MetaOrderID:   req.OrderID,
			utils.MetaBookID:    req.BookID,
			utils.MetaBookTitle: req.BookTitle,
		},
	}
	g.sessions[id] = s
	return s, nil
}

func (g *fakeGateway) RetrieveCheckoutSession(_ context.Context, id string) (*utils.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.retrieveErr != nil {
		return nil, g.retrieveErr
	}
	s, ok := g.sessions[id]
	if !ok {
		return nil, errors.New("payment link not found")
	}
	copied := *s
	return &copied, nil
}

func (g *fakeGateway) markPaid(id, transactionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[id].PaymentStatus = models.PaymentStatusPaid
	g.sessions[id].TransactionID = transactionID
}

type busyGuard struct{}

func (busyGuard) Acquire(context.Context, string) (string, bool, error) { return "", false, nil }

func (busyGuard) Release(context.Context, string, string) error { return nil }

type testServer struct {
	router  *gin.Engine
	db      *gorm.DB
	gateway *fakeGateway
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	config.DB = db

	gateway := &fakeGateway{sessions: map[string]*utils.CheckoutSession{}}
	middleware.SetTokenVerifier(fakeVerifier{
		buyerToken: buyerEmail,
		adminToken: adminEmail,
		otherToken: otherEmail,
	})
	controllers.InitPayments(controllers.PaymentSettings{
		Gateway:    gateway,
		Currency:   "INR",
		SiteDomain: "http://localhost:5173",
	})

	return &testServer{
		router:  SetupRouter("test-session-secret", false),
		db:      db,
		gateway: gateway,
	}
}

func (s *testServer) request(t *testing.T, method, path string, body interface{}, token string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		PerPage    int   `json:"per_page"`
		TotalPages int   `json:"total_pages"`
	} `json:"pagination"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), string(env.Data))
	}
	return env
}

func (s *testServer) seedBook(t *testing.T, price float64) models.Book {
	t.Helper()
	book := models.Book{
		Title:       "Pather Panchali",
		Author:      "Bibhutibhushan Bandyopadhyay",
		Price:       price,
		Quantity:    1,
		SellerName:  "Old Books Corner",
		SellerEmail: "seller@example.com",
	}
	require.NoError(t, s.db.Create(&book).Error)
	return book
}

func (s *testServer) seedUser(t *testing.T, email, role string) models.User {
	t.Helper()
	user := models.User{Email: email, DisplayName: strings.Split(email, "@")[0], Role: role}
	require.NoError(t, s.db.Create(&user).Error)
	return user
}
