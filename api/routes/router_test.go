package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marketconnect/backend/internal/orders"
	"github.com/marketconnect/backend/internal/payments"
	"github.com/marketconnect/backend/internal/productgroups"
	"github.com/marketconnect/backend/internal/suppliers"
	"github.com/marketconnect/backend/internal/vendors"
	"github.com/marketconnect/backend/pkg/config"
	"github.com/marketconnect/backend/pkg/db/models"
	"github.com/marketconnect/backend/pkg/logger"
	"github.com/marketconnect/backend/pkg/metrics"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:routes_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Vendor{}, &models.Supplier{}, &models.ProductGroup{}, &models.Order{},
	))
	t.Cleanup(func() {
		db.Exec("DELETE FROM vendors")
		db.Exec("DELETE FROM suppliers")
		db.Exec("DELETE FROM product_groups")
		db.Exec("DELETE FROM orders")
	})

	vendorSvc, err := vendors.NewService(vendors.NewRepository(db))
	require.NoError(t, err)
	supplierSvc, err := suppliers.NewService(suppliers.NewRepository(db))
	require.NoError(t, err)
	groupSvc, err := productgroups.NewService(productgroups.NewRepository(db))
	require.NoError(t, err)
	orderSvc, err := orders.NewService(orders.NewRepository(db))
	require.NoError(t, err)
	paymentSvc, err := payments.NewService(orders.NewRepository(db), config.PaymentsConfig{
		GatewayKeyID:  "rzp_test_key",
		GatewaySecret: "routes-test-secret",
	})
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	return NewRouter(Deps{
		Config:    &config.Config{},
		Logger:    logger.New(logger.Options{ServiceName: "routes-test"}),
		DB:        stubPinger{},
		Metrics:   metrics.NewHTTPMetrics(registry),
		Registry:  registry,
		Vendors:   vendorSvc,
		Suppliers: supplierSvc,
		Groups:    groupSvc,
		Orders:    orderSvc,
		Payments:  paymentSvc,
	})
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Route not found", body["error"])
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vendors", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestRouterRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vendors", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouterVendorLifecycle(t *testing.T) {
	router := newTestRouter(t)

	payload, err := json.Marshal(map[string]any{
		"fullName":              "Asha Pawar",
		"mobileNumber":          "9876543210",
		"languagePreference":    "hi",
		"stallAddress":          "12 Linking Road",
		"city":                  "Mumbai",
		"pincode":               "400050",
		"state":                 "Maharashtra",
		"stallType":             "chaat",
		"rawMaterialNeeds":      []string{"Spices"},
		"preferredDeliveryTime": "morning",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/vendors", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Vendor profile created successfully", body["message"])
	assert.NotZero(t, body["vendorId"])
}
