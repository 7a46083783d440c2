package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
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
)

const testGatewaySecret = "controller-test-secret"

type testEnv struct {
	db     *gorm.DB
	router chi.Router
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:controllers_test?mode=memory&cache=shared"), &gorm.Config{
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
		GatewaySecret: testGatewaySecret,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api/vendors", func(r chi.Router) {
		r.Post("/", CreateVendor(vendorSvc, nil))
		r.Get("/", ListVendors(vendorSvc, nil))
		r.Get("/{id}", GetVendor(vendorSvc, nil))
	})
	r.Route("/api/suppliers", func(r chi.Router) {
		r.Post("/", CreateSupplier(supplierSvc, nil))
		r.Get("/", ListSuppliers(supplierSvc, nil))
		r.Get("/search/capabilities", SearchSuppliersByCapabilities(supplierSvc, nil))
		r.Get("/search/location", SearchSuppliersByLocation(supplierSvc, nil))
		r.Get("/{id}", GetSupplier(supplierSvc, nil))
		r.Put("/{id}", UpdateSupplier(supplierSvc, nil))
		r.Delete("/{id}", DeleteSupplier(supplierSvc, nil))
	})
	r.Route("/api/product-groups", func(r chi.Router) {
		r.Post("/", CreateProductGroup(groupSvc, nil))
		r.Get("/", ListProductGroups(groupSvc, nil))
		r.Get("/{id}", GetProductGroup(groupSvc, nil))
		r.Patch("/{id}/status", UpdateProductGroupStatus(groupSvc, nil))
	})
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", CreateOrder(orderSvc, nil))
		r.Get("/", ListOrders(orderSvc, nil))
		r.Get("/vendor/{vendorId}", ListVendorOrders(orderSvc, nil))
		r.Get("/supplier/{supplierId}", ListSupplierOrders(orderSvc, nil))
		r.Get("/{orderId}", GetOrder(orderSvc, nil))
		r.Put("/{orderId}/status", UpdateOrderStatus(orderSvc, nil))
		r.Delete("/{orderId}", DeleteOrder(orderSvc, nil))
	})
	r.Post("/api/payments/verify", VerifyPayment(paymentSvc, nil))

	return &testEnv{db: db, router: r}
}

func (e *testEnv) request(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return decoded
}

func vendorPayload() map[string]any {
	return map[string]any{
		"fullName":              "Asha Pawar",
		"mobileNumber":          "9876543210",
		"languagePreference":    "hi",
		"stallName":             "Asha Chaat Corner",
		"stallAddress":          "12 Linking Road",
		"city":                  "Mumbai",
		"pincode":               "400050",
		"state":                 "Maharashtra",
		"stallType":             "chaat",
		"rawMaterialNeeds":      []string{"Spices", "Oil"},
		"preferredDeliveryTime": "morning",
	}
}

func supplierPayload() map[string]any {
	return map[string]any{
		"fullName":              "Ramesh Traders",
		"mobileNumber":          "9812345678",
		"languagePreference":    "hi",
		"businessName":          "Ramesh Wholesale",
		"businessAddress":       "4 Mandi Lane",
		"city":                  "Pune",
		"pincode":               "411001",
		"state":                 "Maharashtra",
		"businessType":          "wholesale",
		"supplyCapabilities":    []string{"Vegetables", "Spices"},
		"preferredDeliveryTime": "morning",
	}
}

func orderPayload(id string) map[string]any {
	return map[string]any{
		"id":           id,
		"vendor_id":    3,
		"items":        []map[string]any{{"name": "Onions", "qty": 25}},
		"subtotal":     700,
		"tax":          35,
		"total_amount": 735,
	}
}
