package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSupplier(t *testing.T, env *testEnv, payload map[string]any) int64 {
	t.Helper()
	rec := env.request(t, http.MethodPost, "/api/suppliers", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	return int64(decodeBody(t, rec)["supplierId"].(float64))
}

func TestCreateSupplierEndpoint(t *testing.T) {
	env := setupEnv(t)

	rec := env.request(t, http.MethodPost, "/api/suppliers", supplierPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Supplier profile created successfully", body["message"])
	assert.NotZero(t, body["supplierId"])
}

func TestCreateSupplierEndpointValidation(t *testing.T) {
	env := setupEnv(t)

	payload := supplierPayload()
	payload["supplyCapabilities"] = []string{}

	rec := env.request(t, http.MethodPost, "/api/suppliers", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	required, ok := body["required"].([]any)
	require.True(t, ok)
	assert.Contains(t, required, "supplyCapabilities")
}

func TestCreateSupplierEndpointBadEmail(t *testing.T) {
	env := setupEnv(t)

	payload := supplierPayload()
	payload["primaryEmail"] = "not-an-email"

	rec := env.request(t, http.MethodPost, "/api/suppliers", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	details, ok := decodeBody(t, rec)["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email", details["primaryEmail"])
}

func TestUpdateSupplierEndpoint(t *testing.T) {
	env := setupEnv(t)
	id := createSupplier(t, env, supplierPayload())

	payload := supplierPayload()
	payload["fullName"] = "Ramesh Traders Pvt Ltd"

	rec := env.request(t, http.MethodPut, fmt.Sprintf("/api/suppliers/%d", id), payload)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Supplier profile updated successfully", body["message"])
	assert.EqualValues(t, 1, body["changes"])

	rec = env.request(t, http.MethodPut, fmt.Sprintf("/api/suppliers/%d", id+99), payload)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSupplierEndpoint(t *testing.T) {
	env := setupEnv(t)
	id := createSupplier(t, env, supplierPayload())

	rec := env.request(t, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Supplier profile deleted successfully", decodeBody(t, rec)["message"])

	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", id), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchSuppliersByCapabilitiesEndpoint(t *testing.T) {
	env := setupEnv(t)
	createSupplier(t, env, supplierPayload())

	dairy := supplierPayload()
	dairy["fullName"] = "Dairy Supplier"
	dairy["supplyCapabilities"] = []string{"Milk"}
	createSupplier(t, env, dairy)

	rec := env.request(t, http.MethodGet, "/api/suppliers/search/capabilities?capabilities=Milk,Charcoal", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dairy Supplier")
	assert.NotContains(t, rec.Body.String(), "Ramesh Traders")

	rec = env.request(t, http.MethodGet, "/api/suppliers/search/capabilities", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Capabilities parameter is required", decodeBody(t, rec)["error"])
}

func TestSearchSuppliersByLocationEndpoint(t *testing.T) {
	env := setupEnv(t)
	createSupplier(t, env, supplierPayload())

	rec := env.request(t, http.MethodGet, "/api/suppliers/search/location?city=pune", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ramesh Traders")

	rec = env.request(t, http.MethodGet, "/api/suppliers/search/location", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSupplierEndpointNotFound(t *testing.T) {
	env := setupEnv(t)

	rec := env.request(t, http.MethodGet, "/api/suppliers/424242", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Supplier not found", decodeBody(t, rec)["error"])
}
