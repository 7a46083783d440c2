package controllers

import (
	"net/http"

	"github.com/marketconnect/backend/api/responses"
	"github.com/marketconnect/backend/api/validators"
	"github.com/marketconnect/backend/internal/suppliers"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"github.com/marketconnect/backend/pkg/logger"
)

// CreateSupplier registers a supplier profile.
func CreateSupplier(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input suppliers.SupplierInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithSupplierID(r.Context(), created.ID), "supplier profile created")
		}

		responses.WriteJSON(w, http.StatusCreated, map[string]any{
			"message":    "Supplier profile created successfully",
			"supplierId": created.ID,
			"data":       created,
		})
	}
}

// ListSuppliers returns all supplier profiles, newest first.
func ListSuppliers(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, list)
	}
}

// GetSupplier returns a single supplier profile by id.
func GetSupplier(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "Supplier not found"))
			return
		}

		supplier, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, supplier)
	}
}

// UpdateSupplier overwrites a supplier profile.
func UpdateSupplier(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "Supplier not found"))
			return
		}

		var input suppliers.SupplierInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"message":    "Supplier profile updated successfully",
			"supplierId": result.SupplierID,
			"changes":    result.Changes,
		})
	}
}

// DeleteSupplier removes a supplier profile.
func DeleteSupplier(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "Supplier not found"))
			return
		}

		result, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"message":    "Supplier profile deleted successfully",
			"supplierId": result.SupplierID,
			"changes":    result.Changes,
		})
	}
}

// SearchSuppliersByCapabilities filters suppliers by capability overlap.
func SearchSuppliersByCapabilities(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		capabilities := validators.ParseQueryList(r, "capabilities")

		found, err := svc.SearchByCapabilities(r.Context(), capabilities)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, found)
	}
}

// SearchSuppliersByLocation filters suppliers by city, state, or pincode.
func SearchSuppliersByLocation(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := suppliers.LocationQuery{
			City:    r.URL.Query().Get("city"),
			State:   r.URL.Query().Get("state"),
			Pincode: r.URL.Query().Get("pincode"),
		}

		found, err := svc.SearchByLocation(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, found)
	}
}
