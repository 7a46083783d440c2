package controllers

import (
	"net/http"

	"github.com/marketconnect/backend/api/responses"
	"github.com/marketconnect/backend/api/validators"
	"github.com/marketconnect/backend/internal/vendors"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"github.com/marketconnect/backend/pkg/logger"
)

// CreateVendor registers a vendor profile.
func CreateVendor(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input vendors.CreateVendorInput
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
			logg.Info(logg.WithVendorID(r.Context(), created.ID), "vendor profile created")
		}

		responses.WriteJSON(w, http.StatusCreated, map[string]any{
			"message":  "Vendor profile created successfully",
			"vendorId": created.ID,
			"data":     created,
		})
	}
}

// ListVendors returns all vendor profiles, newest first.
func ListVendors(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, list)
	}
}

// GetVendor returns a single vendor profile by id.
func GetVendor(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "Vendor not found"))
			return
		}

		vendor, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, vendor)
	}
}
