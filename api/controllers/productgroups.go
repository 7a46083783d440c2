package controllers

import (
	"net/http"

	"github.com/marketconnect/backend/api/responses"
	"github.com/marketconnect/backend/api/validators"
	"github.com/marketconnect/backend/internal/productgroups"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"github.com/marketconnect/backend/pkg/logger"
)

// CreateProductGroup starts a bulk-buy campaign.
func CreateProductGroup(svc productgroups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input productgroups.CreateGroupInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		group, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, map[string]any{
			"message": "Product group created successfully",
			"groupId": group.ID,
			"data":    group,
		})
	}
}

// ListProductGroups returns all campaigns, newest first.
func ListProductGroups(svc productgroups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, groups)
	}
}

// GetProductGroup returns one campaign by id.
func GetProductGroup(svc productgroups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "Product group not found"))
			return
		}

		group, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, group)
	}
}

// UpdateProductGroupStatus moves a campaign through its lifecycle.
func UpdateProductGroupStatus(svc productgroups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "Product group not found"))
			return
		}

		var body struct {
			Status string `json:"status" validate:"required"`
		}
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		group, err := svc.UpdateStatus(r.Context(), id, body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Product group status updated successfully",
			"groupId": group.ID,
			"status":  group.Status,
		})
	}
}
