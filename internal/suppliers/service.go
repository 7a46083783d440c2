package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marketconnect/backend/pkg/db/models"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"gorm.io/gorm"
)

type supplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	FindByID(ctx context.Context, id int64) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	SearchByLocation(ctx context.Context, query LocationQuery) ([]models.Supplier, error)
}

// Service exposes supplier operations.
type Service interface {
	Create(ctx context.Context, input SupplierInput) (*CreatedSupplierDTO, error)
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
	Update(ctx context.Context, id int64, input SupplierInput) (*UpdateResultDTO, error)
	Delete(ctx context.Context, id int64) (*UpdateResultDTO, error)
	SearchByCapabilities(ctx context.Context, capabilities []string) ([]models.Supplier, error)
	SearchByLocation(ctx context.Context, query LocationQuery) ([]models.Supplier, error)
}

type service struct {
	repo supplierRepository
}

// NewService builds a supplier service with the provided repository.
func NewService(repo supplierRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("supplier repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input SupplierInput) (*CreatedSupplierDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	supplier := input.ToModel()
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create supplier")
	}
	return echoCreated(input, supplier.ID), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier")
	}
	return supplier, nil
}

func (s *service) List(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list suppliers")
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	return suppliers, nil
}

// Update overwrites the stored profile with the submitted payload. Omitted
// fields are written as empty, not preserved; the contract is a full-row PUT.
func (s *service) Update(ctx context.Context, id int64, input SupplierInput) (*UpdateResultDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier")
	}

	replacement := input.ToModel()
	replacement.ID = existing.ID
	replacement.FirebaseUserID = existing.FirebaseUserID
	replacement.CreatedAt = existing.CreatedAt

	changes, err := s.repo.Update(ctx, replacement)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update supplier")
	}
	return &UpdateResultDTO{SupplierID: id, Changes: changes}, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*UpdateResultDTO, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier")
	}

	changes, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete supplier")
	}
	return &UpdateResultDTO{SupplierID: id, Changes: changes}, nil
}

// SearchByCapabilities returns suppliers whose capability list overlaps any
// of the requested tags. The match runs in application code over the full
// supplier set because the capability column holds serialized JSON.
func (s *service) SearchByCapabilities(ctx context.Context, capabilities []string) ([]models.Supplier, error) {
	if len(capabilities) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Capabilities parameter is required")
	}

	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list suppliers")
	}

	matched := []models.Supplier{}
	for _, supplier := range suppliers {
		if supplier.SupplyCapabilities.ContainsAny(capabilities) {
			matched = append(matched, supplier)
		}
	}
	return matched, nil
}

func (s *service) SearchByLocation(ctx context.Context, query LocationQuery) ([]models.Supplier, error) {
	if query.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			"At least one location parameter (city, state, or pincode) is required")
	}

	suppliers, err := s.repo.SearchByLocation(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search suppliers by location")
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	return suppliers, nil
}

func validateInput(input SupplierInput) error {
	missing := strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.MobileNumber) == "" ||
		strings.TrimSpace(input.LanguagePreference) == "" ||
		strings.TrimSpace(input.BusinessAddress) == "" ||
		strings.TrimSpace(input.City) == "" ||
		strings.TrimSpace(input.Pincode) == "" ||
		strings.TrimSpace(input.State) == "" ||
		strings.TrimSpace(input.BusinessType) == "" ||
		len(input.SupplyCapabilities) == 0 ||
		strings.TrimSpace(input.PreferredDeliveryTime) == ""
	if missing {
		return pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields").
			WithRequired(requiredFields)
	}
	return nil
}
