package vendors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marketconnect/backend/pkg/db/models"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"gorm.io/gorm"
)

type vendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	FindByID(ctx context.Context, id int64) (*models.Vendor, error)
	List(ctx context.Context) ([]models.Vendor, error)
}

// Service exposes vendor operations. Vendors have no update or delete path;
// profiles are write-once and read-mostly.
type Service interface {
	Create(ctx context.Context, input CreateVendorInput) (*CreatedVendorDTO, error)
	GetByID(ctx context.Context, id int64) (*models.Vendor, error)
	List(ctx context.Context) ([]models.Vendor, error)
}

type service struct {
	repo vendorRepository
}

// NewService builds a vendor service with the provided repository.
func NewService(repo vendorRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vendor repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateVendorInput) (*CreatedVendorDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	vendor := input.ToModel()
	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create vendor")
	}
	return echoCreated(input, vendor.ID), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*models.Vendor, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vendor")
	}
	return vendor, nil
}

func (s *service) List(ctx context.Context) ([]models.Vendor, error) {
	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendors")
	}
	if vendors == nil {
		vendors = []models.Vendor{}
	}
	return vendors, nil
}

func validateCreate(input CreateVendorInput) error {
	missing := strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.MobileNumber) == "" ||
		strings.TrimSpace(input.LanguagePreference) == "" ||
		strings.TrimSpace(input.StallAddress) == "" ||
		strings.TrimSpace(input.City) == "" ||
		strings.TrimSpace(input.Pincode) == "" ||
		strings.TrimSpace(input.State) == "" ||
		strings.TrimSpace(input.StallType) == "" ||
		len(input.RawMaterialNeeds) == 0 ||
		strings.TrimSpace(input.PreferredDeliveryTime) == ""
	if missing {
		return pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields").
			WithRequired(requiredFields)
	}
	return nil
}
