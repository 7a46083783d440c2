package productgroups

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/marketconnect/backend/pkg/db/models"
	"github.com/marketconnect/backend/pkg/enums"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"gorm.io/gorm"
)

type groupRepository interface {
	Create(ctx context.Context, group *models.ProductGroup) error
	FindByID(ctx context.Context, id int64) (*models.ProductGroup, error)
	List(ctx context.Context) ([]models.ProductGroup, error)
	UpdateStatus(ctx context.Context, id int64, status enums.GroupStatus) (int64, error)
}

// Service exposes product group operations.
type Service interface {
	Create(ctx context.Context, input CreateGroupInput) (*models.ProductGroup, error)
	GetByID(ctx context.Context, id int64) (*models.ProductGroup, error)
	List(ctx context.Context) ([]models.ProductGroup, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.ProductGroup, error)
}

type service struct {
	repo groupRepository
}

// NewService builds a product group service with the provided repository.
func NewService(repo groupRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product group repository required")
	}
	return &service{repo: repo}, nil
}

// deadline payloads arrive either as bare dates or full timestamps
var deadlineLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func (s *service) Create(ctx context.Context, input CreateGroupInput) (*models.ProductGroup, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid deadline").
			WithRequired(requiredFields)
	}

	group := input.ToModel(deadline)
	group.Status = enums.GroupStatusPending
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product group")
	}
	return group, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*models.ProductGroup, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product group not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product group")
	}
	return group, nil
}

func (s *service) List(ctx context.Context) ([]models.ProductGroup, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list product groups")
	}
	if groups == nil {
		groups = []models.ProductGroup{}
	}
	return groups, nil
}

// UpdateStatus moves the campaign through its lifecycle. Illegal moves are
// rejected as state conflicts; repeating the current status is a no-op.
func (s *service) UpdateStatus(ctx context.Context, id int64, status string) (*models.ProductGroup, error) {
	next, err := enums.ParseGroupStatus(status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid status")
	}

	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product group not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product group")
	}

	if !group.Status.CanTransition(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("Cannot move product group from %s to %s", group.Status, next))
	}

	if group.Status != next {
		if _, err := s.repo.UpdateStatus(ctx, id, next); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product group status")
		}
		group.Status = next
	}
	return group, nil
}

func validateCreate(input CreateGroupInput) error {
	missing := strings.TrimSpace(input.Product) == "" ||
		strings.TrimSpace(input.Quantity) == "" ||
		strings.TrimSpace(input.Location) == "" ||
		strings.TrimSpace(input.Deadline) == "" ||
		input.CreatedBy == 0
	if missing {
		return pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields").
			WithRequired(requiredFields)
	}
	return nil
}

func parseDeadline(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range deadlineLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable deadline %q", value)
}
