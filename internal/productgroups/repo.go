package productgroups

import (
	"context"

	"github.com/marketconnect/backend/pkg/db/models"
	"github.com/marketconnect/backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository handles product group persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to product group operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new product group row.
func (r *Repository) Create(ctx context.Context, group *models.ProductGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// FindByID loads a product group by id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.ProductGroup, error) {
	var group models.ProductGroup
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// List returns all product groups, newest first.
func (r *Repository) List(ctx context.Context) ([]models.ProductGroup, error) {
	var groups []models.ProductGroup
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// UpdateStatus writes the new status for a group.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.GroupStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.ProductGroup{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
