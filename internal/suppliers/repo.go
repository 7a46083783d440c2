package suppliers

import (
	"context"
	"fmt"
	"strings"

	"github.com/marketconnect/backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles supplier persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to supplier operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new supplier row.
func (r *Repository) Create(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// FindByID loads a supplier by id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// List returns all suppliers, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Update overwrites the full supplier row.
func (r *Repository) Update(ctx context.Context, supplier *models.Supplier) (int64, error) {
	if supplier == nil {
		return 0, fmt.Errorf("supplier is required")
	}
	res := r.db.WithContext(ctx).Save(supplier)
	return res.RowsAffected, res.Error
}

// Delete removes a supplier row and reports how many rows were touched.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Supplier{})
	return res.RowsAffected, res.Error
}

// SearchByLocation filters suppliers by any of city, state, or pincode.
// City and state match case-insensitive substrings, pincode matches exactly;
// the clauses are combined with OR, mirroring the legacy search contract.
func (r *Repository) SearchByLocation(ctx context.Context, query LocationQuery) ([]models.Supplier, error) {
	db := r.db.WithContext(ctx)

	var conditions []string
	var args []any
	if query.City != "" {
		conditions = append(conditions, "LOWER(city) LIKE ?")
		args = append(args, "%"+strings.ToLower(query.City)+"%")
	}
	if query.State != "" {
		conditions = append(conditions, "LOWER(state) LIKE ?")
		args = append(args, "%"+strings.ToLower(query.State)+"%")
	}
	if query.Pincode != "" {
		conditions = append(conditions, "pincode = ?")
		args = append(args, query.Pincode)
	}

	var suppliers []models.Supplier
	if err := db.Where(strings.Join(conditions, " OR "), args...).
		Order("created_at DESC").
		Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}
