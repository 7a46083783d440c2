package db

import (
	"context"
	"fmt"

	"github.com/marketconnect/backend/pkg/db/models"
)

// Bootstrap creates or extends the schema in place through GORM's
// AutoMigrate. It is the SQLite initialization path (goose migrations cover
// Postgres) and is safe to invoke repeatedly: existing tables, columns and
// rows are left untouched, missing columns are added.
func (c *Client) Bootstrap(ctx context.Context) error {
	err := c.conn.WithContext(ctx).AutoMigrate(
		&models.Vendor{},
		&models.Supplier{},
		&models.ProductGroup{},
		&models.Order{},
	)
	if err != nil {
		return fmt.Errorf("bootstrapping schema: %w", err)
	}
	return nil
}
