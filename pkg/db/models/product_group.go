package models

import (
	"time"

	"github.com/marketconnect/backend/pkg/enums"
)

// ProductGroup is a supplier-initiated bulk-buy campaign for one product.
// Quantity and the pricing fields are display text supplied by the creator:
// price, actual_rate, final_rate and discount_percentage are independent
// inputs, never recomputed server-side.
type ProductGroup struct {
	ID                 int64             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Product            string            `gorm:"column:product;not null" json:"product"`
	Quantity           string            `gorm:"column:quantity;not null" json:"quantity"`
	Price              string            `gorm:"column:price" json:"price,omitempty"`
	ActualRate         string            `gorm:"column:actual_rate" json:"actual_rate,omitempty"`
	FinalRate          string            `gorm:"column:final_rate" json:"final_rate,omitempty"`
	DiscountPercentage string            `gorm:"column:discount_percentage" json:"discount_percentage,omitempty"`
	Location           string            `gorm:"column:location;not null" json:"location"`
	Deadline           time.Time         `gorm:"column:deadline;not null" json:"deadline"`
	Status             enums.GroupStatus `gorm:"column:status;not null;default:'pending'" json:"status"`
	CreatedBy          int64             `gorm:"column:created_by;not null" json:"created_by"`
	Latitude           string            `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude          string            `gorm:"column:longitude" json:"longitude,omitempty"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName pins the legacy table name.
func (ProductGroup) TableName() string {
	return "product_groups"
}
