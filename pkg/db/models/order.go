package models

import (
	"time"

	"github.com/marketconnect/backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Order is a committed purchase transaction, individual or group-sourced.
// The id is supplied by the caller (the checkout flow mints it client-side),
// so the store treats it as an opaque unique string. Items and
// customer_details are opaque JSON text to the store. All monetary fields are
// caller-supplied and never recomputed.
type Order struct {
	ID              string              `gorm:"column:id;primaryKey" json:"id"`
	VendorID        int64               `gorm:"column:vendor_id;not null" json:"vendor_id"`
	SupplierID      *int64              `gorm:"column:supplier_id" json:"supplier_id,omitempty"`
	OrderType       enums.OrderType     `gorm:"column:order_type;default:'individual'" json:"order_type"`
	Items           string              `gorm:"column:items;not null" json:"items"`
	Subtotal        decimal.Decimal     `gorm:"column:subtotal;type:numeric(12,2);default:0" json:"subtotal"`
	Tax             decimal.Decimal     `gorm:"column:tax;type:numeric(12,2);default:0" json:"tax"`
	DeliveryCharge  decimal.Decimal     `gorm:"column:delivery_charge;type:numeric(12,2);default:0" json:"delivery_charge"`
	GroupDiscount   decimal.Decimal     `gorm:"column:group_discount;type:numeric(12,2);default:0" json:"group_discount"`
	TotalAmount     decimal.Decimal     `gorm:"column:total_amount;type:numeric(12,2);not null" json:"total_amount"`
	Status          enums.OrderStatus   `gorm:"column:status;default:'pending'" json:"status"`
	PaymentStatus   enums.PaymentStatus `gorm:"column:payment_status;default:'pending'" json:"payment_status"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;default:'online'" json:"payment_method"`
	PaymentID       string              `gorm:"column:payment_id" json:"payment_id,omitempty"`
	DeliveryAddress string              `gorm:"column:delivery_address" json:"delivery_address,omitempty"`
	DeliveryDate    string              `gorm:"column:delivery_date" json:"delivery_date,omitempty"`
	Notes           string              `gorm:"column:notes" json:"notes,omitempty"`
	CustomerDetails string              `gorm:"column:customer_details" json:"customer_details,omitempty"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the legacy table name.
func (Order) TableName() string {
	return "orders"
}
