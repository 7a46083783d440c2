package models

import (
	"time"

	"github.com/marketconnect/backend/pkg/types"
)

// Vendor is a registered stall operator buying raw materials.
type Vendor struct {
	ID                    int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirebaseUserID        string           `gorm:"column:firebase_user_id" json:"firebase_user_id,omitempty"`
	FullName              string           `gorm:"column:full_name;not null" json:"full_name"`
	MobileNumber          string           `gorm:"column:mobile_number;not null" json:"mobile_number"`
	LanguagePreference    string           `gorm:"column:language_preference;not null" json:"language_preference"`
	StallName             string           `gorm:"column:stall_name" json:"stall_name"`
	StallAddress          string           `gorm:"column:stall_address;not null" json:"stall_address"`
	City                  string           `gorm:"column:city;not null" json:"city"`
	Pincode               string           `gorm:"column:pincode;not null" json:"pincode"`
	State                 string           `gorm:"column:state;not null" json:"state"`
	StallType             string           `gorm:"column:stall_type;not null" json:"stall_type"`
	RawMaterialNeeds      types.StringList `gorm:"column:raw_material_needs;type:text;not null" json:"raw_material_needs"`
	PreferredDeliveryTime string           `gorm:"column:preferred_delivery_time;not null" json:"preferred_delivery_time"`
	Latitude              string           `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude             string           `gorm:"column:longitude" json:"longitude,omitempty"`
	CreatedAt             time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the legacy table name.
func (Vendor) TableName() string {
	return "vendors"
}
