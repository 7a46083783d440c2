package models

import (
	"time"

	"github.com/marketconnect/backend/pkg/types"
)

// Supplier is a registered wholesale/retail raw-material business. The
// credential fields past the contact core are optional and arrived through a
// later schema revision; all of them are free text in the legacy data.
type Supplier struct {
	ID                    int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirebaseUserID        string           `gorm:"column:firebase_user_id" json:"firebase_user_id,omitempty"`
	FullName              string           `gorm:"column:full_name;not null" json:"full_name"`
	MobileNumber          string           `gorm:"column:mobile_number;not null" json:"mobile_number"`
	LanguagePreference    string           `gorm:"column:language_preference;not null" json:"language_preference"`
	BusinessName          string           `gorm:"column:business_name" json:"business_name"`
	BusinessAddress       string           `gorm:"column:business_address;not null" json:"business_address"`
	City                  string           `gorm:"column:city;not null" json:"city"`
	Pincode               string           `gorm:"column:pincode;not null" json:"pincode"`
	State                 string           `gorm:"column:state;not null" json:"state"`
	BusinessType          string           `gorm:"column:business_type;not null" json:"business_type"`
	SupplyCapabilities    types.StringList `gorm:"column:supply_capabilities;type:text;not null" json:"supply_capabilities"`
	PreferredDeliveryTime string           `gorm:"column:preferred_delivery_time;not null" json:"preferred_delivery_time"`

	PrimaryEmail         string `gorm:"column:primary_email" json:"primary_email,omitempty"`
	WhatsappBusiness     string `gorm:"column:whatsapp_business" json:"whatsapp_business,omitempty"`
	GSTNumber            string `gorm:"column:gst_number" json:"gst_number,omitempty"`
	LicenseNumber        string `gorm:"column:license_number" json:"license_number,omitempty"`
	YearsInBusiness      string `gorm:"column:years_in_business" json:"years_in_business,omitempty"`
	EmployeeCount        string `gorm:"column:employee_count" json:"employee_count,omitempty"`
	FoodSafetyLicense    string `gorm:"column:food_safety_license" json:"food_safety_license,omitempty"`
	OrganicCertification string `gorm:"column:organic_certification" json:"organic_certification,omitempty"`
	ISOCertification     string `gorm:"column:iso_certification" json:"iso_certification,omitempty"`
	ExportLicense        string `gorm:"column:export_license" json:"export_license,omitempty"`
	Website              string `gorm:"column:website" json:"website,omitempty"`
	MinimumOrderValue    string `gorm:"column:minimum_order_value" json:"minimum_order_value,omitempty"`
	DeliveryTime         string `gorm:"column:delivery_time" json:"delivery_time,omitempty"`
	PaymentTerms         string `gorm:"column:payment_terms" json:"payment_terms,omitempty"`
	ServiceAreas         string `gorm:"column:service_areas" json:"service_areas,omitempty"`

	Latitude  string    `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude string    `gorm:"column:longitude" json:"longitude,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the legacy table name.
func (Supplier) TableName() string {
	return "suppliers"
}
