package vendors

import (
	"github.com/marketconnect/backend/pkg/db/models"
	"github.com/marketconnect/backend/pkg/types"
)

// CreateVendorInput is the registration payload. Field names follow the
// public API contract (camelCase on the wire, snake_case in stored rows).
type CreateVendorInput struct {
	FullName              string   `json:"fullName"`
	MobileNumber          string   `json:"mobileNumber"`
	LanguagePreference    string   `json:"languagePreference"`
	StallName             string   `json:"stallName"`
	StallAddress          string   `json:"stallAddress"`
	City                  string   `json:"city"`
	Pincode               string   `json:"pincode"`
	State                 string   `json:"state"`
	StallType             string   `json:"stallType"`
	RawMaterialNeeds      []string `json:"rawMaterialNeeds"`
	PreferredDeliveryTime string   `json:"preferredDeliveryTime"`
	Latitude              string   `json:"latitude"`
	Longitude             string   `json:"longitude"`
}

// requiredFields is the full mandatory list reported on any validation
// failure, not just the fields that were missing.
var requiredFields = []string{
	"fullName", "mobileNumber", "languagePreference", "stallAddress",
	"city", "pincode", "state", "stallType", "rawMaterialNeeds",
	"preferredDeliveryTime",
}

// ToModel maps the registration payload onto a vendor row.
func (in CreateVendorInput) ToModel() *models.Vendor {
	return &models.Vendor{
		FullName:              in.FullName,
		MobileNumber:          in.MobileNumber,
		LanguagePreference:    in.LanguagePreference,
		StallName:             in.StallName,
		StallAddress:          in.StallAddress,
		City:                  in.City,
		Pincode:               in.Pincode,
		State:                 in.State,
		StallType:             in.StallType,
		RawMaterialNeeds:      types.StringList(in.RawMaterialNeeds),
		PreferredDeliveryTime: in.PreferredDeliveryTime,
		Latitude:              in.Latitude,
		Longitude:             in.Longitude,
	}
}

// CreatedVendorDTO echoes the submitted profile with its generated id in the
// creation response.
type CreatedVendorDTO struct {
	ID                    int64    `json:"id"`
	FullName              string   `json:"fullName"`
	MobileNumber          string   `json:"mobileNumber"`
	LanguagePreference    string   `json:"languagePreference"`
	StallName             string   `json:"stallName"`
	StallAddress          string   `json:"stallAddress"`
	City                  string   `json:"city"`
	Pincode               string   `json:"pincode"`
	State                 string   `json:"state"`
	StallType             string   `json:"stallType"`
	RawMaterialNeeds      []string `json:"rawMaterialNeeds"`
	PreferredDeliveryTime string   `json:"preferredDeliveryTime"`
	Latitude              string   `json:"latitude"`
	Longitude             string   `json:"longitude"`
}

func echoCreated(in CreateVendorInput, id int64) *CreatedVendorDTO {
	return &CreatedVendorDTO{
		ID:                    id,
		FullName:              in.FullName,
		MobileNumber:          in.MobileNumber,
		LanguagePreference:    in.LanguagePreference,
		StallName:             in.StallName,
		StallAddress:          in.StallAddress,
		City:                  in.City,
		Pincode:               in.Pincode,
		State:                 in.State,
		StallType:             in.StallType,
		RawMaterialNeeds:      in.RawMaterialNeeds,
		PreferredDeliveryTime: in.PreferredDeliveryTime,
		Latitude:              in.Latitude,
		Longitude:             in.Longitude,
	}
}
