package suppliers

import (
	"github.com/marketconnect/backend/pkg/db/models"
	"github.com/marketconnect/backend/pkg/types"
)

// SupplierInput is the registration and update payload. camelCase on the
// wire, snake_case in stored rows. The same shape serves create and the
// full-row PUT; update defaults any omitted field to its zero value rather
// than patching.
type SupplierInput struct {
	FullName              string   `json:"fullName"`
	MobileNumber          string   `json:"mobileNumber"`
	LanguagePreference    string   `json:"languagePreference"`
	BusinessName          string   `json:"businessName"`
	BusinessAddress       string   `json:"businessAddress"`
	City                  string   `json:"city"`
	Pincode               string   `json:"pincode"`
	State                 string   `json:"state"`
	BusinessType          string   `json:"businessType"`
	SupplyCapabilities    []string `json:"supplyCapabilities"`
	PreferredDeliveryTime string   `json:"preferredDeliveryTime"`

	PrimaryEmail         string `json:"primaryEmail" validate:"omitempty,email"`
	WhatsappBusiness     string `json:"whatsappBusiness"`
	GSTNumber            string `json:"gstNumber"`
	LicenseNumber        string `json:"licenseNumber"`
	YearsInBusiness      string `json:"yearsInBusiness"`
	EmployeeCount        string `json:"employeeCount"`
	FoodSafetyLicense    string `json:"foodSafetyLicense"`
	OrganicCertification string `json:"organicCertification"`
	ISOCertification     string `json:"isoCertification"`
	ExportLicense        string `json:"exportLicense"`
	Website              string `json:"website"`
	MinimumOrderValue    string `json:"minimumOrderValue"`
	DeliveryTime         string `json:"deliveryTime"`
	PaymentTerms         string `json:"paymentTerms"`
	ServiceAreas         string `json:"serviceAreas"`

	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

var requiredFields = []string{
	"fullName", "mobileNumber", "languagePreference", "businessAddress",
	"city", "pincode", "state", "businessType", "supplyCapabilities",
	"preferredDeliveryTime",
}

// ToModel maps the payload onto a supplier row.
func (in SupplierInput) ToModel() *models.Supplier {
	capabilities := in.SupplyCapabilities
	if capabilities == nil {
		capabilities = []string{}
	}
	return &models.Supplier{
		FullName:              in.FullName,
		MobileNumber:          in.MobileNumber,
		LanguagePreference:    in.LanguagePreference,
		BusinessName:          in.BusinessName,
		BusinessAddress:       in.BusinessAddress,
		City:                  in.City,
		Pincode:               in.Pincode,
		State:                 in.State,
		BusinessType:          in.BusinessType,
		SupplyCapabilities:    types.StringList(capabilities),
		PreferredDeliveryTime: in.PreferredDeliveryTime,
		PrimaryEmail:          in.PrimaryEmail,
		WhatsappBusiness:      in.WhatsappBusiness,
		GSTNumber:             in.GSTNumber,
		LicenseNumber:         in.LicenseNumber,
		YearsInBusiness:       in.YearsInBusiness,
		EmployeeCount:         in.EmployeeCount,
		FoodSafetyLicense:     in.FoodSafetyLicense,
		OrganicCertification:  in.OrganicCertification,
		ISOCertification:      in.ISOCertification,
		ExportLicense:         in.ExportLicense,
		Website:               in.Website,
		MinimumOrderValue:     in.MinimumOrderValue,
		DeliveryTime:          in.DeliveryTime,
		PaymentTerms:          in.PaymentTerms,
		ServiceAreas:          in.ServiceAreas,
		Latitude:              in.Latitude,
		Longitude:             in.Longitude,
	}
}

// CreatedSupplierDTO echoes the submitted profile with its generated id.
type CreatedSupplierDTO struct {
	ID                    int64    `json:"id"`
	FullName              string   `json:"fullName"`
	MobileNumber          string   `json:"mobileNumber"`
	LanguagePreference    string   `json:"languagePreference"`
	BusinessName          string   `json:"businessName"`
	BusinessAddress       string   `json:"businessAddress"`
	City                  string   `json:"city"`
	Pincode               string   `json:"pincode"`
	State                 string   `json:"state"`
	BusinessType          string   `json:"businessType"`
	SupplyCapabilities    []string `json:"supplyCapabilities"`
	PreferredDeliveryTime string   `json:"preferredDeliveryTime"`
	Latitude              string   `json:"latitude"`
	Longitude             string   `json:"longitude"`
}

func echoCreated(in SupplierInput, id int64) *CreatedSupplierDTO {
	return &CreatedSupplierDTO{
		ID:                    id,
		FullName:              in.FullName,
		MobileNumber:          in.MobileNumber,
		LanguagePreference:    in.LanguagePreference,
		BusinessName:          in.BusinessName,
		BusinessAddress:       in.BusinessAddress,
		City:                  in.City,
		Pincode:               in.Pincode,
		State:                 in.State,
		BusinessType:          in.BusinessType,
		SupplyCapabilities:    in.SupplyCapabilities,
		PreferredDeliveryTime: in.PreferredDeliveryTime,
		Latitude:              in.Latitude,
		Longitude:             in.Longitude,
	}
}

// UpdateResultDTO reports a full-row update or delete outcome.
type UpdateResultDTO struct {
	SupplierID int64
	Changes    int64
}

// LocationQuery carries the disjunctive location filters. At least one must
// be present.
type LocationQuery struct {
	City    string
	State   string
	Pincode string
}

// Empty reports whether no filter was supplied.
func (q LocationQuery) Empty() bool {
	return q.City == "" && q.State == "" && q.Pincode == ""
}
