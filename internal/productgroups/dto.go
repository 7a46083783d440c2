package productgroups

import (
	"time"

	"github.com/marketconnect/backend/pkg/db/models"
)

// CreateGroupInput is the bulk-buy campaign creation payload. The pricing
// fields are independent display text supplied by the creator; nothing is
// recomputed from them.
type CreateGroupInput struct {
	Product            string `json:"product"`
	Quantity           string `json:"quantity"`
	Price              string `json:"price"`
	ActualRate         string `json:"actual_rate"`
	FinalRate          string `json:"final_rate"`
	DiscountPercentage string `json:"discount_percentage"`
	Location           string `json:"location"`
	Deadline           string `json:"deadline"`
	CreatedBy          int64  `json:"created_by"`
	Latitude           string `json:"latitude"`
	Longitude          string `json:"longitude"`
}

var requiredFields = []string{"product", "quantity", "location", "deadline", "created_by"}

// ToModel maps the payload onto a product group row.
func (in CreateGroupInput) ToModel(deadline time.Time) *models.ProductGroup {
	return &models.ProductGroup{
		Product:            in.Product,
		Quantity:           in.Quantity,
		Price:              in.Price,
		ActualRate:         in.ActualRate,
		FinalRate:          in.FinalRate,
		DiscountPercentage: in.DiscountPercentage,
		Location:           in.Location,
		Deadline:           deadline,
		CreatedBy:          in.CreatedBy,
		Latitude:           in.Latitude,
		Longitude:          in.Longitude,
	}
}
