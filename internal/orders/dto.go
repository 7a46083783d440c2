package orders

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/marketconnect/backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// CreateOrderInput is the checkout payload. The id is minted by the caller;
// items and customer_details are accepted either pre-serialized or as
// structured JSON and stored as opaque text.
type CreateOrderInput struct {
	ID              string          `json:"id"`
	VendorID        int64           `json:"vendor_id"`
	SupplierID      *int64          `json:"supplier_id"`
	OrderType       string          `json:"order_type"`
	Items           json.RawMessage `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	DeliveryCharge  decimal.Decimal `json:"delivery_charge"`
	GroupDiscount   decimal.Decimal `json:"group_discount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentID       string          `json:"payment_id"`
	DeliveryAddress string          `json:"delivery_address"`
	DeliveryDate    string          `json:"delivery_date"`
	Notes           string          `json:"notes"`
	CustomerDetails json.RawMessage `json:"customer_details"`
}

var requiredFields = []string{"id", "vendor_id", "total_amount", "items"}

// CreatedOrderDTO is the constructed creation summary. It is assembled from
// the submitted payload, not reloaded from the store.
type CreatedOrderDTO struct {
	ID            string              `json:"id"`
	VendorID      int64               `json:"vendor_id"`
	SupplierID    *int64              `json:"supplier_id"`
	OrderType     enums.OrderType     `json:"order_type"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Status        enums.OrderStatus   `json:"status"`
	PaymentStatus enums.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time           `json:"created_at"`
}

// StatusUpdateInput carries the mutable lifecycle fields. Either may be
// omitted but not both.
type StatusUpdateInput struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// Empty reports whether neither field was supplied.
func (in StatusUpdateInput) Empty() bool {
	return in.Status == "" && in.PaymentStatus == ""
}

// normalizeJSONText flattens a raw JSON value into the stored text form.
// A JSON string is stored verbatim (the caller already serialized it);
// any other value keeps its compact JSON encoding.
func normalizeJSONText(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	if strings.HasPrefix(trimmed, `"`) {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err == nil {
			return unquoted
		}
	}
	return trimmed
}
