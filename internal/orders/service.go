package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marketconnect/backend/pkg/db/models"
	"github.com/marketconnect/backend/pkg/enums"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]models.Order, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]models.Order, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// Service exposes order operations.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*CreatedOrderDTO, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]models.Order, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (*StatusUpdateInput, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo orderRepository
}

// NewService builds an order service with the provided repository.
func NewService(repo orderRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*CreatedOrderDTO, error) {
	items := normalizeJSONText(input.Items)
	if input.ID == "" || input.VendorID == 0 || input.TotalAmount.IsZero() || items == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			"Missing required fields: id, vendor_id, total_amount, items").
			WithRequired(requiredFields)
	}

	orderType, status, paymentStatus, paymentMethod, err := resolveCreateEnums(input)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:              input.ID,
		VendorID:        input.VendorID,
		SupplierID:      input.SupplierID,
		OrderType:       orderType,
		Items:           items,
		Subtotal:        input.Subtotal,
		Tax:             input.Tax,
		DeliveryCharge:  input.DeliveryCharge,
		GroupDiscount:   input.GroupDiscount,
		TotalAmount:     input.TotalAmount,
		Status:          status,
		PaymentStatus:   paymentStatus,
		PaymentMethod:   paymentMethod,
		PaymentID:       input.PaymentID,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryDate:    input.DeliveryDate,
		Notes:           input.Notes,
		CustomerDetails: normalizeJSONText(input.CustomerDetails),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}

	return &CreatedOrderDTO{
		ID:            order.ID,
		VendorID:      order.VendorID,
		SupplierID:    order.SupplierID,
		OrderType:     order.OrderType,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *service) ListByVendor(ctx context.Context, vendorID int64) ([]models.Order, error) {
	orders, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendor orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *service) ListBySupplier(ctx context.Context, supplierID int64) ([]models.Order, error) {
	orders, err := s.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list supplier orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// UpdateStatus applies the supplied lifecycle fields. Only the fields present
// in the payload are written, plus updated_at. Illegal transitions are
// rejected before any write; repeating the current values skips the write.
func (s *service) UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (*StatusUpdateInput, error) {
	if input.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Status or payment_status is required")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	fields := map[string]any{}

	if input.Status != "" {
		next, err := enums.ParseOrderStatus(input.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid status")
		}
		if !order.Status.CanTransition(next) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("Cannot move order from %s to %s", order.Status, next))
		}
		if next != order.Status {
			fields["status"] = next
		}
	}

	if input.PaymentStatus != "" {
		next, err := enums.ParsePaymentStatus(input.PaymentStatus)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid payment_status")
		}
		if !order.PaymentStatus.CanTransition(next) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("Cannot move payment from %s to %s", order.PaymentStatus, next))
		}
		if next != order.PaymentStatus {
			fields["payment_status"] = next
		}
	}

	// repeating the current values leaves the row, and updated_at, untouched
	if len(fields) == 0 {
		return &input, nil
	}

	affected, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	return &input, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	return nil
}

func resolveCreateEnums(input CreateOrderInput) (enums.OrderType, enums.OrderStatus, enums.PaymentStatus, enums.PaymentMethod, error) {
	orderType := enums.OrderTypeIndividual
	if input.OrderType != "" {
		parsed, err := enums.ParseOrderType(input.OrderType)
		if err != nil {
			return "", "", "", "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid order_type")
		}
		orderType = parsed
	}

	status := enums.OrderStatusPending
	if input.Status != "" {
		parsed, err := enums.ParseOrderStatus(input.Status)
		if err != nil {
			return "", "", "", "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid status")
		}
		status = parsed
	}

	paymentStatus := enums.PaymentStatusPending
	if input.PaymentStatus != "" {
		parsed, err := enums.ParsePaymentStatus(input.PaymentStatus)
		if err != nil {
			return "", "", "", "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid payment_status")
		}
		paymentStatus = parsed
	}

	paymentMethod := enums.PaymentMethodOnline
	if input.PaymentMethod != "" {
		parsed, err := enums.ParsePaymentMethod(input.PaymentMethod)
		if err != nil {
			return "", "", "", "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid payment_method")
		}
		paymentMethod = parsed
	}

	return orderType, status, paymentStatus, paymentMethod, nil
}
