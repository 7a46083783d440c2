package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/marketconnect/backend/pkg/config"
	"github.com/marketconnect/backend/pkg/db/models"
	"github.com/marketconnect/backend/pkg/enums"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository interface {
	FindByID(ctx context.Context, id string) (*models.Order, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)
}

// VerifyInput is the gateway callback payload; signature is the hex HMAC the
// gateway computed over "order_id|payment_id".
type VerifyInput struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

var requiredFields = []string{"order_id", "payment_id", "signature"}

// VerificationDTO reports the outcome of a successful verification.
type VerificationDTO struct {
	OrderID       string              `json:"order_id"`
	PaymentID     string              `json:"payment_id"`
	PaymentStatus enums.PaymentStatus `json:"payment_status"`
}

// Service validates payment-gateway responses and records the outcome on the
// order.
type Service interface {
	Verify(ctx context.Context, input VerifyInput) (*VerificationDTO, error)
}

type service struct {
	orders orderRepository
	cfg    config.PaymentsConfig
}

// NewService builds a payment verification service.
func NewService(orders orderRepository, cfg config.PaymentsConfig) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if cfg.GatewaySecret == "" {
		return nil, fmt.Errorf("payment gateway secret required")
	}
	return &service{orders: orders, cfg: cfg}, nil
}

func (s *service) Verify(ctx context.Context, input VerifyInput) (*VerificationDTO, error) {
	if strings.TrimSpace(input.OrderID) == "" ||
		strings.TrimSpace(input.PaymentID) == "" ||
		strings.TrimSpace(input.Signature) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields").
			WithRequired(requiredFields)
	}

	order, err := s.orders.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if !validSignature(input.OrderID, input.PaymentID, input.Signature, s.cfg.GatewaySecret) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid payment signature")
	}

	if !order.PaymentStatus.CanTransition(enums.PaymentStatusCompleted) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("Cannot move payment from %s to completed", order.PaymentStatus))
	}

	fields := map[string]any{
		"payment_status": enums.PaymentStatusCompleted,
		"payment_id":     input.PaymentID,
	}
	affected, err := s.orders.UpdateFields(ctx, input.OrderID, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record payment")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}

	return &VerificationDTO{
		OrderID:       input.OrderID,
		PaymentID:     input.PaymentID,
		PaymentStatus: enums.PaymentStatusCompleted,
	}, nil
}

func validSignature(orderID, paymentID, signature, secret string) bool {
	return hmac.Equal([]byte(Sign(orderID, paymentID, secret)), []byte(signature))
}

// Sign computes the gateway signature for an order/payment pair. Exposed for
// tests and local tooling.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
