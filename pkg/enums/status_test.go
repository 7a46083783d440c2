package enums

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusAccepted, true},
		{OrderStatusPending, OrderStatusDeclined, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusAccepted, OrderStatusDelivered, true},
		{OrderStatusAccepted, OrderStatusCancelled, true},
		{OrderStatusAccepted, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusDeclined, OrderStatusAccepted, false},
		{OrderStatusPending, OrderStatusPending, true},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.allowed {
			t.Fatalf("%s -> %s: expected %v got %v", tt.from, tt.to, tt.allowed, got)
		}
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	tests := []struct {
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{PaymentStatusPending, PaymentStatusCompleted, true},
		{PaymentStatusPending, PaymentStatusFailed, true},
		{PaymentStatusPending, PaymentStatusRefunded, false},
		{PaymentStatusCompleted, PaymentStatusRefunded, true},
		{PaymentStatusCompleted, PaymentStatusPending, false},
		{PaymentStatusFailed, PaymentStatusCompleted, false},
		{PaymentStatusCompleted, PaymentStatusCompleted, true},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.allowed {
			t.Fatalf("%s -> %s: expected %v got %v", tt.from, tt.to, tt.allowed, got)
		}
	}
}

func TestGroupStatusTransitions(t *testing.T) {
	tests := []struct {
		from    GroupStatus
		to      GroupStatus
		allowed bool
	}{
		{GroupStatusPending, GroupStatusAccepted, true},
		{GroupStatusPending, GroupStatusDeclined, true},
		{GroupStatusPending, GroupStatusDelivered, false},
		{GroupStatusAccepted, GroupStatusDelivered, true},
		{GroupStatusDeclined, GroupStatusDelivered, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.allowed {
			t.Fatalf("%s -> %s: expected %v got %v", tt.from, tt.to, tt.allowed, got)
		}
	}
}

func TestParseRejectsUnknownValues(t *testing.T) {
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Fatal("expected error for unknown order status")
	}
	if _, err := ParsePaymentStatus("done"); err == nil {
		t.Fatal("expected error for unknown payment status")
	}
	if _, err := ParseGroupStatus("expired"); err == nil {
		t.Fatal("expected error for unknown group status")
	}
	if _, err := ParseOrderType("bulk"); err == nil {
		t.Fatal("expected error for unknown order type")
	}
	if _, err := ParsePaymentMethod("upi-x"); err == nil {
		t.Fatal("expected error for unknown payment method")
	}
}
