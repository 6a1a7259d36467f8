package handlers

import (
	"testing"

	"backend/internal/models"
)

func TestDeriveOrderStatusPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{"empty set is pending", []string{}, models.OrderStatusPending},
		{"all rejected", []string{"REJECTED", "REJECTED"}, models.OrderStatusRejected},
		{"single rejected", []string{"REJECTED"}, models.OrderStatusRejected},
		{"delivered beats pending sibling", []string{"DELIVERED", "PENDING"}, models.OrderStatusDelivered},
		{"delivered beats rejected sibling", []string{"DELIVERED", "REJECTED"}, models.OrderStatusDelivered},
		{"shipped beats processing", []string{"SHIPPED", "PROCESSING"}, models.OrderStatusShipped},
		{"ready counts as shipped", []string{"READY", "PENDING"}, models.OrderStatusShipped},
		{"approved counts as processing", []string{"APPROVED", "PENDING"}, models.OrderStatusProcessing},
		{"processing with rejected sibling", []string{"PROCESSING", "REJECTED"}, models.OrderStatusProcessing},
		{"all pending", []string{"PENDING", "PENDING"}, models.OrderStatusPending},
		{"complaint statuses fall through to pending", []string{"COMPLAINT", "COMPLAINT_REVIEW"}, models.OrderStatusPending},
		{"lower case input is normalized", []string{"delivered", "pending"}, models.OrderStatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveOrderStatus(tt.statuses); got != tt.want {
				t.Fatalf("derive(%v) = %q, want %q", tt.statuses, got, tt.want)
			}
		})
	}
}

func TestDeriveOrderStatusIsDeterministic(t *testing.T) {
	statuses := []string{"SHIPPED", "PENDING", "REJECTED", "PROCESSING"}
	first := deriveOrderStatus(statuses)
	for i := 0; i < 50; i++ {
		if got := deriveOrderStatus(statuses); got != first {
			t.Fatalf("derivation not deterministic: got %q then %q", first, got)
		}
	}
}
