package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"confirmed", OrderStatusConfirmed, "confirmed"},
		{"processing", OrderStatusProcessing, "processing"},
		{"shipped", OrderStatusShipped, "shipped"},
		{"delivered", OrderStatusDelivered, "delivered"},
		{"cancelled", OrderStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestPaymentStatusValues(t *testing.T) {
	cases := []struct {
		status PaymentStatus
		value  string
	}{
		{PaymentStatusInitiated, "initiated"},
		{PaymentStatusProcessing, "processing"},
		{PaymentStatusPending, "pending"},
		{PaymentStatusCompleted, "completed"},
		{PaymentStatusFailed, "failed"},
	}

	for _, tc := range cases {
		if string(tc.status) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.status)
		}
	}
}

func TestPaymentMethodValues(t *testing.T) {
	if string(PaymentMethodUPI) != "upi" || string(PaymentMethodCard) != "card" {
		t.Fatalf("unexpected payment method values: %s %s", PaymentMethodUPI, PaymentMethodCard)
	}
}

func TestNotificationTypeValues(t *testing.T) {
	cases := []struct {
		kind  NotificationType
		value string
	}{
		{NotificationTypeOrder, "order"},
		{NotificationTypePromotion, "promotion"},
		{NotificationTypeReminder, "reminder"},
		{NotificationTypeSystem, "system"},
	}

	for _, tc := range cases {
		if string(tc.kind) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.kind)
		}
	}
}
