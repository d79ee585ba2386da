package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"

	"github.com/sweettreats/storefront/internal/core/domain"
)

func testReceipt() domain.Receipt {
	return domain.Receipt{
		Customer: "alice",
		Lines: []domain.CartLine{
			{ID: "1", Name: "Chocolate Cake", Price: decimal.NewFromInt(12)},
		},
		Total:     decimal.NewFromInt(12),
		CardLast4: "4111",
		PaidAt:    time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestOrderPublisher_OrderCompleted(t *testing.T) {
	db, mock := redismock.NewClientMock()
	pub := NewOrderPublisher(db, "")

	payload, err := json.Marshal(newOrderCompletedMessage(testReceipt()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	mock.ExpectPublish(DefaultChannel, string(payload)).SetVal(1)

	if err := pub.OrderCompleted(context.Background(), testReceipt()); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestOrderPublisher_PublishError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	pub := NewOrderPublisher(db, "orders")

	payload, _ := json.Marshal(newOrderCompletedMessage(testReceipt()))
	mock.ExpectPublish("orders", string(payload)).SetErr(errors.New("connection refused"))

	if err := pub.OrderCompleted(context.Background(), testReceipt()); err == nil {
		t.Errorf("expected publish error")
	}
}

func TestOrderCompletedMessage_Format(t *testing.T) {
	msg := newOrderCompletedMessage(testReceipt())
	if msg.Type != "order_completed" || msg.Total != "12.00" || msg.Lines[0].Price != "12.00" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestConnect_EmptyAddr(t *testing.T) {
	if _, err := Connect(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error for empty address")
	}
}
