package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sweettreats/storefront/internal/core/domain"
)

// DefaultChannel is the pub/sub channel order confirmations go to.
const DefaultChannel = "bakery:orders"

// OrderPublisher announces paid orders on a Redis pub/sub channel. Nothing is
// stored; subscribers that are not listening miss the message.
type OrderPublisher struct {
	client  *redis.Client
	channel string
}

// NewOrderPublisher creates an OrderPublisher. An empty channel means
// DefaultChannel.
func NewOrderPublisher(client *redis.Client, channel string) *OrderPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &OrderPublisher{client: client, channel: channel}
}

type orderLine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type orderCompletedMessage struct {
	Type      string      `json:"type"`
	Customer  string      `json:"customer"`
	Lines     []orderLine `json:"lines"`
	Total     string      `json:"total"`
	CardLast4 string      `json:"card_last4"`
	PaidAt    time.Time   `json:"paid_at"`
}

func newOrderCompletedMessage(r domain.Receipt) orderCompletedMessage {
	lines := make([]orderLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = orderLine{ID: l.ID, Name: l.Name, Price: l.Price.StringFixed(2)}
	}
	return orderCompletedMessage{
		Type:      "order_completed",
		Customer:  r.Customer,
		Lines:     lines,
		Total:     r.Total.StringFixed(2),
		CardLast4: r.CardLast4,
		PaidAt:    r.PaidAt.UTC(),
	}
}

// OrderCompleted publishes receipt as JSON.
func (p *OrderPublisher) OrderCompleted(ctx context.Context, receipt domain.Receipt) error {
	payload, err := json.Marshal(newOrderCompletedMessage(receipt))
	if err != nil {
		return fmt.Errorf("encode order message: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, string(payload)).Err(); err != nil {
		return fmt.Errorf("publish order message: %w", err)
	}
	return nil
}
