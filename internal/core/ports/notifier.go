package ports

import (
	"context"

	"github.com/sweettreats/storefront/internal/core/domain"
)

// OrderNotifier broadcasts a payment confirmation to UI collaborators.
// Delivery is best effort.
type OrderNotifier interface {
	OrderCompleted(ctx context.Context, receipt domain.Receipt) error
}
