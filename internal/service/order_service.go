package service

import (
	"time"

	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/pkg/errors"
)

// AdvanceOrder moves an order one step along the fulfilment flow and
// stamps the update time. Regressions, skipped steps and changes to a
// delivered order are refused.
func AdvanceOrder(order *domain.Order, next domain.OrderStatus, now time.Time) error {
	if !next.IsValid() {
		return &errors.ErrValidation{Message: "Unknown order status: " + string(next)}
	}
	if !order.Status.CanTransitionTo(next) {
		return &errors.ErrInvalidStateTransition{From: order.Status, To: next}
	}

	order.Status = next
	order.UpdatedAt = now
	return nil
}
