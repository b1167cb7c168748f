package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/pkg/errors"
)

func TestAdvanceOrder(t *testing.T) {
	placed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := placed.Add(48 * time.Hour)

	t.Run("AdvancesOneStep", func(t *testing.T) {
		order := domain.Order{Status: domain.OrderStatusPending, CreatedAt: placed, UpdatedAt: placed}

		require.NoError(t, AdvanceOrder(&order, domain.OrderStatusProcessing, later))

		assert.Equal(t, domain.OrderStatusProcessing, order.Status)
		assert.Equal(t, later, order.UpdatedAt)
		assert.Equal(t, placed, order.CreatedAt)
	})

	t.Run("RefusesSkippedStep", func(t *testing.T) {
		order := domain.Order{Status: domain.OrderStatusPending, UpdatedAt: placed}

		err := AdvanceOrder(&order, domain.OrderStatusShipped, later)

		var transition *errors.ErrInvalidStateTransition
		require.ErrorAs(t, err, &transition)
		assert.Equal(t, domain.OrderStatusPending, transition.From)
		assert.Equal(t, domain.OrderStatusShipped, transition.To)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.Equal(t, placed, order.UpdatedAt)
	})

	t.Run("RefusesRegression", func(t *testing.T) {
		order := domain.Order{Status: domain.OrderStatusShipped, UpdatedAt: placed}

		err := AdvanceOrder(&order, domain.OrderStatusProcessing, later)

		var transition *errors.ErrInvalidStateTransition
		require.ErrorAs(t, err, &transition)
		assert.Equal(t, domain.OrderStatusShipped, order.Status)
	})

	t.Run("DeliveredIsTerminal", func(t *testing.T) {
		order := domain.Order{Status: domain.OrderStatusDelivered, UpdatedAt: placed}

		err := AdvanceOrder(&order, domain.OrderStatusPending, later)

		var transition *errors.ErrInvalidStateTransition
		require.ErrorAs(t, err, &transition)
		assert.Equal(t, domain.OrderStatusDelivered, order.Status)
	})

	t.Run("RefusesUnknownStatus", func(t *testing.T) {
		order := domain.Order{Status: domain.OrderStatusPending, UpdatedAt: placed}

		err := AdvanceOrder(&order, domain.OrderStatus("misplaced"), later)

		var validation *errors.ErrValidation
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
	})
}
