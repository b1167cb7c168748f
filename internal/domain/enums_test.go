package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportshub/storefront/internal/domain"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to domain.OrderStatus
		allowed  bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusProcessing, true},
		{domain.OrderStatusProcessing, domain.OrderStatusShipped, true},
		{domain.OrderStatusShipped, domain.OrderStatusDelivered, true},
		// Never regress.
		{domain.OrderStatusProcessing, domain.OrderStatusPending, false},
		{domain.OrderStatusDelivered, domain.OrderStatusShipped, false},
		// Never skip.
		{domain.OrderStatusPending, domain.OrderStatusShipped, false},
		{domain.OrderStatusPending, domain.OrderStatusDelivered, false},
		// Terminal.
		{domain.OrderStatusDelivered, domain.OrderStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, domain.OrderStatusPending.IsValid())
	assert.False(t, domain.OrderStatus("cancelled").IsValid())

	assert.True(t, domain.ProductTypeShoes.IsValid())
	assert.False(t, domain.ProductType("gadget").IsValid())

	assert.True(t, domain.CategoryTypeOlympic.IsValid())
	assert.False(t, domain.CategoryType("aquatic").IsValid())
}
