package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenu_Missing(t *testing.T) {
	menu := Menu{Categories: []MenuCategory{
		{Name: "Soups", Items: []MenuItem{{ID: "m1"}, {ID: "m2"}}},
		{Name: "Drinks", Items: []MenuItem{{ID: "m3"}}},
	}}

	testCases := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "all known", ids: []string{"m1", "m3"}, want: nil},
		{name: "keeps order", ids: []string{"x2", "m1", "x1"}, want: []string{"x2", "x1"}},
		{name: "deduplicates", ids: []string{"x", "x", "m2", "x"}, want: []string{"x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, menu.Missing(tc.ids))
		})
	}

	assert.Equal(t, 3, menu.Len())
	assert.Equal(t, []string{"m1"}, Menu{}.Missing([]string{"m1"}))
}

func TestOrder_Assignable(t *testing.T) {
	testCases := []struct {
		status  OrderStatus
		payment PaymentStatus
		want    bool
	}{
		{OrderStatusPending, PaymentStatusPaid, true},
		{OrderStatusConfirmed, PaymentStatusPaid, true},
		{OrderStatusPreparing, PaymentStatusPaid, false},
		{OrderStatusOutForDelivery, PaymentStatusPaid, false},
		{OrderStatusDelivered, PaymentStatusPaid, false},
		{OrderStatusPending, PaymentStatusUnpaid, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s/%s", tc.status, tc.payment), func(t *testing.T) {
			o := Order{Status: tc.status, PaymentStatus: tc.payment}
			assert.Equal(t, tc.want, o.Assignable())
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, OrderStatus("Out for Delivery").Valid())
	assert.False(t, OrderStatus("out for delivery").Valid())
	assert.True(t, DeliveryStatus("Accepted").Valid())
	assert.False(t, DeliveryStatus("accepted").Valid())
	assert.True(t, DeliveryStatusDeclined.Terminal())
	assert.False(t, DeliveryStatusAccepted.Terminal())
	assert.False(t, PaymentStatus("Refunded").Valid())
	assert.False(t, Role("admin").Valid())
}

func TestErrorKinds(t *testing.T) {
	t.Run("specific errors match their kind", func(t *testing.T) {
		assert.ErrorIs(t, ErrOrderNotFound, ErrNotFound)
		assert.ErrorIs(t, ErrMenuUnavailable, ErrCatalogUnavailable)
		assert.ErrorIs(t, ErrCourierBusy, ErrNotModifiable)
		assert.ErrorIs(t, Validation("bad %s", "thing"), ErrValidation)
		assert.NotErrorIs(t, ErrMenuEmpty, ErrValidation)
	})

	t.Run("invalid items is a validation error", func(t *testing.T) {
		var err error = fmt.Errorf("place order: %w", &InvalidMenuItemsError{IDs: []string{"a", "b"}})

		var invalid *InvalidMenuItemsError
		assert.True(t, errors.As(err, &invalid))
		assert.Equal(t, []string{"a", "b"}, invalid.IDs)
		assert.ErrorIs(t, err, ErrValidation)
		assert.EqualError(t, invalid, "invalid menu items: a, b")
	})

	t.Run("partial failure unwraps to the step error", func(t *testing.T) {
		err := &PartialFailureError{
			Operation:  "claim",
			FailedStep: "set_courier_unavailable",
			Applied:    []string{"create_delivery"},
			Err:        ErrCourierUnavailable,
		}

		assert.ErrorIs(t, err, ErrCourierUnavailable)
		assert.Contains(t, err.Error(), "set_courier_unavailable")
		assert.Contains(t, err.Error(), "create_delivery")
	})
}

func TestGranularity(t *testing.T) {
	assert.Equal(t, "2006-01-02", GranularityDay.Layout())
	assert.Equal(t, "2006-01", GranularityMonth.Layout())
	assert.False(t, Granularity("week").Valid())
}

func TestMenuItemIDs(t *testing.T) {
	items := []Item{{MenuItemID: "m2", Quantity: 1}, {MenuItemID: "m1", Quantity: 3}, {MenuItemID: "m2", Quantity: 2}}

	assert.Equal(t, []string{"m2", "m1", "m2"}, MenuItemIDs(items))
	assert.Empty(t, MenuItemIDs(nil))
}
