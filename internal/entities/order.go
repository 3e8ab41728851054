package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusConfirmed      OrderStatus = "Confirmed"
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}

type Item struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// Location is a point-in-time snapshot of where the order should be delivered.
type Location struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
	Timestamp time.Time
}

type Order struct {
	OrderID      string
	CustomerID   string
	RestaurantID string

	Items       []Item
	TotalAmount decimal.Decimal

	Status           OrderStatus
	PaymentStatus    PaymentStatus
	PaymentReference string

	// nil when the customer did not share a location at placement
	DeliveryLocation *Location

	CreatedAt          time.Time
	UpdatedAt          time.Time
	PaymentConfirmedAt *time.Time
}

// Modifiable reports whether the customer may still edit or delete the order.
func (o Order) Modifiable() bool {
	return o.Status == OrderStatusPending
}

// Assignable reports whether a courier may claim the order.
func (o Order) Assignable() bool {
	if o.PaymentStatus != PaymentStatusPaid {
		return false
	}
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// MenuItemIDs lists the menu item of every line, in order, duplicates included.
func MenuItemIDs(items []Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.MenuItemID)
	}
	return ids
}

type PlaceOrderInput struct {
	RestaurantID     string
	Items            []Item
	TotalAmount      decimal.Decimal
	DeliveryLocation *Location
}

// OrderUpdate carries the customer-editable fields. nil means "leave as is".
type OrderUpdate struct {
	Items            []Item
	TotalAmount      *decimal.Decimal
	DeliveryLocation *Location
}

func (u OrderUpdate) Empty() bool {
	return u.Items == nil && u.TotalAmount == nil && u.DeliveryLocation == nil
}

type PaymentUpdate struct {
	Status    PaymentStatus
	Reference string

	// stamped by the lifecycle engine, never taken from the caller
	ConfirmedAt *time.Time
}
