package entities

import "time"

// DeliveryStatus values mirror the courier service's own vocabulary, including its casing.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusAccepted  DeliveryStatus = "Accepted"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusDeclined  DeliveryStatus = "declined"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusAccepted, DeliveryStatusDelivered, DeliveryStatusDeclined:
		return true
	}
	return false
}

func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusDeclined
}

type Delivery struct {
	DeliveryID string
	OrderID    string
	CourierID  string
	Status     DeliveryStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Courier struct {
	ID        string
	Available bool
	Location  *Location
}
