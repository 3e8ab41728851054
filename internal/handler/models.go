package handler

import (
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/shopspring/decimal"
)

// Item is one menu position of an order
type Item struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"gt=0"`
}

// Location is where the order should be delivered
type Location struct {
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  float64   `json:"accuracy" validate:"gte=0"`
	Timestamp time.Time `json:"timestamp"`
}

// PlaceOrderRequest is the body of POST /orders
type PlaceOrderRequest struct {
	RestaurantID     string    `json:"restaurant_id" validate:"required"`
	Items            []Item    `json:"items" validate:"required,min=1,dive"`
	TotalAmount      float64   `json:"total_amount" validate:"gt=0"`
	DeliveryLocation *Location `json:"delivery_location,omitempty" validate:"omitempty"`
}

// UpdateOrderRequest is the body of PATCH /orders/{order_id}. Omitted fields are left unchanged.
type UpdateOrderRequest struct {
	Items            []Item    `json:"items,omitempty" validate:"omitempty,dive"`
	TotalAmount      *float64  `json:"total_amount,omitempty" validate:"omitempty,gt=0"`
	DeliveryLocation *Location `json:"delivery_location,omitempty" validate:"omitempty"`
}

// UpdateStatusRequest is the body of PATCH /orders/{order_id}/status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required" example:"Preparing"`
}

// PaymentRequest is the body of PATCH /orders/{order_id}/payment
type PaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=Paid Unpaid"`
	Reference     string `json:"reference,omitempty" validate:"omitempty,max=128"`
}

// PaymentEvent is a payment processor message consumed from kafka
type PaymentEvent struct {
	OrderID       string `json:"order_id" validate:"required,uuid"`
	PaymentStatus string `json:"payment_status" validate:"required,oneof=Paid Unpaid"`
	Reference     string `json:"reference,omitempty" validate:"omitempty,max=128"`
}

// ClaimRequest is the body of POST /deliveries
type ClaimRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

// TransitionRequest is the body of PATCH /deliveries/{delivery_id}
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=Accepted delivered declined"`
}

// RevenueParams are the query parameters of the revenue endpoint
type RevenueParams struct {
	From        string `json:"from" validate:"required,datetime=2006-01-02"`
	To          string `json:"to" validate:"required,datetime=2006-01-02"`
	Granularity string `json:"granularity" validate:"omitempty,oneof=day month"`
}

// Order is an order as returned by the API
type Order struct {
	OrderID            string     `json:"order_id"`
	CustomerID         string     `json:"customer_id"`
	RestaurantID       string     `json:"restaurant_id"`
	Items              []Item     `json:"items"`
	TotalAmount        float64    `json:"total_amount"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	PaymentReference   string     `json:"payment_reference,omitempty"`
	DeliveryLocation   *Location  `json:"delivery_location,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at,omitempty"`
}

// Delivery is a courier assignment as returned by the API
type Delivery struct {
	DeliveryID string    `json:"delivery_id"`
	OrderID    string    `json:"order_id"`
	CourierID  string    `json:"courier_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RevenueBucket is the income of one day or month
type RevenueBucket struct {
	Date   string  `json:"date" example:"2024-01-31"`
	Income float64 `json:"income" example:"125.5"`
}

// InvalidItemsResponse lists the requested menu items the restaurant does not offer
type InvalidItemsResponse struct {
	Message      string   `json:"message"`
	InvalidItems []string `json:"invalid_items"`
}

// PartialFailureResponse tells the caller which steps were applied, so the request can be re-driven
type PartialFailureResponse struct {
	Message      string   `json:"message"`
	Operation    string   `json:"operation"`
	FailedStep   string   `json:"failed_step"`
	AppliedSteps []string `json:"applied_steps"`
}

func ItemsJSONToEntity(items []Item) []entities.Item {
	if items == nil {
		return nil
	}
	result := make([]entities.Item, 0, len(items))
	for _, it := range items {
		result = append(result, entities.Item{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}
	return result
}

func ItemsEntityToJSON(items []entities.Item) []Item {
	result := make([]Item, 0, len(items))
	for _, it := range items {
		result = append(result, Item{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}
	return result
}

func LocationJSONToEntity(l *Location) *entities.Location {
	if l == nil {
		return nil
	}
	return &entities.Location{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Accuracy:  l.Accuracy,
		Timestamp: l.Timestamp.UTC(),
	}
}

func LocationEntityToJSON(l *entities.Location) *Location {
	if l == nil {
		return nil
	}
	return &Location{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Accuracy:  l.Accuracy,
		Timestamp: l.Timestamp,
	}
}

func (r PlaceOrderRequest) ToEntity() entities.PlaceOrderInput {
	return entities.PlaceOrderInput{
		RestaurantID:     r.RestaurantID,
		Items:            ItemsJSONToEntity(r.Items),
		TotalAmount:      decimal.NewFromFloat(r.TotalAmount),
		DeliveryLocation: LocationJSONToEntity(r.DeliveryLocation),
	}
}

func (r UpdateOrderRequest) ToEntity() entities.OrderUpdate {
	upd := entities.OrderUpdate{
		Items:            ItemsJSONToEntity(r.Items),
		DeliveryLocation: LocationJSONToEntity(r.DeliveryLocation),
	}
	if r.TotalAmount != nil {
		amount := decimal.NewFromFloat(*r.TotalAmount)
		upd.TotalAmount = &amount
	}
	return upd
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		OrderID:            o.OrderID,
		CustomerID:         o.CustomerID,
		RestaurantID:       o.RestaurantID,
		Items:              ItemsEntityToJSON(o.Items),
		TotalAmount:        o.TotalAmount.InexactFloat64(),
		Status:             string(o.Status),
		PaymentStatus:      string(o.PaymentStatus),
		PaymentReference:   o.PaymentReference,
		DeliveryLocation:   LocationEntityToJSON(o.DeliveryLocation),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		PaymentConfirmedAt: o.PaymentConfirmedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func DeliveryEntityToJSON(d entities.Delivery) Delivery {
	return Delivery{
		DeliveryID: d.DeliveryID,
		OrderID:    d.OrderID,
		CourierID:  d.CourierID,
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func RevenueEntityToJSON(buckets []entities.RevenueBucket) []RevenueBucket {
	result := make([]RevenueBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, RevenueBucket{Date: b.Date, Income: b.Income.InexactFloat64()})
	}
	return result
}
