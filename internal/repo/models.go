package repo

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"order_id", "customer_id", "restaurant_id", "items", "total_amount",
	"status", "payment_status", "payment_reference",
	"delivery_latitude", "delivery_longitude", "delivery_accuracy", "delivery_located_at",
	"created_at", "updated_at", "payment_confirmed_at",
}

type Order struct {
	OrderID      string `db:"order_id"`
	CustomerID   string `db:"customer_id"`
	RestaurantID string `db:"restaurant_id"`

	Items       itemList        `db:"items"`
	TotalAmount decimal.Decimal `db:"total_amount"`

	Status           string         `db:"status"`
	PaymentStatus    string         `db:"payment_status"`
	PaymentReference sql.NullString `db:"payment_reference"`

	DeliveryLatitude  sql.NullFloat64 `db:"delivery_latitude"`
	DeliveryLongitude sql.NullFloat64 `db:"delivery_longitude"`
	DeliveryAccuracy  sql.NullFloat64 `db:"delivery_accuracy"`
	DeliveryLocatedAt sql.NullTime    `db:"delivery_located_at"`

	CreatedAt          time.Time    `db:"created_at"`
	UpdatedAt          time.Time    `db:"updated_at"`
	PaymentConfirmedAt sql.NullTime `db:"payment_confirmed_at"`
}

// itemList is stored as a jsonb array.
type itemList []entities.Item

func (l itemList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]entities.Item(l))
}

func (l *itemList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for items: %T", src)
	}
	return json.Unmarshal(data, (*[]entities.Item)(l))
}

func OrderToEntity(o Order) entities.Order {
	order := entities.Order{
		OrderID:          o.OrderID,
		CustomerID:       o.CustomerID,
		RestaurantID:     o.RestaurantID,
		Items:            []entities.Item(o.Items),
		TotalAmount:      o.TotalAmount,
		Status:           entities.OrderStatus(o.Status),
		PaymentStatus:    entities.PaymentStatus(o.PaymentStatus),
		PaymentReference: nullStringToString(o.PaymentReference),
		CreatedAt:        o.CreatedAt.UTC(),
		UpdatedAt:        o.UpdatedAt.UTC(),
	}

	if o.DeliveryLatitude.Valid && o.DeliveryLongitude.Valid {
		order.DeliveryLocation = &entities.Location{
			Latitude:  o.DeliveryLatitude.Float64,
			Longitude: o.DeliveryLongitude.Float64,
			Accuracy:  o.DeliveryAccuracy.Float64,
			Timestamp: o.DeliveryLocatedAt.Time.UTC(),
		}
	}

	if o.PaymentConfirmedAt.Valid {
		t := o.PaymentConfirmedAt.Time.UTC()
		order.PaymentConfirmedAt = &t
	}

	return order
}

func OrdersToEntities(orders []Order) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o))
	}
	return result
}

// locationColumns returns values for the four delivery_* columns.
func locationColumns(l *entities.Location) (lat, lon, acc sql.NullFloat64, at sql.NullTime) {
	if l == nil {
		return
	}
	lat = sql.NullFloat64{Float64: l.Latitude, Valid: true}
	lon = sql.NullFloat64{Float64: l.Longitude, Valid: true}
	acc = sql.NullFloat64{Float64: l.Accuracy, Valid: true}
	at = nullTime(l.Timestamp)
	return
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return nullTime(*t)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
