package courier

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/config"
	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/tracing"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/utils"

	"go.opentelemetry.io/otel/attribute"
)

// Client talks to the courier service, which owns courier availability and delivery records.
// Every write is an absolute "set to X", so repeating a call is safe.
type Client struct {
	logger  *slog.Logger
	http    *http.Client
	baseURL string
}

func NewClient(logger *slog.Logger, cfg config.Courier) *Client {
	return &Client{
		logger: logger.With(slog.String("client", "courier")),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: tracing.Transport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (c *Client) GetCourier(ctx context.Context, courierID string) (entities.Courier, error) {
	ctx, span := tracing.Start(ctx, "courier.GetCourier", attribute.String("courier.id", courierID))

	var res Courier
	status, err := utils.DoJSON(ctx, c.http, http.MethodGet, c.url("couriers", courierID), nil, &res)
	err = classify(status, err, entities.ErrCourierNotFound)
	tracing.End(span, err)
	if err != nil {
		return entities.Courier{}, err
	}
	return res.toEntity(), nil
}

func (c *Client) SetAvailability(ctx context.Context, courierID string, available bool) error {
	ctx, span := tracing.Start(ctx, "courier.SetAvailability",
		attribute.String("courier.id", courierID),
		attribute.Bool("courier.available", available),
	)

	status, err := utils.DoJSON(ctx, c.http, http.MethodPut, c.url("couriers", courierID, "availability"),
		availabilityRequest{Available: available}, nil)
	err = classify(status, err, entities.ErrCourierNotFound)
	tracing.End(span, err)
	return err
}

func (c *Client) CreateDelivery(ctx context.Context, d entities.Delivery) (entities.Delivery, error) {
	ctx, span := tracing.Start(ctx, "courier.CreateDelivery",
		attribute.String("delivery.id", d.DeliveryID),
		attribute.String("order.id", d.OrderID),
	)

	var res Delivery
	status, err := utils.DoJSON(ctx, c.http, http.MethodPost, c.url("deliveries"), deliveryFromEntity(d), &res)
	err = classify(status, err, nil)
	tracing.End(span, err)
	if err != nil {
		return entities.Delivery{}, err
	}
	return res.toEntity(), nil
}

func (c *Client) GetDelivery(ctx context.Context, deliveryID string) (entities.Delivery, error) {
	ctx, span := tracing.Start(ctx, "courier.GetDelivery", attribute.String("delivery.id", deliveryID))

	var res Delivery
	status, err := utils.DoJSON(ctx, c.http, http.MethodGet, c.url("deliveries", deliveryID), nil, &res)
	err = classify(status, err, entities.ErrDeliveryNotFound)
	tracing.End(span, err)
	if err != nil {
		return entities.Delivery{}, err
	}
	return res.toEntity(), nil
}

func (c *Client) SetDeliveryStatus(ctx context.Context, deliveryID string, s entities.DeliveryStatus) error {
	ctx, span := tracing.Start(ctx, "courier.SetDeliveryStatus",
		attribute.String("delivery.id", deliveryID),
		attribute.String("delivery.status", string(s)),
	)

	status, err := utils.DoJSON(ctx, c.http, http.MethodPut, c.url("deliveries", deliveryID, "status"),
		statusRequest{Status: string(s)}, nil)
	err = classify(status, err, entities.ErrDeliveryNotFound)
	tracing.End(span, err)
	return err
}

// ActiveDelivery returns the non-terminal delivery of the order, or ErrDeliveryNotFound.
func (c *Client) ActiveDelivery(ctx context.Context, orderID string) (entities.Delivery, error) {
	ctx, span := tracing.Start(ctx, "courier.ActiveDelivery", attribute.String("order.id", orderID))

	q := url.Values{}
	q.Set("order_id", orderID)

	d, err := c.activeDelivery(ctx, q)
	tracing.End(span, err)
	return d, err
}

// CourierActiveDelivery returns the non-terminal delivery the courier holds, or ErrDeliveryNotFound.
func (c *Client) CourierActiveDelivery(ctx context.Context, courierID string) (entities.Delivery, error) {
	ctx, span := tracing.Start(ctx, "courier.CourierActiveDelivery", attribute.String("courier.id", courierID))

	q := url.Values{}
	q.Set("courier_id", courierID)

	d, err := c.activeDelivery(ctx, q)
	tracing.End(span, err)
	return d, err
}

func (c *Client) activeDelivery(ctx context.Context, q url.Values) (entities.Delivery, error) {
	q.Set("active", "true")

	var res []Delivery
	status, err := utils.DoJSON(ctx, c.http, http.MethodGet, c.url("deliveries")+"?"+q.Encode(), nil, &res)
	if err = classify(status, err, nil); err != nil {
		return entities.Delivery{}, err
	}

	for _, d := range res {
		if e := d.toEntity(); !e.Status.Terminal() {
			return e, nil
		}
	}
	return entities.Delivery{}, entities.ErrDeliveryNotFound
}

func (c *Client) url(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

func classify(status int, err error, notFound error) error {
	switch {
	case err != nil:
		return fmt.Errorf("%w: %w", entities.ErrCourierUnavailable, err)
	case status == http.StatusNotFound && notFound != nil:
		return notFound
	case status < 200 || status > 299:
		return fmt.Errorf("%w: unexpected status %d", entities.ErrCourierUnavailable, status)
	}
	return nil
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

type Courier struct {
	ID        string    `json:"id"`
	Available bool      `json:"available"`
	Location  *Location `json:"location,omitempty"`
}

func (c Courier) toEntity() entities.Courier {
	courier := entities.Courier{ID: c.ID, Available: c.Available}
	if c.Location != nil {
		courier.Location = &entities.Location{
			Latitude:  c.Location.Latitude,
			Longitude: c.Location.Longitude,
			Accuracy:  c.Location.Accuracy,
			Timestamp: c.Location.Timestamp,
		}
	}
	return courier
}

type Delivery struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	CourierID string    `json:"courier_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d Delivery) toEntity() entities.Delivery {
	return entities.Delivery{
		DeliveryID: d.ID,
		OrderID:    d.OrderID,
		CourierID:  d.CourierID,
		Status:     entities.DeliveryStatus(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func deliveryFromEntity(d entities.Delivery) Delivery {
	return Delivery{
		ID:        d.DeliveryID,
		OrderID:   d.OrderID,
		CourierID: d.CourierID,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
