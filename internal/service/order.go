package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/tracing"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/trm"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type OrderRepo interface {
	// Idempotent on order_id, so the insert may be retried.
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.Order, error)
	ListAssignable(ctx context.Context, limit int) ([]entities.Order, error)
	PaidOrders(ctx context.Context, restaurantID string, from, to time.Time) ([]entities.Order, error)

	UpdateDetails(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
	UpdatePayment(ctx context.Context, orderID string, p entities.PaymentUpdate) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type Catalog interface {
	GetRestaurant(ctx context.Context, restaurantID string) (entities.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) (entities.Menu, error)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   Catalog
	retry     utils.RetryConfig

	now   func() time.Time
	newID func() string
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, catalog Catalog) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		catalog:   catalog,
		retry:     utils.DefaultRetry,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, actor entities.Actor, in entities.PlaceOrderInput) (_ entities.Order, err error) {
	ctx, span := tracing.Start(ctx, "order.Place",
		attribute.String("actor.id", actor.ID),
		attribute.String("restaurant.id", in.RestaurantID),
	)
	defer func() { tracing.End(span, err) }()

	if !actor.Is(entities.RoleCustomer) {
		return entities.Order{}, entities.ErrForbidden
	}

	if err := validatePlacement(in); err != nil {
		placementRejections.WithLabelValues("validation").Inc()
		return entities.Order{}, err
	}

	if err := s.validateItems(ctx, in.RestaurantID, in.Items); err != nil {
		placementRejections.WithLabelValues(rejectionReason(err)).Inc()
		return entities.Order{}, err
	}

	now := s.now()
	order := entities.Order{
		OrderID:          s.newID(),
		CustomerID:       actor.ID,
		RestaurantID:     in.RestaurantID,
		Items:            in.Items,
		TotalAmount:      in.TotalAmount,
		Status:           entities.OrderStatusPending,
		PaymentStatus:    entities.PaymentStatusUnpaid,
		DeliveryLocation: in.DeliveryLocation,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := utils.Retry(ctx, s.retry, func() error {
		return s.repo.CreateOrder(ctx, order)
	}); err != nil {
		s.logger.Error("failed to save order", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	ordersPlaced.Inc()
	s.logger.Debug("order placed", slog.String("order_id", order.OrderID), slog.String("customer_id", actor.ID))
	return order, nil
}

// GetOrder returns the order if the actor is a party to it. Couriers may see paid orders.
func (s *orderService) GetOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	switch {
	case actor.Is(entities.RoleService),
		actor.Is(entities.RoleCustomer) && order.CustomerID == actor.ID,
		actor.Is(entities.RoleRestaurant) && order.RestaurantID == actor.ID,
		actor.Is(entities.RoleCourier) && order.PaymentStatus == entities.PaymentStatusPaid:
		return order, nil
	}
	return entities.Order{}, entities.ErrForbidden
}

func (s *orderService) ListCustomerOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if !actor.Is(entities.RoleCustomer) {
		return nil, entities.ErrForbidden
	}
	return s.repo.ListByCustomer(ctx, actor.ID)
}

func (s *orderService) ListRestaurantOrders(ctx context.Context, actor entities.Actor, restaurantID string) ([]entities.Order, error) {
	if err := restaurantAccess(actor, restaurantID); err != nil {
		return nil, err
	}
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// UpdateOrder changes the customer-editable fields of a Pending order. Changed items are checked
// against the catalog the same way a placement is.
func (s *orderService) UpdateOrder(ctx context.Context, actor entities.Actor, orderID string, upd entities.OrderUpdate) (_ entities.Order, err error) {
	ctx, span := tracing.Start(ctx, "order.Update", attribute.String("order.id", orderID))
	defer func() { tracing.End(span, err) }()

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := checkModifiable(actor, order); err != nil {
		return entities.Order{}, err
	}

	if err := validateUpdate(upd); err != nil {
		return entities.Order{}, err
	}
	if upd.Items != nil {
		if err := s.validateItems(ctx, order.RestaurantID, upd.Items); err != nil {
			return entities.Order{}, err
		}
	}

	var updated entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		// the order may have moved on while the catalog was consulted
		if err := checkModifiable(actor, locked); err != nil {
			return err
		}

		if upd.Items != nil {
			locked.Items = upd.Items
		}
		if upd.TotalAmount != nil {
			locked.TotalAmount = *upd.TotalAmount
		}
		if upd.DeliveryLocation != nil {
			locked.DeliveryLocation = upd.DeliveryLocation
		}

		updated, err = s.repo.UpdateDetails(ctx, locked)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order updated", slog.String("order_id", orderID))
	return updated, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, actor entities.Actor, orderID string) (err error) {
	ctx, span := tracing.Start(ctx, "order.Delete", attribute.String("order.id", orderID))
	defer func() { tracing.End(span, err) }()

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := checkModifiable(actor, order); err != nil {
			return err
		}
		return s.repo.DeleteOrder(ctx, orderID)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("order deleted", slog.String("order_id", orderID))
	return nil
}

// UpdateStatus sets any status value. No ordering between statuses is enforced.
func (s *orderService) UpdateStatus(ctx context.Context, actor entities.Actor, orderID string, status entities.OrderStatus) (_ entities.Order, err error) {
	ctx, span := tracing.Start(ctx, "order.UpdateStatus",
		attribute.String("order.id", orderID),
		attribute.String("order.status", string(status)),
	)
	defer func() { tracing.End(span, err) }()

	if !actor.Is(entities.RoleRestaurant) && !actor.Is(entities.RoleService) {
		return entities.Order{}, entities.ErrForbidden
	}
	if !status.Valid() {
		return entities.Order{}, entities.Validation("unknown order status %q", status)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := restaurantAccess(actor, order.RestaurantID); err != nil {
		return entities.Order{}, err
	}

	return s.repo.UpdateStatus(ctx, orderID, status)
}

// UpdatePayment records the payment processor's verdict. It never changes the order status,
// so confirming payment of an order that has already moved on does not revert it.
// Repeating a confirmation keeps the first confirmation time.
func (s *orderService) UpdatePayment(ctx context.Context, actor entities.Actor, orderID string, p entities.PaymentUpdate) (_ entities.Order, err error) {
	ctx, span := tracing.Start(ctx, "order.UpdatePayment",
		attribute.String("order.id", orderID),
		attribute.String("payment.status", string(p.Status)),
	)
	defer func() { tracing.End(span, err) }()

	if !actor.Is(entities.RoleService) {
		return entities.Order{}, entities.ErrForbidden
	}
	if !p.Status.Valid() {
		return entities.Order{}, entities.Validation("unknown payment status %q", p.Status)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.PaymentStatus == p.Status && (p.Reference == "" || p.Reference == order.PaymentReference) {
		return order, nil
	}

	p.ConfirmedAt = nil
	if p.Status == entities.PaymentStatusPaid {
		if order.PaymentStatus == entities.PaymentStatusPaid && order.PaymentConfirmedAt != nil {
			p.ConfirmedAt = order.PaymentConfirmedAt
		} else {
			now := s.now()
			p.ConfirmedAt = &now
		}
	}

	var updated entities.Order
	err = utils.Retry(ctx, s.retry, func() error {
		var err error
		updated, err = s.repo.UpdatePayment(ctx, orderID, p)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("payment status updated",
		slog.String("order_id", orderID),
		slog.String("payment_status", string(p.Status)),
	)
	return updated, nil
}

// validateItems checks the restaurant and every requested menu item against the catalog.
// An unreachable catalog while resolving the restaurant is reported as RestaurantNotFound
// that also matches ErrCatalogUnavailable.
func (s *orderService) validateItems(ctx context.Context, restaurantID string, items []entities.Item) error {
	if _, err := s.catalog.GetRestaurant(ctx, restaurantID); err != nil {
		if errors.Is(err, entities.ErrRestaurantNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", entities.ErrRestaurantNotFound, err)
	}

	menu, err := s.catalog.GetMenu(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrMenuUnavailable, err)
	}
	if menu.Len() == 0 {
		return entities.ErrMenuEmpty
	}

	if missing := menu.Missing(entities.MenuItemIDs(items)); len(missing) > 0 {
		return &entities.InvalidMenuItemsError{IDs: missing}
	}
	return nil
}

func validatePlacement(in entities.PlaceOrderInput) error {
	if in.RestaurantID == "" {
		return entities.Validation("restaurant_id is required")
	}
	if err := validateItemList(in.Items); err != nil {
		return err
	}
	if err := validateAmount(in.TotalAmount); err != nil {
		return err
	}
	return validateLocation(in.DeliveryLocation)
}

func validateUpdate(upd entities.OrderUpdate) error {
	if upd.Empty() {
		return entities.Validation("nothing to update")
	}
	if upd.Items != nil {
		if err := validateItemList(upd.Items); err != nil {
			return err
		}
	}
	if upd.TotalAmount != nil {
		if err := validateAmount(*upd.TotalAmount); err != nil {
			return err
		}
	}
	return validateLocation(upd.DeliveryLocation)
}

// maxTotalAmount is the first amount the orders.total_amount column cannot hold.
var maxTotalAmount = decimal.New(1, 10)

// validateAmount accepts what the store keeps exactly: a positive amount in whole cents.
func validateAmount(d decimal.Decimal) error {
	if !d.IsPositive() {
		return entities.Validation("total_amount must be greater than zero")
	}
	if !d.Equal(d.Truncate(2)) {
		return entities.Validation("total_amount must have at most 2 decimal places")
	}
	if d.GreaterThanOrEqual(maxTotalAmount) {
		return entities.Validation("total_amount must be less than %s", maxTotalAmount)
	}
	return nil
}

func validateItemList(items []entities.Item) error {
	if len(items) == 0 {
		return entities.Validation("items must not be empty")
	}
	for i, it := range items {
		if it.MenuItemID == "" {
			return entities.Validation("items[%d].menu_item_id is required", i)
		}
		if it.Quantity <= 0 {
			return entities.Validation("items[%d].quantity must be greater than zero", i)
		}
	}
	return nil
}

func validateLocation(l *entities.Location) error {
	if l == nil {
		return nil
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return entities.Validation("latitude out of range")
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return entities.Validation("longitude out of range")
	}
	if l.Accuracy < 0 {
		return entities.Validation("accuracy must not be negative")
	}
	return nil
}

// checkModifiable reports NotModifiable before ownership, so a non-Pending order is refused
// the same way for every caller.
func checkModifiable(actor entities.Actor, order entities.Order) error {
	if !order.Modifiable() {
		return entities.ErrOrderNotModifiable
	}
	if !actor.Is(entities.RoleCustomer) || order.CustomerID != actor.ID {
		return entities.ErrForbidden
	}
	return nil
}

func restaurantAccess(actor entities.Actor, restaurantID string) error {
	if actor.Is(entities.RoleService) {
		return nil
	}
	if actor.Is(entities.RoleRestaurant) && actor.ID == restaurantID {
		return nil
	}
	return entities.ErrForbidden
}

func rejectionReason(err error) string {
	var invalid *entities.InvalidMenuItemsError
	switch {
	case errors.As(err, &invalid):
		return "invalid_items"
	case errors.Is(err, entities.ErrMenuEmpty):
		return "menu_empty"
	case errors.Is(err, entities.ErrMenuUnavailable):
		return "menu_unavailable"
	case errors.Is(err, entities.ErrRestaurantNotFound):
		return "restaurant_not_found"
	}
	return "other"
}
