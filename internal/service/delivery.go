package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/tracing"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/utils"

	"github.com/lucsky/cuid"
	"go.opentelemetry.io/otel/attribute"
)

type CourierClient interface {
	GetCourier(ctx context.Context, courierID string) (entities.Courier, error)
	SetAvailability(ctx context.Context, courierID string, available bool) error

	CreateDelivery(ctx context.Context, d entities.Delivery) (entities.Delivery, error)
	GetDelivery(ctx context.Context, deliveryID string) (entities.Delivery, error)
	SetDeliveryStatus(ctx context.Context, deliveryID string, status entities.DeliveryStatus) error
	ActiveDelivery(ctx context.Context, orderID string) (entities.Delivery, error)
	CourierActiveDelivery(ctx context.Context, courierID string) (entities.Delivery, error)
}

const (
	OperationClaim   = "claim"
	OperationAccept  = "accept"
	OperationDeliver = "deliver"
	OperationDecline = "decline"
)

const defaultAssignableLimit = 50

// step is one idempotent "set to X" write of a coordination sequence.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// deliveryService keeps the order, the delivery record and the courier's availability in step.
// The three live in different stores, so each operation is an ordered sequence of writes with
// no rollback. A failure after the first write is reported as PartialFailureError.
type deliveryService struct {
	logger   *slog.Logger
	repo     OrderRepo
	couriers CourierClient
	retry    utils.RetryConfig

	now   func() time.Time
	newID func() string
}

func NewDeliveryService(logger *slog.Logger, repo OrderRepo, couriers CourierClient) *deliveryService {
	return &deliveryService{
		logger:   logger.With(slog.String("service", "delivery")),
		repo:     repo,
		couriers: couriers,
		retry:    utils.DefaultRetry,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    cuid.New,
	}
}

// ListAssignable returns paid orders that no courier has finished yet, oldest first.
func (s *deliveryService) ListAssignable(ctx context.Context, actor entities.Actor, limit int) ([]entities.Order, error) {
	if !actor.Is(entities.RoleCourier) && !actor.Is(entities.RoleService) {
		return nil, entities.ErrForbidden
	}
	if limit <= 0 {
		limit = defaultAssignableLimit
	}
	return s.repo.ListAssignable(ctx, limit)
}

// Claim offers the order to the calling courier: a pending delivery is created and the courier
// is marked unavailable while the offer is outstanding.
func (s *deliveryService) Claim(ctx context.Context, actor entities.Actor, orderID string) (_ entities.Delivery, err error) {
	ctx, span := tracing.Start(ctx, "delivery.Claim",
		attribute.String("order.id", orderID),
		attribute.String("courier.id", actor.ID),
	)
	defer func() { tracing.End(span, err) }()

	if !actor.Is(entities.RoleCourier) {
		return entities.Delivery{}, entities.ErrForbidden
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Delivery{}, err
	}
	if !order.Assignable() {
		return entities.Delivery{}, entities.ErrOrderNotAssignable
	}

	_, err = s.couriers.ActiveDelivery(ctx, orderID)
	switch {
	case err == nil:
		return entities.Delivery{}, entities.ErrOrderAlreadyAssigned
	case !errors.Is(err, entities.ErrDeliveryNotFound):
		return entities.Delivery{}, err
	}

	courier, err := s.couriers.GetCourier(ctx, actor.ID)
	if err != nil {
		return entities.Delivery{}, err
	}
	if !courier.Available {
		return entities.Delivery{}, entities.ErrCourierBusy
	}

	now := s.now()
	delivery := entities.Delivery{
		DeliveryID: s.newID(),
		OrderID:    orderID,
		CourierID:  actor.ID,
		Status:     entities.DeliveryStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.run(ctx, OperationClaim, []step{
		{"create_delivery", func(ctx context.Context) error {
			created, err := s.couriers.CreateDelivery(ctx, delivery)
			if err == nil && created.DeliveryID != "" {
				delivery = created
			}
			return err
		}},
		{"set_courier_unavailable", s.setAvailability(actor.ID, false)},
	})
	if err != nil {
		return entities.Delivery{}, err
	}
	return delivery, nil
}

// Transition moves a delivery to target and brings the order and the courier along.
// Repeating accept re-applies every step. Repeating a terminal status only re-applies the
// steps the order and the courier have not moved past since.
func (s *deliveryService) Transition(ctx context.Context, actor entities.Actor, deliveryID string, target entities.DeliveryStatus) (_ entities.Delivery, err error) {
	ctx, span := tracing.Start(ctx, "delivery.Transition",
		attribute.String("delivery.id", deliveryID),
		attribute.String("delivery.target", string(target)),
	)
	defer func() { tracing.End(span, err) }()

	if !actor.Is(entities.RoleCourier) {
		return entities.Delivery{}, entities.ErrForbidden
	}
	if !target.Valid() || target == entities.DeliveryStatusPending {
		return entities.Delivery{}, entities.Validation("unsupported delivery status %q", target)
	}

	delivery, err := s.couriers.GetDelivery(ctx, deliveryID)
	if err != nil {
		return entities.Delivery{}, err
	}
	if delivery.CourierID != actor.ID {
		return entities.Delivery{}, entities.ErrForbidden
	}
	if !transitionAllowed(delivery.Status, target) {
		return entities.Delivery{}, fmt.Errorf("%w: %s to %s", entities.ErrDeliveryTransition, delivery.Status, target)
	}

	var (
		operation string
		steps     []step
	)
	switch target {
	case entities.DeliveryStatusAccepted:
		operation = OperationAccept
		steps = []step{
			{"set_delivery_accepted", s.setDeliveryStatus(deliveryID, target)},
			{"set_courier_unavailable", s.setAvailability(delivery.CourierID, false)},
		}
	case entities.DeliveryStatusDelivered:
		operation = OperationDeliver
		steps = []step{
			{"set_delivery_delivered", s.setDeliveryStatus(deliveryID, target)},
			{"set_order_delivered", s.setOrderStatus(delivery.OrderID, entities.OrderStatusDelivered)},
			{"set_courier_available", s.setAvailability(delivery.CourierID, true)},
		}
	case entities.DeliveryStatusDeclined:
		// the order goes back to Confirmed first so it is never left looking taken
		operation = OperationDecline
		steps = []step{
			{"set_order_confirmed", s.setOrderStatus(delivery.OrderID, entities.OrderStatusConfirmed)},
			{"set_delivery_declined", s.setDeliveryStatus(deliveryID, target)},
			{"set_courier_available", s.setAvailability(delivery.CourierID, true)},
		}
	}

	if delivery.Status == target && target.Terminal() {
		steps, err = s.outstandingSteps(ctx, delivery, steps)
		if err != nil {
			return entities.Delivery{}, err
		}
	}

	if err := s.run(ctx, operation, steps); err != nil {
		return entities.Delivery{}, err
	}

	delivery.Status = target
	delivery.UpdatedAt = s.now()
	return delivery, nil
}

// outstandingSteps drops the steps of a repeated terminal transition that would undo later
// progress: the order may have moved on and the courier may already hold another delivery.
func (s *deliveryService) outstandingSteps(ctx context.Context, delivery entities.Delivery, steps []step) ([]step, error) {
	order, err := s.repo.GetOrder(ctx, delivery.OrderID)
	if err != nil {
		return nil, err
	}

	busy := false
	active, err := s.couriers.CourierActiveDelivery(ctx, delivery.CourierID)
	switch {
	case err == nil:
		busy = active.DeliveryID != delivery.DeliveryID
	case !errors.Is(err, entities.ErrDeliveryNotFound):
		return nil, err
	}

	settled := map[string]bool{
		"set_order_delivered":   order.Status == entities.OrderStatusDelivered,
		"set_order_confirmed":   order.Status != entities.OrderStatusPending && order.Status != entities.OrderStatusConfirmed,
		"set_courier_available": busy,
	}

	outstanding := make([]step, 0, len(steps))
	for _, st := range steps {
		if !settled[st.name] {
			outstanding = append(outstanding, st)
		}
	}
	return outstanding, nil
}

func (s *deliveryService) run(ctx context.Context, operation string, steps []step) error {
	applied := make([]string, 0, len(steps))
	for _, st := range steps {
		if err := st.run(ctx); err != nil {
			if len(applied) == 0 {
				return err
			}

			partialFailures.WithLabelValues(operation, st.name).Inc()
			s.logger.Error("delivery operation partially applied",
				slog.String("operation", operation),
				slog.String("failed_step", st.name),
				slog.Any("applied_steps", applied),
				slog.Any("error", err),
			)
			return &entities.PartialFailureError{
				Operation:  operation,
				FailedStep: st.name,
				Applied:    applied,
				Err:        err,
			}
		}
		applied = append(applied, st.name)
	}

	deliveryTransitions.WithLabelValues(operation).Inc()
	s.logger.Debug("delivery operation applied", slog.String("operation", operation), slog.Any("steps", applied))
	return nil
}

func (s *deliveryService) setDeliveryStatus(deliveryID string, status entities.DeliveryStatus) func(context.Context) error {
	return func(ctx context.Context) error {
		return s.couriers.SetDeliveryStatus(ctx, deliveryID, status)
	}
}

func (s *deliveryService) setAvailability(courierID string, available bool) func(context.Context) error {
	return func(ctx context.Context) error {
		return s.couriers.SetAvailability(ctx, courierID, available)
	}
}

// setOrderStatus is the only step backed by the order store, so it is the only one retried.
func (s *deliveryService) setOrderStatus(orderID string, status entities.OrderStatus) func(context.Context) error {
	return func(ctx context.Context) error {
		return utils.Retry(ctx, s.retry, func() error {
			_, err := s.repo.UpdateStatus(ctx, orderID, status)
			return err
		}, entities.ErrOrderNotFound)
	}
}

func transitionAllowed(from, to entities.DeliveryStatus) bool {
	if from == to {
		return true
	}
	switch to {
	case entities.DeliveryStatusAccepted:
		return from == entities.DeliveryStatusPending
	case entities.DeliveryStatusDelivered:
		return from == entities.DeliveryStatusAccepted
	case entities.DeliveryStatusDeclined:
		return from == entities.DeliveryStatusPending || from == entities.DeliveryStatusAccepted
	}
	return false
}
