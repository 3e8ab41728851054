package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/internal/middleware"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, actor entities.Actor, in entities.PlaceOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error)
	ListCustomerOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	ListRestaurantOrders(ctx context.Context, actor entities.Actor, restaurantID string) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, actor entities.Actor, orderID string, upd entities.OrderUpdate) (entities.Order, error)
	DeleteOrder(ctx context.Context, actor entities.Actor, orderID string) error
	UpdateStatus(ctx context.Context, actor entities.Actor, orderID string, status entities.OrderStatus) (entities.Order, error)
	UpdatePayment(ctx context.Context, actor entities.Actor, orderID string, p entities.PaymentUpdate) (entities.Order, error)
}

type DeliveryService interface {
	ListAssignable(ctx context.Context, actor entities.Actor, limit int) ([]entities.Order, error)
	Claim(ctx context.Context, actor entities.Actor, orderID string) (entities.Delivery, error)
	Transition(ctx context.Context, actor entities.Actor, deliveryID string, target entities.DeliveryStatus) (entities.Delivery, error)
}

type RevenueService interface {
	Revenue(ctx context.Context, actor entities.Actor, q entities.RevenueQuery) ([]entities.RevenueBucket, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate

	orders     OrderService
	deliveries DeliveryService
	revenue    RevenueService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, deliveries DeliveryService, revenue RevenueService) *HTTPHandler {
	return &HTTPHandler{
		logger:     logger.With(slog.String("handler", "http")),
		validate:   utils.NewValidator(),
		orders:     orders,
		deliveries: deliveries,
		revenue:    revenue,
	}
}

// Init mounts the API on r. r is expected to authenticate requests.
func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.PlaceOrder)
		r.Get("/", h.ListCustomerOrders)
		r.Get("/{order_id}", h.GetOrder)
		r.Patch("/{order_id}", h.UpdateOrder)
		r.Delete("/{order_id}", h.DeleteOrder)
		r.Patch("/{order_id}/status", h.UpdateStatus)
		r.Patch("/{order_id}/payment", h.UpdatePayment)
	})

	r.Route("/restaurants/{restaurant_id}", func(r chi.Router) {
		r.Get("/orders", h.ListRestaurantOrders)
		r.Get("/revenue", h.Revenue)
	})

	r.Route("/deliveries", func(r chi.Router) {
		r.Get("/assignable", h.ListAssignable)
		r.Post("/", h.ClaimOrder)
		r.Patch("/{delivery_id}", h.TransitionDelivery)
	})
}

// actor returns the authenticated caller, writing 401 when there is none.
func (h *HTTPHandler) actor(w http.ResponseWriter, r *http.Request) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
	}
	return actor, ok
}

// decode reads and validates a JSON body, writing 400 on failure.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

// writeError maps service errors to responses. A partial failure is checked first:
// it wraps the downstream error that stopped the sequence.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	ctx := r.Context()

	var partial *entities.PartialFailureError
	var invalid *entities.InvalidMenuItemsError

	switch {
	case errors.As(err, &partial):
		h.logger.ErrorContext(ctx, op+" partially applied",
			slog.String("operation", partial.Operation),
			slog.String("failed_step", partial.FailedStep),
			slog.Any("applied_steps", partial.Applied),
			slog.Any("error", partial.Err),
		)
		applied := partial.Applied
		if applied == nil {
			applied = []string{}
		}
		utils.WriteJSON(w, PartialFailureResponse{
			Message:      "operation partially applied",
			Operation:    partial.Operation,
			FailedStep:   partial.FailedStep,
			AppliedSteps: applied,
		}, http.StatusInternalServerError)

	case errors.As(err, &invalid):
		utils.WriteJSON(w, InvalidItemsResponse{
			Message:      "invalid menu items",
			InvalidItems: invalid.IDs,
		}, http.StatusUnprocessableEntity)

	case errors.Is(err, entities.ErrMenuEmpty):
		utils.WriteError(w, "restaurant menu is empty", http.StatusUnprocessableEntity)

	case errors.Is(err, entities.ErrValidation):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrCatalogUnavailable):
		h.logger.WarnContext(ctx, op+": catalog unavailable", slog.Any("error", err))
		utils.WriteError(w, "catalog unavailable", http.StatusBadGateway)

	case errors.Is(err, entities.ErrCourierUnavailable):
		h.logger.WarnContext(ctx, op+": courier service unavailable", slog.Any("error", err))
		utils.WriteError(w, "courier service unavailable", http.StatusBadGateway)

	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)

	case errors.Is(err, entities.ErrNotModifiable):
		utils.WriteError(w, err.Error(), http.StatusConflict)

	default:
		h.logger.ErrorContext(ctx, "failed to "+op, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
