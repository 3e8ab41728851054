package handler

import (
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// ListAssignable
// @Summary      Orders waiting for a courier
// @Tags         deliveries
// @Security     BearerAuth
// @Produce      json
// @Param        limit  query     int  false  "Max orders to return"
// @Success      200    {array}   Order
// @Failure      400    {object}  utils.ErrorResponse
// @Failure      403    {object}  utils.ErrorResponse
// @Router       /deliveries/assignable [get]
func (h *HTTPHandler) ListAssignable(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 500 {
			utils.WriteError(w, "limit must be between 1 and 500", http.StatusBadRequest)
			return
		}
		limit = n
	}

	orders, err := h.deliveries.ListAssignable(r.Context(), actor, limit)
	if err != nil {
		h.writeError(w, r, "list assignable orders", err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// ClaimOrder
// @Summary      Claim an order
// @Description  Creates a pending delivery for the calling courier and marks the courier unavailable
// @Tags         deliveries
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        claim  body      ClaimRequest  true  "Order to claim"
// @Success      201    {object}  Delivery
// @Failure      400    {object}  utils.ValidationErrorResponse
// @Failure      404    {object}  utils.ErrorResponse
// @Failure      409    {object}  utils.ErrorResponse "Order not assignable or courier busy"
// @Failure      500    {object}  PartialFailureResponse
// @Failure      502    {object}  utils.ErrorResponse "Courier service unavailable"
// @Router       /deliveries [post]
func (h *HTTPHandler) ClaimOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req ClaimRequest
	if !h.decode(w, r, &req) {
		return
	}

	delivery, err := h.deliveries.Claim(r.Context(), actor, req.OrderID)
	if err != nil {
		h.writeError(w, r, "claim order", err)
		return
	}

	utils.WriteJSON(w, DeliveryEntityToJSON(delivery), http.StatusCreated)
}

// TransitionDelivery
// @Summary      Accept, deliver or decline
// @Description  Moves the delivery and brings the order status and courier availability along. Repeating a request re-applies every step
// @Tags         deliveries
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        delivery_id  path      string             true  "Delivery ID"
// @Param        transition   body      TransitionRequest  true  "Target status"
// @Success      200          {object}  Delivery
// @Failure      400          {object}  utils.ValidationErrorResponse
// @Failure      403          {object}  utils.ErrorResponse
// @Failure      404          {object}  utils.ErrorResponse
// @Failure      409          {object}  utils.ErrorResponse "Transition not allowed"
// @Failure      500          {object}  PartialFailureResponse
// @Failure      502          {object}  utils.ErrorResponse "Courier service unavailable"
// @Router       /deliveries/{delivery_id} [patch]
func (h *HTTPHandler) TransitionDelivery(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req TransitionRequest
	if !h.decode(w, r, &req) {
		return
	}

	delivery, err := h.deliveries.Transition(r.Context(), actor, chi.URLParam(r, "delivery_id"), entities.DeliveryStatus(req.Status))
	if err != nil {
		h.writeError(w, r, "transition delivery", err)
		return
	}

	utils.WriteJSON(w, DeliveryEntityToJSON(delivery), http.StatusOK)
}
