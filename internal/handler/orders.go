package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// PlaceOrder
// @Summary      Place an order
// @Description  Validates the items against the restaurant's current menu and stores the order as Pending/Unpaid
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order  body      PlaceOrderRequest  true  "Order"
// @Success      201    {object}  Order
// @Failure      400    {object}  utils.ValidationErrorResponse
// @Failure      404    {object}  utils.ErrorResponse "Restaurant not found"
// @Failure      422    {object}  InvalidItemsResponse
// @Failure      502    {object}  utils.ErrorResponse "Catalog unavailable"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.PlaceOrder(r.Context(), actor, req.ToEntity())
	if err != nil {
		h.writeError(w, r, "place order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListCustomerOrders
// @Summary      List own orders
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *HTTPHandler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	orders, err := h.orders.ListCustomerOrders(r.Context(), actor)
	if err != nil {
		h.writeError(w, r, "list orders", err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder
// @Summary      Get an order
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  Order
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(r.Context(), actor, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeError(w, r, "get order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrder
// @Summary      Update a pending order
// @Description  Only the owning customer may change items, total amount or delivery location, and only while the order is Pending
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order_id  path      string              true  "Order ID"
// @Param        update    body      UpdateOrderRequest  true  "Fields to change"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse "Order is past Pending"
// @Failure      422       {object}  InvalidItemsResponse
// @Router       /orders/{order_id} [patch]
func (h *HTTPHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.UpdateOrder(r.Context(), actor, chi.URLParam(r, "order_id"), req.ToEntity())
	if err != nil {
		h.writeError(w, r, "update order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder
// @Summary      Delete a pending order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path  string  true  "Order ID"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Order is past Pending"
// @Router       /orders/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(r.Context(), actor, chi.URLParam(r, "order_id")); err != nil {
		h.writeError(w, r, "delete order", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus
// @Summary      Set order status
// @Description  Sets any of Pending, Confirmed, Preparing, Out for Delivery, Delivered
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order_id  path      string               true  "Order ID"
// @Param        status    body      UpdateStatusRequest  true  "New status"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ErrorResponse
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), actor, chi.URLParam(r, "order_id"), entities.OrderStatus(req.Status))
	if err != nil {
		h.writeError(w, r, "update order status", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdatePayment
// @Summary      Payment confirmation callback
// @Description  Records the payment processor's verdict. Idempotent; never changes the order status
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order_id  path      string          true  "Order ID"
// @Param        payment   body      PaymentRequest  true  "Payment"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/payment [patch]
func (h *HTTPHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req PaymentRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.UpdatePayment(r.Context(), actor, chi.URLParam(r, "order_id"), entities.PaymentUpdate{
		Status:    entities.PaymentStatus(req.PaymentStatus),
		Reference: req.Reference,
	})
	if err != nil {
		h.writeError(w, r, "update payment", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListRestaurantOrders
// @Summary      List a restaurant's orders
// @Tags         restaurants
// @Security     BearerAuth
// @Produce      json
// @Param        restaurant_id  path      string  true  "Restaurant ID"
// @Success      200            {array}   Order
// @Failure      403            {object}  utils.ErrorResponse
// @Router       /restaurants/{restaurant_id}/orders [get]
func (h *HTTPHandler) ListRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	orders, err := h.orders.ListRestaurantOrders(r.Context(), actor, chi.URLParam(r, "restaurant_id"))
	if err != nil {
		h.writeError(w, r, "list restaurant orders", err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}
