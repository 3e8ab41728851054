package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db  *sqlx.DB
	qb  sq.StatementBuilderType
	now func() time.Time
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder is idempotent on order_id, so a retried insert of the same order is a no-op.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	lat, lon, acc, at := locationColumns(o.DeliveryLocation)

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderID, o.CustomerID, o.RestaurantID, itemList(o.Items), o.TotalAmount,
			string(o.Status), string(o.PaymentStatus), nullString(o.PaymentReference),
			lat, lon, acc, at,
			o.CreatedAt, o.UpdatedAt, nullTimePtr(o.PaymentConfirmedAt),
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.exec(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, orderID, false)
}

// GetOrderForUpdate locks the row until the surrounding transaction ends.
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	if trm.ExtractTx(ctx) == nil {
		return entities.Order{}, fmt.Errorf("get order for update: no transaction in context")
	}
	return r.getOrder(ctx, orderID, true)
}

func (r *postgresRepo) getOrder(ctx context.Context, orderID string, lock bool) (entities.Order, error) {
	if !validOrderID(orderID) {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.exec(ctx).GetContext(ctx, &order, query, args...)
	if isNoRows(err) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	return r.list(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC"))
}

func (r *postgresRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.Order, error) {
	return r.list(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at DESC"))
}

// ListAssignable returns paid orders that have not moved past Confirmed, oldest first.
func (r *postgresRepo) ListAssignable(ctx context.Context, limit int) ([]entities.Order, error) {
	return r.list(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{
			"payment_status": string(entities.PaymentStatusPaid),
			"status":         []string{string(entities.OrderStatusPending), string(entities.OrderStatusConfirmed)},
		}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)))
}

// PaidOrders returns paid orders created in [from, to).
func (r *postgresRepo) PaidOrders(ctx context.Context, restaurantID string, from, to time.Time) ([]entities.Order, error) {
	return r.list(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{
			"restaurant_id":  restaurantID,
			"payment_status": string(entities.PaymentStatusPaid),
		}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		OrderBy("created_at ASC"))
}

// UpdateDetails writes only the customer-editable columns.
func (r *postgresRepo) UpdateDetails(ctx context.Context, o entities.Order) (entities.Order, error) {
	lat, lon, acc, at := locationColumns(o.DeliveryLocation)

	return r.update(ctx, o.OrderID, r.qb.Update("orders").
		Set("items", itemList(o.Items)).
		Set("total_amount", o.TotalAmount).
		Set("delivery_latitude", lat).
		Set("delivery_longitude", lon).
		Set("delivery_accuracy", acc).
		Set("delivery_located_at", at))
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, orderID, r.qb.Update("orders").
		Set("status", string(status)))
}

// UpdatePayment never touches status, so it cannot race a restaurant status update on the same field.
func (r *postgresRepo) UpdatePayment(ctx context.Context, orderID string, p entities.PaymentUpdate) (entities.Order, error) {
	q := r.qb.Update("orders").
		Set("payment_status", string(p.Status)).
		Set("payment_confirmed_at", nullTimePtr(p.ConfirmedAt))
	if p.Reference != "" {
		q = q.Set("payment_reference", p.Reference)
	}
	return r.update(ctx, orderID, q)
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID string) error {
	if !validOrderID(orderID) {
		return entities.ErrOrderNotFound
	}

	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.exec(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) update(ctx context.Context, orderID string, q sq.UpdateBuilder) (entities.Order, error) {
	if !validOrderID(orderID) {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	query, args := q.
		Set("updated_at", r.now()).
		Where(sq.Eq{"order_id": orderID}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var order Order
	err := r.exec(ctx).GetContext(ctx, &order, query, args...)
	if isNoRows(err) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) list(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	query, args := q.MustSql()

	var orders []Order
	if err := r.exec(ctx).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return OrdersToEntities(orders), nil
}

func (r *postgresRepo) exec(ctx context.Context) trm.Executor {
	return trm.ExecutorFrom(ctx, r.db)
}

// order_id is a uuid column; anything else cannot exist and would only produce a cast error.
func validOrderID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
