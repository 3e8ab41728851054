package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/tracing"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type revenueService struct {
	logger *slog.Logger
	repo   OrderRepo
}

func NewRevenueService(logger *slog.Logger, repo OrderRepo) *revenueService {
	return &revenueService{
		logger: logger.With(slog.String("service", "revenue")),
		repo:   repo,
	}
}

// Revenue sums paid order totals of the restaurant per calendar day or month in UTC.
// Start and End are whole days and both are included. Buckets without income are omitted.
func (s *revenueService) Revenue(ctx context.Context, actor entities.Actor, q entities.RevenueQuery) (_ []entities.RevenueBucket, err error) {
	ctx, span := tracing.Start(ctx, "revenue.Aggregate",
		attribute.String("restaurant.id", q.RestaurantID),
		attribute.String("granularity", string(q.Granularity)),
	)
	defer func() { tracing.End(span, err) }()

	if err := restaurantAccess(actor, q.RestaurantID); err != nil {
		return nil, err
	}
	if err := validateRevenueQuery(q); err != nil {
		return nil, err
	}

	from := truncateDay(q.Start)
	to := truncateDay(q.End).Add(24 * time.Hour)

	orders, err := s.repo.PaidOrders(ctx, q.RestaurantID, from, to)
	if err != nil {
		return nil, err
	}

	layout := q.Granularity.Layout()
	sums := make(map[string]decimal.Decimal)
	for _, o := range orders {
		if o.RestaurantID != q.RestaurantID || o.PaymentStatus != entities.PaymentStatusPaid {
			continue
		}
		created := o.CreatedAt.UTC()
		if created.Before(from) || !created.Before(to) {
			continue
		}
		key := created.Format(layout)
		sums[key] = sums[key].Add(o.TotalAmount)
	}

	buckets := make([]entities.RevenueBucket, 0, len(sums))
	for date, income := range sums {
		buckets = append(buckets, entities.RevenueBucket{Date: date, Income: income})
	}
	// both layouts sort lexically in time order
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })

	return buckets, nil
}

func validateRevenueQuery(q entities.RevenueQuery) error {
	if q.RestaurantID == "" {
		return entities.Validation("restaurant_id is required")
	}
	if !q.Granularity.Valid() {
		return entities.Validation("granularity must be day or month")
	}
	if q.Start.IsZero() || q.End.IsZero() {
		return entities.Validation("from and to are required")
	}
	if truncateDay(q.End).Before(truncateDay(q.Start)) {
		return entities.Validation("to must not be before from")
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
