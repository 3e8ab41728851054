package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/internal/service"
	mocks "github.com/SergeyBogomolovv/order-coordinator/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func revenueOrder(created string, amount string, payment entities.PaymentStatus) entities.Order {
	at, err := time.Parse(time.RFC3339, created)
	if err != nil {
		panic(err)
	}
	return entities.Order{
		OrderID:       created,
		RestaurantID:  restaurantID,
		TotalAmount:   decimal.RequireFromString(amount),
		Status:        entities.OrderStatusDelivered,
		PaymentStatus: payment,
		CreatedAt:     at,
	}
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRevenueService_Revenue(t *testing.T) {
	paid, unpaid := entities.PaymentStatusPaid, entities.PaymentStatusUnpaid

	testCases := []struct {
		name    string
		query   entities.RevenueQuery
		orders  []entities.Order
		want    map[string]string
		order   []string
		wantErr error
	}{
		{
			name:  "only unpaid orders",
			query: entities.RevenueQuery{RestaurantID: restaurantID, Start: day("2024-01-01"), End: day("2024-01-31"), Granularity: entities.GranularityDay},
			orders: []entities.Order{
				revenueOrder("2024-01-02T10:00:00Z", "10.00", unpaid),
				revenueOrder("2024-01-03T10:00:00Z", "12.00", unpaid),
			},
			want:  map[string]string{},
			order: []string{},
		},
		{
			name:  "mixed by day",
			query: entities.RevenueQuery{RestaurantID: restaurantID, Start: day("2024-01-01"), End: day("2024-01-31"), Granularity: entities.GranularityDay},
			orders: []entities.Order{
				revenueOrder("2024-01-03T08:00:00Z", "3.00", paid),
				revenueOrder("2024-01-01T09:00:00Z", "10.50", paid),
				revenueOrder("2024-01-01T21:15:00Z", "5.00", paid),
				revenueOrder("2024-01-02T12:00:00Z", "7.00", unpaid),
				revenueOrder("2024-01-31T23:59:59Z", "1.25", paid),
			},
			want: map[string]string{
				"2024-01-01": "15.50",
				"2024-01-03": "3.00",
				"2024-01-31": "1.25",
			},
			order: []string{"2024-01-01", "2024-01-03", "2024-01-31"},
		},
		{
			name:  "by month",
			query: entities.RevenueQuery{RestaurantID: restaurantID, Start: day("2023-12-01"), End: day("2024-02-29"), Granularity: entities.GranularityMonth},
			orders: []entities.Order{
				revenueOrder("2024-02-10T10:00:00Z", "4.00", paid),
				revenueOrder("2023-12-31T23:00:00Z", "2.00", paid),
				revenueOrder("2024-01-15T10:00:00Z", "6.10", paid),
				revenueOrder("2024-01-20T10:00:00Z", "0.90", paid),
			},
			want: map[string]string{
				"2023-12": "2.00",
				"2024-01": "7.00",
				"2024-02": "4.00",
			},
			order: []string{"2023-12", "2024-01", "2024-02"},
		},
		{
			name:  "orders outside range are ignored",
			query: entities.RevenueQuery{RestaurantID: restaurantID, Start: day("2024-01-10"), End: day("2024-01-10"), Granularity: entities.GranularityDay},
			orders: []entities.Order{
				revenueOrder("2024-01-09T23:59:59Z", "1.00", paid),
				revenueOrder("2024-01-10T00:00:00Z", "2.00", paid),
				revenueOrder("2024-01-11T00:00:00Z", "4.00", paid),
			},
			want:  map[string]string{"2024-01-10": "2.00"},
			order: []string{"2024-01-10"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			repo.EXPECT().
				PaidOrders(mock.Anything, restaurantID, tc.query.Start, tc.query.End.Add(24*time.Hour)).
				Return(tc.orders, nil).Once()

			svc := service.NewRevenueService(discardLogger(), repo)

			got, err := svc.Revenue(context.Background(), restaurant, tc.query)
			require.NoError(t, err)

			dates := make([]string, 0, len(got))
			for _, b := range got {
				dates = append(dates, b.Date)
				assert.Equal(t, tc.want[b.Date], b.Income.StringFixed(2), b.Date)
			}
			assert.Equal(t, tc.order, dates)
		})
	}
}

func TestRevenueService_Revenue_Rejects(t *testing.T) {
	valid := entities.RevenueQuery{RestaurantID: restaurantID, Start: day("2024-01-01"), End: day("2024-01-31"), Granularity: entities.GranularityDay}

	testCases := []struct {
		name    string
		actor   entities.Actor
		query   func(q entities.RevenueQuery) entities.RevenueQuery
		wantErr error
	}{
		{
			name:    "other restaurant",
			actor:   entities.Actor{ID: "rest-2", Role: entities.RoleRestaurant},
			query:   func(q entities.RevenueQuery) entities.RevenueQuery { return q },
			wantErr: entities.ErrForbidden,
		},
		{
			name:    "customer",
			actor:   customer,
			query:   func(q entities.RevenueQuery) entities.RevenueQuery { return q },
			wantErr: entities.ErrForbidden,
		},
		{
			name:  "unknown granularity",
			actor: restaurant,
			query: func(q entities.RevenueQuery) entities.RevenueQuery {
				q.Granularity = "week"
				return q
			},
			wantErr: entities.ErrValidation,
		},
		{
			name:  "reversed range",
			actor: processor,
			query: func(q entities.RevenueQuery) entities.RevenueQuery {
				q.Start, q.End = q.End, q.Start
				return q
			},
			wantErr: entities.ErrValidation,
		},
		{
			name:  "missing range",
			actor: restaurant,
			query: func(q entities.RevenueQuery) entities.RevenueQuery {
				q.Start = time.Time{}
				return q
			},
			wantErr: entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewRevenueService(discardLogger(), mocks.NewMockOrderRepo(t))

			_, err := svc.Revenue(context.Background(), tc.actor, tc.query(valid))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
