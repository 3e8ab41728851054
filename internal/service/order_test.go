package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/internal/service"
	mocks "github.com/SergeyBogomolovv/order-coordinator/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/order-coordinator/pkg/trm/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	orderID      = "5f0c1a9e-7c4e-4a47-9a0e-1f1f0a6f2b10"
	restaurantID = "rest-1"
)

var (
	customer   = entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}
	stranger   = entities.Actor{ID: "cust-2", Role: entities.RoleCustomer}
	restaurant = entities.Actor{ID: restaurantID, Role: entities.RoleRestaurant}
	processor  = entities.SystemActor
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func menuWith(ids ...string) entities.Menu {
	items := make([]entities.MenuItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, entities.MenuItem{ID: id, Name: id, Price: decimal.NewFromInt(5), Available: true})
	}
	return entities.Menu{
		RestaurantID: restaurantID,
		Categories:   []entities.MenuCategory{{Name: "main", Items: items}},
	}
}

func pendingOrder() entities.Order {
	return entities.Order{
		OrderID:       orderID,
		CustomerID:    customer.ID,
		RestaurantID:  restaurantID,
		Items:         []entities.Item{{MenuItemID: "m1", Quantity: 1}},
		TotalAmount:   decimal.NewFromInt(10),
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
	}
}

func passThroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

func TestOrderService_PlaceOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog)

	validInput := entities.PlaceOrderInput{
		RestaurantID: restaurantID,
		Items:        []entities.Item{{MenuItemID: "m1", Quantity: 2}, {MenuItemID: "m2", Quantity: 1}},
		TotalAmount:  decimal.RequireFromString("24.50"),
	}
	catalogDown := errors.Join(entities.ErrCatalogUnavailable, errors.New("dial tcp: connection refused"))

	testCases := []struct {
		name         string
		actor        entities.Actor
		input        entities.PlaceOrderInput
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			actor: customer,
			input: validInput,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
					Return(entities.Restaurant{ID: restaurantID}, nil).Once()
				catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
					Return(menuWith("m1", "m2", "m3"), nil).Once()
				repo.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.OrderStatusPending &&
						o.PaymentStatus == entities.PaymentStatusUnpaid &&
						o.CustomerID == customer.ID &&
						o.RestaurantID == restaurantID &&
						o.OrderID != ""
				})).Return(nil).Once()
			},
		},
		{
			name:  "retries store write",
			actor: customer,
			input: validInput,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
					Return(entities.Restaurant{ID: restaurantID}, nil).Once()
				catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
					Return(menuWith("m1", "m2"), nil).Once()
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(errors.New("connection reset")).Once()
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name:         "not a customer",
			actor:        restaurant,
			input:        validInput,
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCatalog) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:  "zero total",
			actor: customer,
			input: entities.PlaceOrderInput{
				RestaurantID: restaurantID,
				Items:        validInput.Items,
				TotalAmount:  decimal.Zero,
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCatalog) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "fraction of a cent",
			actor: customer,
			input: entities.PlaceOrderInput{
				RestaurantID: restaurantID,
				Items:        validInput.Items,
				TotalAmount:  decimal.RequireFromString("0.004"),
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCatalog) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "more than two decimal places",
			actor: customer,
			input: entities.PlaceOrderInput{
				RestaurantID: restaurantID,
				Items:        validInput.Items,
				TotalAmount:  decimal.RequireFromString("10.005"),
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCatalog) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "total beyond stored range",
			actor: customer,
			input: entities.PlaceOrderInput{
				RestaurantID: restaurantID,
				Items:        validInput.Items,
				TotalAmount:  decimal.New(1, 10),
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCatalog) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "empty items",
			actor: customer,
			input: entities.PlaceOrderInput{
				RestaurantID: restaurantID,
				Items:        []entities.Item{},
				TotalAmount:  decimal.NewFromInt(5),
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCatalog) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "non positive quantity",
			actor: customer,
			input: entities.PlaceOrderInput{
				RestaurantID: restaurantID,
				Items:        []entities.Item{{MenuItemID: "m1", Quantity: 0}},
				TotalAmount:  decimal.NewFromInt(5),
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCatalog) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "restaurant not found",
			actor: customer,
			input: validInput,
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
					Return(entities.Restaurant{}, entities.ErrRestaurantNotFound).Once()
			},
			wantErr: entities.ErrRestaurantNotFound,
		},
		{
			name:  "catalog unreachable while resolving restaurant",
			actor: customer,
			input: validInput,
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
					Return(entities.Restaurant{}, catalogDown).Once()
			},
			wantErr: entities.ErrRestaurantNotFound,
		},
		{
			name:  "menu unavailable",
			actor: customer,
			input: validInput,
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
					Return(entities.Restaurant{ID: restaurantID}, nil).Once()
				catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
					Return(entities.Menu{}, catalogDown).Once()
			},
			wantErr: entities.ErrMenuUnavailable,
		},
		{
			name:  "menu empty",
			actor: customer,
			input: validInput,
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
					Return(entities.Restaurant{ID: restaurantID}, nil).Once()
				catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
					Return(entities.Menu{RestaurantID: restaurantID}, nil).Once()
			},
			wantErr: entities.ErrMenuEmpty,
		},
		{
			name:  "unknown menu items",
			actor: customer,
			input: validInput,
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
					Return(entities.Restaurant{ID: restaurantID}, nil).Once()
				catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
					Return(menuWith("m1"), nil).Once()
			},
			wantErr: entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalog(t)
			tx := txMocks.NewMockManager(t)

			tc.mockBehavior(repo, catalog)

			svc := service.NewOrderService(discardLogger(), tx, repo, catalog)

			got, err := svc.PlaceOrder(context.Background(), tc.actor, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entities.OrderStatusPending, got.Status)
			assert.Equal(t, entities.PaymentStatusUnpaid, got.PaymentStatus)
			assert.Equal(t, customer.ID, got.CustomerID)
			_, parseErr := uuid.Parse(got.OrderID)
			assert.NoError(t, parseErr)
		})
	}
}

func TestOrderService_PlaceOrder_ErrorDetails(t *testing.T) {
	t.Run("invalid items are listed exactly", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		catalog := mocks.NewMockCatalog(t)
		catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
			Return(entities.Restaurant{ID: restaurantID}, nil)
		catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
			Return(menuWith("m1", "m2"), nil)

		svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), repo, catalog)

		_, err := svc.PlaceOrder(context.Background(), customer, entities.PlaceOrderInput{
			RestaurantID: restaurantID,
			Items: []entities.Item{
				{MenuItemID: "x", Quantity: 1},
				{MenuItemID: "m1", Quantity: 1},
				{MenuItemID: "y", Quantity: 1},
				{MenuItemID: "x", Quantity: 3},
			},
			TotalAmount: decimal.NewFromInt(20),
		})

		var invalid *entities.InvalidMenuItemsError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, []string{"x", "y"}, invalid.IDs)
	})

	t.Run("empty menu is not an invalid item error", func(t *testing.T) {
		catalog := mocks.NewMockCatalog(t)
		catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
			Return(entities.Restaurant{ID: restaurantID}, nil)
		catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
			Return(entities.Menu{RestaurantID: restaurantID}, nil)

		svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), mocks.NewMockOrderRepo(t), catalog)

		_, err := svc.PlaceOrder(context.Background(), customer, entities.PlaceOrderInput{
			RestaurantID: restaurantID,
			Items:        []entities.Item{{MenuItemID: "m1", Quantity: 1}},
			TotalAmount:  decimal.NewFromInt(5),
		})

		require.ErrorIs(t, err, entities.ErrMenuEmpty)
		var invalid *entities.InvalidMenuItemsError
		assert.False(t, errors.As(err, &invalid))
		assert.NotErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("unreachable catalog is also reported as unavailable", func(t *testing.T) {
		catalog := mocks.NewMockCatalog(t)
		catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
			Return(entities.Restaurant{}, entities.ErrCatalogUnavailable)

		svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), mocks.NewMockOrderRepo(t), catalog)

		_, err := svc.PlaceOrder(context.Background(), customer, entities.PlaceOrderInput{
			RestaurantID: restaurantID,
			Items:        []entities.Item{{MenuItemID: "m1", Quantity: 1}},
			TotalAmount:  decimal.NewFromInt(5),
		})

		assert.ErrorIs(t, err, entities.ErrRestaurantNotFound)
		assert.ErrorIs(t, err, entities.ErrCatalogUnavailable)
	})

	t.Run("order ids are unique", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		catalog := mocks.NewMockCatalog(t)
		catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
			Return(entities.Restaurant{ID: restaurantID}, nil)
		catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
			Return(menuWith("m1"), nil)
		repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)

		svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), repo, catalog)
		in := entities.PlaceOrderInput{
			RestaurantID: restaurantID,
			Items:        []entities.Item{{MenuItemID: "m1", Quantity: 1}},
			TotalAmount:  decimal.NewFromInt(5),
		}

		first, err := svc.PlaceOrder(context.Background(), customer, in)
		require.NoError(t, err)
		second, err := svc.PlaceOrder(context.Background(), customer, in)
		require.NoError(t, err)

		assert.NotEqual(t, first.OrderID, second.OrderID)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog)

	newTotal := decimal.NewFromInt(42)
	subCent := decimal.RequireFromString("42.001")
	confirmed := pendingOrder()
	confirmed.Status = entities.OrderStatusConfirmed

	testCases := []struct {
		name         string
		actor        entities.Actor
		update       entities.OrderUpdate
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "OK total only",
			actor:  customer,
			update: entities.OrderUpdate{TotalAmount: &newTotal},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
				repo.EXPECT().GetOrderForUpdate(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
				repo.EXPECT().UpdateDetails(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.TotalAmount.Equal(newTotal) && len(o.Items) == 1
				})).RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
					return o, nil
				}).Once()
			},
		},
		{
			name:  "OK items revalidated",
			actor: customer,
			update: entities.OrderUpdate{
				Items: []entities.Item{{MenuItemID: "m2", Quantity: 3}},
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
				catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
					Return(entities.Restaurant{ID: restaurantID}, nil).Once()
				catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
					Return(menuWith("m1", "m2"), nil).Once()
				repo.EXPECT().GetOrderForUpdate(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
				repo.EXPECT().UpdateDetails(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return len(o.Items) == 1 && o.Items[0].MenuItemID == "m2"
				})).RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
					return o, nil
				}).Once()
			},
		},
		{
			name:  "invalid items",
			actor: customer,
			update: entities.OrderUpdate{
				Items: []entities.Item{{MenuItemID: "nope", Quantity: 1}},
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
				catalog.EXPECT().GetRestaurant(mock.Anything, restaurantID).
					Return(entities.Restaurant{ID: restaurantID}, nil).Once()
				catalog.EXPECT().GetMenu(mock.Anything, restaurantID).
					Return(menuWith("m1"), nil).Once()
			},
			wantErr: entities.ErrValidation,
		},
		{
			name:   "not pending refused for owner",
			actor:  customer,
			update: entities.OrderUpdate{TotalAmount: &newTotal},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(confirmed, nil).Once()
			},
			wantErr: entities.ErrNotModifiable,
		},
		{
			name:   "not pending refused for stranger",
			actor:  stranger,
			update: entities.OrderUpdate{TotalAmount: &newTotal},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(confirmed, nil).Once()
			},
			wantErr: entities.ErrNotModifiable,
		},
		{
			name:   "stranger",
			actor:  stranger,
			update: entities.OrderUpdate{TotalAmount: &newTotal},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:   "status changed while validating",
			actor:  customer,
			update: entities.OrderUpdate{TotalAmount: &newTotal},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
				repo.EXPECT().GetOrderForUpdate(mock.Anything, orderID).Return(confirmed, nil).Once()
			},
			wantErr: entities.ErrNotModifiable,
		},
		{
			name:   "total with fractional cents",
			actor:  customer,
			update: entities.OrderUpdate{TotalAmount: &subCent},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrValidation,
		},
		{
			name:   "empty update",
			actor:  customer,
			update: entities.OrderUpdate{},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrValidation,
		},
		{
			name:   "not found",
			actor:  customer,
			update: entities.OrderUpdate{TotalAmount: &newTotal},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalog) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalog(t)

			tc.mockBehavior(repo, catalog)

			svc := service.NewOrderService(discardLogger(), passThroughTx(t), repo, catalog)

			got, err := svc.UpdateOrder(context.Background(), tc.actor, orderID, tc.update)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, orderID, got.OrderID)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo)

	preparing := pendingOrder()
	preparing.Status = entities.OrderStatusPreparing

	testCases := []struct {
		name         string
		actor        entities.Actor
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			actor: customer,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderForUpdate(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
				repo.EXPECT().DeleteOrder(mock.Anything, orderID).Return(nil).Once()
			},
		},
		{
			name:  "not pending",
			actor: customer,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderForUpdate(mock.Anything, orderID).Return(preparing, nil).Once()
			},
			wantErr: entities.ErrNotModifiable,
		},
		{
			name:  "stranger",
			actor: stranger,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderForUpdate(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:  "restaurant cannot delete",
			actor: restaurant,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderForUpdate(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:  "not found",
			actor: customer,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderForUpdate(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewOrderService(discardLogger(), passThroughTx(t), repo, mocks.NewMockCatalog(t))

			err := svc.DeleteOrder(context.Background(), tc.actor, orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo)

	testCases := []struct {
		name         string
		actor        entities.Actor
		status       entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "owning restaurant",
			actor:  restaurant,
			status: entities.OrderStatusPreparing,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
				updated := pendingOrder()
				updated.Status = entities.OrderStatusPreparing
				repo.EXPECT().UpdateStatus(mock.Anything, orderID, entities.OrderStatusPreparing).
					Return(updated, nil).Once()
			},
		},
		{
			name:   "backwards move is allowed",
			actor:  processor,
			status: entities.OrderStatusPending,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				delivered := pendingOrder()
				delivered.Status = entities.OrderStatusDelivered
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(delivered, nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, orderID, entities.OrderStatusPending).
					Return(pendingOrder(), nil).Once()
			},
		},
		{
			name:   "other restaurant",
			actor:  entities.Actor{ID: "rest-2", Role: entities.RoleRestaurant},
			status: entities.OrderStatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:         "customer",
			actor:        customer,
			status:       entities.OrderStatusConfirmed,
			mockBehavior: func(*mocks.MockOrderRepo) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "unknown status",
			actor:        restaurant,
			status:       "Cooking",
			mockBehavior: func(*mocks.MockOrderRepo) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), repo, mocks.NewMockCatalog(t))

			got, err := svc.UpdateStatus(context.Background(), tc.actor, orderID, tc.status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, got.Status)
		})
	}
}

func TestOrderService_UpdatePayment(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo)

	confirmedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	paid := pendingOrder()
	paid.PaymentStatus = entities.PaymentStatusPaid
	paid.PaymentReference = "ref-1"
	paid.PaymentConfirmedAt = &confirmedAt

	delivered := pendingOrder()
	delivered.Status = entities.OrderStatusDelivered

	testCases := []struct {
		name         string
		actor        entities.Actor
		update       entities.PaymentUpdate
		mockBehavior MockBehavior
		wantStatus   entities.OrderStatus
		wantErr      error
	}{
		{
			name:   "paid stamps confirmation time",
			actor:  processor,
			update: entities.PaymentUpdate{Status: entities.PaymentStatusPaid, Reference: "ref-1"},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(pendingOrder(), nil).Once()
				repo.EXPECT().UpdatePayment(mock.Anything, orderID, mock.MatchedBy(func(p entities.PaymentUpdate) bool {
					return p.Status == entities.PaymentStatusPaid && p.Reference == "ref-1" && p.ConfirmedAt != nil
				})).Return(paid, nil).Once()
			},
			wantStatus: entities.OrderStatusPending,
		},
		{
			name:   "paid twice is a no-op",
			actor:  processor,
			update: entities.PaymentUpdate{Status: entities.PaymentStatusPaid},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(paid, nil).Once()
			},
			wantStatus: entities.OrderStatusPending,
		},
		{
			name:   "new reference keeps first confirmation time",
			actor:  processor,
			update: entities.PaymentUpdate{Status: entities.PaymentStatusPaid, Reference: "ref-2"},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(paid, nil).Once()
				repo.EXPECT().UpdatePayment(mock.Anything, orderID, mock.MatchedBy(func(p entities.PaymentUpdate) bool {
					return p.ConfirmedAt != nil && p.ConfirmedAt.Equal(confirmedAt)
				})).Return(paid, nil).Once()
			},
			wantStatus: entities.OrderStatusPending,
		},
		{
			name:   "paying a delivered order keeps its status",
			actor:  processor,
			update: entities.PaymentUpdate{Status: entities.PaymentStatusPaid},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(delivered, nil).Once()
				repo.EXPECT().UpdatePayment(mock.Anything, orderID, mock.Anything).
					RunAndReturn(func(_ context.Context, _ string, p entities.PaymentUpdate) (entities.Order, error) {
						o := delivered
						o.PaymentStatus = p.Status
						o.PaymentConfirmedAt = p.ConfirmedAt
						return o, nil
					}).Once()
			},
			wantStatus: entities.OrderStatusDelivered,
		},
		{
			name:   "unpaid clears confirmation time",
			actor:  processor,
			update: entities.PaymentUpdate{Status: entities.PaymentStatusUnpaid},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).Return(paid, nil).Once()
				repo.EXPECT().UpdatePayment(mock.Anything, orderID, mock.MatchedBy(func(p entities.PaymentUpdate) bool {
					return p.Status == entities.PaymentStatusUnpaid && p.ConfirmedAt == nil
				})).Return(pendingOrder(), nil).Once()
			},
			wantStatus: entities.OrderStatusPending,
		},
		{
			name:   "not found",
			actor:  processor,
			update: entities.PaymentUpdate{Status: entities.PaymentStatusPaid},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:         "customer cannot confirm payment",
			actor:        customer,
			update:       entities.PaymentUpdate{Status: entities.PaymentStatusPaid},
			mockBehavior: func(*mocks.MockOrderRepo) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "unknown payment status",
			actor:        processor,
			update:       entities.PaymentUpdate{Status: "Refunded"},
			mockBehavior: func(*mocks.MockOrderRepo) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), repo, mocks.NewMockCatalog(t))

			got, err := svc.UpdatePayment(context.Background(), tc.actor, orderID, tc.update)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	paid := pendingOrder()
	paid.PaymentStatus = entities.PaymentStatusPaid

	testCases := []struct {
		name    string
		actor   entities.Actor
		order   entities.Order
		wantErr error
	}{
		{name: "owner", actor: customer, order: pendingOrder()},
		{name: "restaurant", actor: restaurant, order: pendingOrder()},
		{name: "service", actor: processor, order: pendingOrder()},
		{name: "courier sees paid order", actor: entities.Actor{ID: "c1", Role: entities.RoleCourier}, order: paid},
		{name: "courier cannot see unpaid order", actor: entities.Actor{ID: "c1", Role: entities.RoleCourier}, order: pendingOrder(), wantErr: entities.ErrForbidden},
		{name: "stranger", actor: stranger, order: pendingOrder(), wantErr: entities.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			repo.EXPECT().GetOrder(mock.Anything, orderID).Return(tc.order, nil).Once()

			svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), repo, mocks.NewMockCatalog(t))

			got, err := svc.GetOrder(context.Background(), tc.actor, orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.order, got)
		})
	}
}
