package courier_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/config"
	"github.com/SergeyBogomolovv/order-coordinator/internal/courier"
	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *courier.Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return courier.NewClient(logger, config.Courier{BaseURL: srv.URL, Timeout: time.Second})
}

func TestClient_GetCourier(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		want    entities.Courier
		wantErr error
	}{
		{
			name:   "available",
			status: http.StatusOK,
			body:   `{"id":"c1","available":true}`,
			want:   entities.Courier{ID: "c1", Available: true},
		},
		{
			name:   "with location",
			status: http.StatusOK,
			body:   `{"id":"c1","available":false,"location":{"latitude":52.5,"longitude":13.4,"accuracy":5,"timestamp":"2024-01-01T10:00:00Z"}}`,
			want: entities.Courier{ID: "c1", Location: &entities.Location{
				Latitude:  52.5,
				Longitude: 13.4,
				Accuracy:  5,
				Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			}},
		},
		{
			name:    "unknown courier",
			status:  http.StatusNotFound,
			wantErr: entities.ErrCourierNotFound,
		},
		{
			name:    "bad gateway",
			status:  http.StatusBadGateway,
			wantErr: entities.ErrCourierUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/couriers/c1", r.URL.Path)
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			})

			got, err := client.GetCourier(context.Background(), "c1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want.ID, got.ID)
			assert.Equal(t, tc.want.Available, got.Available)
			if tc.want.Location != nil {
				require.NotNil(t, got.Location)
				assert.True(t, tc.want.Location.Timestamp.Equal(got.Location.Timestamp))
				assert.Equal(t, tc.want.Location.Latitude, got.Location.Latitude)
			}
		})
	}
}

func TestClient_Writes(t *testing.T) {
	t.Run("set availability", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/couriers/c1/availability", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, false, body["available"])
			w.WriteHeader(http.StatusNoContent)
		})

		assert.NoError(t, client.SetAvailability(context.Background(), "c1", false))
	})

	t.Run("set delivery status", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/deliveries/d1/status", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Accepted", body["status"])
			w.WriteHeader(http.StatusOK)
		})

		assert.NoError(t, client.SetDeliveryStatus(context.Background(), "d1", entities.DeliveryStatusAccepted))
	})

	t.Run("unknown delivery", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := client.SetDeliveryStatus(context.Background(), "d1", entities.DeliveryStatusDelivered)
		assert.ErrorIs(t, err, entities.ErrDeliveryNotFound)
	})

	t.Run("create delivery", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/deliveries", r.URL.Path)

			var body courier.Delivery
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "d1", body.ID)
			assert.Equal(t, "pending", body.Status)

			body.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(body)
		})

		got, err := client.CreateDelivery(context.Background(), entities.Delivery{
			DeliveryID: "d1",
			OrderID:    "o1",
			CourierID:  "c1",
			Status:     entities.DeliveryStatusPending,
		})

		require.NoError(t, err)
		assert.Equal(t, "d1", got.DeliveryID)
		assert.Equal(t, "o1", got.OrderID)
		assert.Equal(t, entities.DeliveryStatusPending, got.Status)
		assert.False(t, got.CreatedAt.IsZero())
	})
}

func TestClient_ActiveDelivery(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantID  string
		wantErr error
	}{
		{
			name:   "active found",
			status: http.StatusOK,
			body:   `[{"id":"d0","status":"declined"},{"id":"d1","status":"Accepted"}]`,
			wantID: "d1",
		},
		{
			name:    "only terminal",
			status:  http.StatusOK,
			body:    `[{"id":"d0","status":"delivered"}]`,
			wantErr: entities.ErrDeliveryNotFound,
		},
		{
			name:    "none",
			status:  http.StatusOK,
			body:    `[]`,
			wantErr: entities.ErrDeliveryNotFound,
		},
		{
			name:    "service down",
			status:  http.StatusServiceUnavailable,
			wantErr: entities.ErrCourierUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/deliveries", r.URL.Path)
				assert.Equal(t, "o1", r.URL.Query().Get("order_id"))
				assert.Equal(t, "true", r.URL.Query().Get("active"))
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			})

			got, err := client.ActiveDelivery(context.Background(), "o1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, got.DeliveryID)
		})
	}
}

func TestClient_CourierActiveDelivery(t *testing.T) {
	t.Run("filters by courier", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/deliveries", r.URL.Path)
			assert.Equal(t, "c1", r.URL.Query().Get("courier_id"))
			assert.Empty(t, r.URL.Query().Get("order_id"))
			assert.Equal(t, "true", r.URL.Query().Get("active"))
			io.WriteString(w, `[{"id":"d2","order_id":"o2","courier_id":"c1","status":"Accepted"}]`)
		})

		got, err := client.CourierActiveDelivery(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "d2", got.DeliveryID)
		assert.Equal(t, entities.DeliveryStatusAccepted, got.Status)
	})

	t.Run("idle courier", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[{"id":"d0","courier_id":"c1","status":"delivered"}]`)
		})

		_, err := client.CourierActiveDelivery(context.Background(), "c1")
		assert.ErrorIs(t, err, entities.ErrDeliveryNotFound)
	})
}
