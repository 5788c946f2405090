package reservon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservon/booking-bot/internal/config"
	"github.com/reservon/booking-bot/internal/model"
	apperrors "github.com/reservon/booking-bot/pkg/errors"
	"github.com/reservon/booking-bot/pkg/logger"
	"github.com/reservon/booking-bot/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("reservon_test")

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(config.APIConfig{
		BaseURL:        srv.URL,
		TimeoutSeconds: 5,
		RatePerSecond:  100,
		RateBurst:      100,
	}, testMetrics, logger.NewLogger(nil))
	return client, srv
}

func TestSalons(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/salons", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		json.NewEncoder(w).Encode([]model.Salon{{ID: 1, Name: "Cut&Co"}})
	})

	salons, err := client.Salons(context.Background())
	require.NoError(t, err)
	require.Len(t, salons, 1)
	assert.Equal(t, "Cut&Co", salons[0].Name)
}

func TestAvailableMinutesSendsPayload(t *testing.T) {
	var got model.AvailabilityRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/salons/availability/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(model.AvailabilityResponse{
			AvailableMinutes: map[string][]int{"10": {0, 30}},
		})
	})

	resp, err := client.AvailableMinutes(context.Background(), model.AvailabilityRequest{
		SalonID:              3,
		Date:                 "2026-03-10",
		Hours:                []int{10, 11},
		TotalServiceDuration: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 30}, resp.AvailableMinutes["10"])
	assert.Equal(t, int64(3), got.SalonID)
	assert.Equal(t, "2026-03-10", got.Date)
	assert.Equal(t, 50, got.TotalServiceDuration)
}

func TestBookSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/salons/3/book/", r.URL.Path)
		json.NewEncoder(w).Encode(model.BookingResponse{Success: true})
	})

	resp, err := client.Book(context.Background(), 3, model.BookingRequest{SalonID: 3})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestBookRejectedCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.BookingResponse{Success: false, Error: "slot taken"})
	})

	_, err := client.Book(context.Background(), 3, model.BookingRequest{SalonID: 3})
	require.Error(t, err)
	assert.True(t, apperrors.IsRemote(err))
	app, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "slot taken", app.Message)
}

func TestServerErrorFieldIsExtracted(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "время уже занято"})
	})

	_, err := client.Salons(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsRemote(err))
	app, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "время уже занято", app.Message)
}

func TestVerifyAdmin(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/verify/", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "+37477000000", payload["phone_number"])
		json.NewEncoder(w).Encode(model.AdminVerifyResponse{
			Success: true,
			Salons:  []model.Salon{{ID: 1, Name: "Cut&Co"}},
		})
	})

	resp, err := client.VerifyAdmin(context.Background(), "+37477000000")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Salons, 1)
}

func TestPing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})
	assert.NoError(t, client.Ping(context.Background()))
}
