// Package reservon is the HTTP client for the remote booking and
// availability API. Calls are synchronous, rate limited, carry a per-call
// deadline and are never retried; failures surface to the caller as remote
// errors with the verbatim server message when one was readable.
package reservon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/reservon/booking-bot/internal/config"
	"github.com/reservon/booking-bot/internal/model"
	apperrors "github.com/reservon/booking-bot/pkg/errors"
	"github.com/reservon/booking-bot/pkg/logger"
	"github.com/reservon/booking-bot/pkg/metrics"
)

type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	metrics *metrics.Metrics
	log     *logger.Logger
}

func NewClient(cfg config.APIConfig, m *metrics.Metrics, log *logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		metrics: m,
		log:     log.WithComponent("reservon"),
	}
}

// Salons fetches the salon list. The list is rendered once and not cached.
func (c *Client) Salons(ctx context.Context) ([]model.Salon, error) {
	var salons []model.Salon
	if err := c.do(ctx, http.MethodGet, "/salons", "salons", nil, &salons); err != nil {
		return nil, err
	}
	return salons, nil
}

// SalonDetail fetches a salon's barbers, services and mode flags.
func (c *Client) SalonDetail(ctx context.Context, salonID int64) (*model.SalonDetail, error) {
	var detail model.SalonDetail
	path := fmt.Sprintf("/salons/%d/", salonID)
	if err := c.do(ctx, http.MethodGet, path, "salon_detail", nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// AvailableMinutes queries free minutes for the request's date and hours.
func (c *Client) AvailableMinutes(ctx context.Context, req model.AvailabilityRequest) (*model.AvailabilityResponse, error) {
	var resp model.AvailabilityResponse
	if err := c.do(ctx, http.MethodPost, "/salons/availability/", "availability", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NearestSlot queries the closest bookable times around the chosen hour.
func (c *Client) NearestSlot(ctx context.Context, req model.NearestSlotRequest) (*model.NearestSlotResponse, error) {
	var resp model.NearestSlotResponse
	if err := c.do(ctx, http.MethodPost, "/salons/nearest_slot/", "nearest_slot", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Book submits the final booking. A non-2xx status or success:false is a
// remote error carrying the server's message.
func (c *Client) Book(ctx context.Context, salonID int64, req model.BookingRequest) (*model.BookingResponse, error) {
	var resp model.BookingResponse
	path := fmt.Sprintf("/salons/%d/book/", salonID)
	if err := c.do(ctx, http.MethodPost, path, "book", req, &resp); err != nil {
		c.metrics.BookingsSubmitted.WithLabelValues("error").Inc()
		return nil, err
	}
	if !resp.Success {
		c.metrics.BookingsSubmitted.WithLabelValues("rejected").Inc()
		msg := resp.Error
		if msg == "" {
			msg = "booking was not accepted"
		}
		return nil, apperrors.Remote(msg, nil)
	}
	c.metrics.BookingsSubmitted.WithLabelValues("success").Inc()
	return &resp, nil
}

// Ping checks that the booking API answers at all; used by readiness checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/salons", "ping", nil, nil)
}

// VerifyAdmin checks operator rights for a phone number and returns the
// salons it administers.
func (c *Client) VerifyAdmin(ctx context.Context, phone string) (*model.AdminVerifyResponse, error) {
	var resp model.AdminVerifyResponse
	payload := map[string]string{"phone_number": phone}
	if err := c.do(ctx, http.MethodPost, "/admin/verify/", "admin_verify", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path, endpoint string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apperrors.Remote("rate limiter interrupted", err)
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.APIErrors.WithLabelValues(endpoint).Inc()
		c.log.Error(err, "request failed", "endpoint", endpoint, "request_id", requestID)
		return apperrors.Remote("booking API unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.APIErrors.WithLabelValues(endpoint).Inc()
		return apperrors.Remote("failed to read response", err)
	}

	if resp.StatusCode >= 400 {
		c.metrics.APIErrors.WithLabelValues(endpoint).Inc()
		c.log.Warn("request rejected",
			"endpoint", endpoint, "status", resp.StatusCode, "request_id", requestID)
		return apperrors.Remote(serverMessage(resp.StatusCode, raw), nil)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			c.metrics.APIErrors.WithLabelValues(endpoint).Inc()
			return apperrors.Remote("malformed response from booking API", err)
		}
	}
	return nil
}

// serverMessage extracts the most useful user-visible message from an error
// response: a JSON "error" field when present, otherwise the raw body.
func serverMessage(status int, raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	if len(raw) > 0 {
		return fmt.Sprintf("%d: %s", status, string(raw))
	}
	return fmt.Sprintf("booking API returned status %d", status)
}
