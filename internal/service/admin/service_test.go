package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservon/booking-bot/internal/config"
	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
	"github.com/reservon/booking-bot/internal/session"
	"github.com/reservon/booking-bot/pkg/logger"
	"github.com/reservon/booking-bot/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("admin_test")

type fakeAPI struct {
	verify *model.AdminVerifyResponse
	detail *model.SalonDetail

	bookCalls   int
	lastBooking model.BookingRequest
}

func (f *fakeAPI) VerifyAdmin(ctx context.Context, phone string) (*model.AdminVerifyResponse, error) {
	return f.verify, nil
}

func (f *fakeAPI) SalonDetail(ctx context.Context, salonID int64) (*model.SalonDetail, error) {
	return f.detail, nil
}

func (f *fakeAPI) Book(ctx context.Context, salonID int64, req model.BookingRequest) (*model.BookingResponse, error) {
	f.bookCalls++
	f.lastBooking = req
	return &model.BookingResponse{Success: true}, nil
}

func newTestAdmin(t *testing.T, api *fakeAPI) (*Service, session.Repository) {
	t.Helper()
	store := session.NewStore(config.SessionConfig{}, locale.LangRU, testMetrics)
	cfg := config.BookingConfig{DefaultDuration: 30}
	svc := NewService(store, api, cfg, logger.NewLogger(nil), testMetrics)
	svc.now = func() time.Time {
		return time.Date(2026, 2, 1, 8, 0, 0, 0, time.Local)
	}
	return svc, store
}

func TestOperatorBookingWalkthrough(t *testing.T) {
	api := &fakeAPI{
		verify: &model.AdminVerifyResponse{
			Success: true,
			Salons: []model.Salon{
				{ID: 1, Name: "Cut&Co"},
				{ID: 2, Name: "Fade Lab"},
			},
		},
		detail: &model.SalonDetail{
			ID:   2,
			Name: "Fade Lab",
			Barbers: []model.Barber{
				{ID: 10, Name: "Ashot"},
			},
		},
	}
	svc, store := newTestAdmin(t, api)
	ctx := context.Background()
	const userID int64 = 100

	assert.False(t, svc.Active(userID))

	r := svc.Start(ctx, userID)
	require.Len(t, r.Messages, 1)
	assert.True(t, r.Messages[0].ContactButton)
	assert.True(t, svc.Active(userID))
	assert.Equal(t, model.AdminStatePhone, store.Get(userID).Admin.State)

	// Two administered salons force a choice.
	r = svc.HandleContact(ctx, userID, "37477000000")
	require.Len(t, r.Messages, 1)
	assert.Len(t, r.Messages[0].Inline, 2)
	assert.Equal(t, model.AdminStateSelectSalon, store.Get(userID).Admin.State)

	r = svc.HandleCallback(ctx, userID, "admin_salon_2")
	s := store.Get(userID)
	require.NotNil(t, s.Admin.Salon)
	assert.Equal(t, int64(2), s.Admin.Salon.ID)
	assert.Equal(t, model.AdminStateBarber, s.Admin.State)
	// Confirmation plus the barber keyboard.
	require.Len(t, r.Messages, 2)
	assert.Equal(t, "admin_barber_10", r.Messages[1].Inline[0][0].Data)

	svc.HandleCallback(ctx, userID, "admin_barber_10")
	s = store.Get(userID)
	assert.Equal(t, int64(10), s.Admin.BarberID)
	assert.Equal(t, model.AdminStateCommand, s.Admin.State)

	r = svc.HandleText(ctx, userID, "10:30-10:40 11.02 постоянный клиент")
	require.Equal(t, 1, api.bookCalls)
	assert.Equal(t, int64(2), api.lastBooking.SalonID)
	assert.Equal(t, "10:30", api.lastBooking.Time)
	assert.Equal(t, "10:40", api.lastBooking.EndTime)
	assert.Equal(t, 10, api.lastBooking.TotalServiceDuration)
	assert.Equal(t, "2026-02-11", api.lastBooking.Date)
	assert.Equal(t, "постоянный клиент", api.lastBooking.UserComment)
	assert.Equal(t, "+37477000000", api.lastBooking.PhoneNumber)
	require.Len(t, api.lastBooking.BookingDetails, 1)
	assert.Equal(t, int64(10), api.lastBooking.BookingDetails[0].BarberID)
	assert.Equal(t, textBookingDone, r.Messages[0].Text)

	// Still in command mode for the next booking.
	assert.Equal(t, model.AdminStateCommand, store.Get(userID).Admin.State)

	r = svc.Cancel(userID)
	assert.Equal(t, textSessionEnded, r.Messages[0].Text)
	assert.False(t, svc.Active(userID))
}

func TestOperatorSingleSalonSkipsSelection(t *testing.T) {
	api := &fakeAPI{
		verify: &model.AdminVerifyResponse{
			Success: true,
			Salons:  []model.Salon{{ID: 1, Name: "Cut&Co"}},
		},
		detail: &model.SalonDetail{
			ID:      1,
			Barbers: []model.Barber{{ID: 5, Name: "Karen"}},
		},
	}
	svc, store := newTestAdmin(t, api)
	ctx := context.Background()
	const userID int64 = 101

	svc.Start(ctx, userID)
	r := svc.HandleText(ctx, userID, "37477000001")

	s := store.Get(userID)
	require.NotNil(t, s.Admin.Salon)
	assert.Equal(t, int64(1), s.Admin.Salon.ID)
	assert.Equal(t, model.AdminStateBarber, s.Admin.State)
	assert.Equal(t, textSalonChosen+"Cut&Co", r.Messages[0].Text)
}

func TestOperatorVerificationRejectionEndsSession(t *testing.T) {
	api := &fakeAPI{
		verify: &model.AdminVerifyResponse{Success: false},
	}
	svc, store := newTestAdmin(t, api)
	ctx := context.Background()
	const userID int64 = 102

	svc.Start(ctx, userID)
	r := svc.HandleText(ctx, userID, "37477000002")

	assert.Equal(t, textNotAdmin, r.Messages[0].Text)
	assert.Nil(t, store.Get(userID).Admin)
	assert.False(t, svc.Active(userID))
}

func TestOperatorBadCommandKeepsWaiting(t *testing.T) {
	api := &fakeAPI{
		verify: &model.AdminVerifyResponse{
			Success: true,
			Salons:  []model.Salon{{ID: 1, Name: "Cut&Co"}},
		},
		detail: &model.SalonDetail{
			ID:      1,
			Barbers: []model.Barber{{ID: 5, Name: "Karen"}},
		},
	}
	svc, store := newTestAdmin(t, api)
	ctx := context.Background()
	const userID int64 = 103

	svc.Start(ctx, userID)
	svc.HandleText(ctx, userID, "37477000003")
	svc.HandleCallback(ctx, userID, "admin_barber_5")
	require.Equal(t, model.AdminStateCommand, store.Get(userID).Admin.State)

	r := svc.HandleText(ctx, userID, "no time here")
	assert.Equal(t, textBadCommand, r.Messages[0].Text)
	assert.Zero(t, api.bookCalls)
	assert.Equal(t, model.AdminStateCommand, store.Get(userID).Admin.State)
}
