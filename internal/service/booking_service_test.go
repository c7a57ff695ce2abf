package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/padel_booking_bot/internal/gateway"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func booking(id, date, slot string, status model.BookingStatus) model.Booking {
	return model.Booking{ID: id, UserID: "u1", CourtID: "c1", Date: date, TimeSlot: slot, NumberOfPlayers: 2, Status: status}
}

func TestBookingServiceStartsIdle(t *testing.T) {
	svc := NewBookingService(&fakeGateway{}, zap.NewNop())

	assert.Equal(t, StatusIdle, svc.Status())
	assert.Empty(t, svc.Bookings())
	assert.NoError(t, svc.LastError())
}

func TestBookingServiceFetchReplaces(t *testing.T) {
	lists := [][]model.Booking{
		{booking("b1", "2025-06-10", "18:00", model.BookingStatusConfirmed), booking("b2", "2025-06-11", "19:30", model.BookingStatusConfirmed)},
		{booking("b3", "2025-06-12", "18:00", model.BookingStatusConfirmed)},
	}
	calls := 0
	gw := &fakeGateway{listBookings: func(userID string) ([]model.Booking, error) {
		assert.Equal(t, "u1", userID)
		list := lists[calls]
		calls++
		return list, nil
	}}
	svc := NewBookingService(gw, zap.NewNop())

	_, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, svc.Bookings(), 2)

	got, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b3", got[0].ID)
	assert.Equal(t, StatusReady, svc.Status())
}

func TestBookingServiceCreateAppendsOnce(t *testing.T) {
	existing := booking("b1", "2025-06-10", "18:00", model.BookingStatusConfirmed)
	created := booking("b2", "2025-06-11", "19:30", model.BookingStatusConfirmed)
	gw := &fakeGateway{
		listBookings: func(string) ([]model.Booking, error) { return []model.Booking{existing}, nil },
		createBooking: func(in model.NewBooking) (*model.Booking, error) {
			b := created
			return &b, nil
		},
	}
	svc := NewBookingService(gw, zap.NewNop())

	_, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)

	got, err := svc.Create(context.Background(), model.NewBooking{UserID: "u1", CourtID: "c1", Date: "2025-06-11", TimeSlot: "19:30", NumberOfPlayers: 2})
	require.NoError(t, err)
	assert.Equal(t, "b2", got.ID)

	// a retry that returns the same entity must not duplicate it
	_, err = svc.Create(context.Background(), model.NewBooking{UserID: "u1"})
	require.NoError(t, err)

	ids := []string{}
	for _, b := range svc.Bookings() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"b1", "b2"}, ids)
}

func TestBookingServiceFailureKeepsCollection(t *testing.T) {
	existing := booking("b1", "2025-06-10", "18:00", model.BookingStatusConfirmed)
	gw := &fakeGateway{
		listBookings: func(string) ([]model.Booking, error) { return []model.Booking{existing}, nil },
		createBooking: func(model.NewBooking) (*model.Booking, error) {
			return nil, rejectedError("CourtUnavailable", "Pista no disponible")
		},
	}
	svc := NewBookingService(gw, zap.NewNop())

	_, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), model.NewBooking{UserID: "u1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrServerRejected)

	assert.Equal(t, StatusFailed, svc.Status())
	assert.Equal(t, []model.Booking{existing}, svc.Bookings())
	require.Error(t, svc.LastError())
	assert.Equal(t, "Pista no disponible", svc.LastError().Error())
}

func TestBookingServiceFetchFailureKeepsPrevious(t *testing.T) {
	existing := booking("b1", "2025-06-10", "18:00", model.BookingStatusConfirmed)
	fail := false
	gw := &fakeGateway{listBookings: func(string) ([]model.Booking, error) {
		if fail {
			return nil, &gateway.Error{Kind: gateway.KindNetworkUnreachable, Message: gateway.MessageNetwork}
		}
		return []model.Booking{existing}, nil
	}}
	svc := NewBookingService(gw, zap.NewNop())

	_, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)

	fail = true
	_, err = svc.Fetch(context.Background(), "u1")
	assert.ErrorIs(t, err, gateway.ErrNetworkUnreachable)
	assert.Equal(t, StatusFailed, svc.Status())
	assert.Len(t, svc.Bookings(), 1)

	fail = false
	_, err = svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)
	assert.NoError(t, svc.LastError())
	assert.Equal(t, StatusReady, svc.Status())
}

func TestBookingServiceCancelRemoves(t *testing.T) {
	gw := &fakeGateway{
		listBookings: func(string) ([]model.Booking, error) {
			return []model.Booking{
				booking("b1", "2025-06-10", "18:00", model.BookingStatusConfirmed),
				booking("b2", "2025-06-11", "18:00", model.BookingStatusConfirmed),
			}, nil
		},
		cancelBooking: func(id string) error {
			if id == "missing" {
				return rejectedError("NotFound", "Reserva no trobada")
			}
			return nil
		},
	}
	svc := NewBookingService(gw, zap.NewNop())
	_, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), "b1"))
	require.Len(t, svc.Bookings(), 1)
	assert.Equal(t, "b2", svc.Bookings()[0].ID)
	_, ok := svc.Booking("b1")
	assert.False(t, ok)

	err = svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, gateway.ErrServerRejected)
	assert.Len(t, svc.Bookings(), 1)
}

func TestBookingServiceBusyWhileLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	gw := &fakeGateway{listBookings: func(string) ([]model.Booking, error) {
		close(started)
		<-release
		return nil, nil
	}}
	svc := NewBookingService(gw, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := svc.Fetch(context.Background(), "u1")
		done <- err
	}()

	<-started
	assert.Equal(t, StatusLoading, svc.Status())
	assert.ErrorIs(t, svc.Cancel(context.Background(), "b1"), ErrBusy)
	_, err := svc.Fetch(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, StatusLoading, svc.Status())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StatusReady, svc.Status())
	assert.Equal(t, []string{"ListBookings"}, gw.Calls())
}
