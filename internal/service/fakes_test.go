package service

import (
	"context"
	"sync"

	"github.com/Freeeeeet/padel_booking_bot/internal/gateway"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
)

// fakeGateway records calls and answers from its function fields
type fakeGateway struct {
	mu    sync.Mutex
	calls []string

	listBookings  func(userID string) ([]model.Booking, error)
	createBooking func(in model.NewBooking) (*model.Booking, error)
	cancelBooking func(id string) error
	availability  func(date string) (*model.DayAvailability, error)
	listRequests  func(userID string) ([]model.BookingRequest, error)
	createRequest func(in model.NewBookingRequest) (*model.BookingRequest, error)
	cancelRequest func(id string) error
	listUsers     func() ([]model.User, error)
	getUser       func(id string) (*model.User, error)
	login         func(email, password string) (*gateway.LoginResponse, error)
	logout        func() error
	currentUser   func() (*model.User, error)
}

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeGateway) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeGateway) ListBookings(_ context.Context, userID string) ([]model.Booking, error) {
	f.record("ListBookings")
	return f.listBookings(userID)
}

func (f *fakeGateway) CreateBooking(_ context.Context, in model.NewBooking) (*model.Booking, error) {
	f.record("CreateBooking")
	return f.createBooking(in)
}

func (f *fakeGateway) CancelBooking(_ context.Context, id string) error {
	f.record("CancelBooking")
	return f.cancelBooking(id)
}

func (f *fakeGateway) Availability(_ context.Context, date string) (*model.DayAvailability, error) {
	f.record("Availability")
	return f.availability(date)
}

func (f *fakeGateway) ListRequests(_ context.Context, userID string) ([]model.BookingRequest, error) {
	f.record("ListRequests")
	return f.listRequests(userID)
}

func (f *fakeGateway) CreateRequest(_ context.Context, in model.NewBookingRequest) (*model.BookingRequest, error) {
	f.record("CreateRequest")
	return f.createRequest(in)
}

func (f *fakeGateway) CancelRequest(_ context.Context, id string) error {
	f.record("CancelRequest")
	return f.cancelRequest(id)
}

func (f *fakeGateway) ListUsers(_ context.Context) ([]model.User, error) {
	f.record("ListUsers")
	return f.listUsers()
}

func (f *fakeGateway) GetUser(_ context.Context, id string) (*model.User, error) {
	f.record("GetUser")
	return f.getUser(id)
}

func (f *fakeGateway) Login(_ context.Context, email, password string) (*gateway.LoginResponse, error) {
	f.record("Login")
	return f.login(email, password)
}

func (f *fakeGateway) Logout(_ context.Context) error {
	f.record("Logout")
	return f.logout()
}

func (f *fakeGateway) CurrentUser(_ context.Context) (*model.User, error) {
	f.record("CurrentUser")
	return f.currentUser()
}

func rejectedError(code, msg string) error {
	return &gateway.Error{Kind: gateway.KindServerRejected, Code: code, Message: msg, Status: 400}
}
