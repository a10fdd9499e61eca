package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/evently/evently-ui/internal/domain/model"
	"github.com/evently/evently-ui/internal/mocks"
	"github.com/evently/evently-ui/internal/ports"
	"github.com/evently/evently-ui/internal/testutil"
)

func newTestCatalog(events ports.EventAPI, admin ports.AdminAPI) *CatalogService {
	return NewCatalogService(CatalogServiceOptions{Events: events, Admin: admin})
}

func TestCatalogBook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventAPI(ctrl)
	admin := mocks.NewMockAdminAPI(ctrl)

	listing := []model.Event{testutil.NewEvent().WithID(5).WithAvailable(10).Build()}
	req := model.BookingRequest{NumberOfTickets: 3, EventID: 5}

	events.EXPECT().AvailableEvents(gomock.Any()).Return(listing, nil)
	events.EXPECT().Book(gomock.Any(), "token", req).
		Return(model.BookingResponse{ID: 1, EventID: 5, NumberOfTickets: 3}, nil)

	svc := newTestCatalog(events, admin)
	booked, err := svc.Book(context.Background(), "token", req)

	require.NoError(t, err)
	assert.Equal(t, 3, booked.NumberOfTickets)
}

func TestCatalogBook_ZeroTicketsNeverReachesAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventAPI(ctrl)
	admin := mocks.NewMockAdminAPI(ctrl)

	listing := []model.Event{testutil.NewEvent().WithID(5).WithAvailable(10).Build()}
	events.EXPECT().AvailableEvents(gomock.Any()).Return(listing, nil)
	// No Book expectation: the quantity guard must reject before the call.

	svc := newTestCatalog(events, admin)
	_, err := svc.Book(context.Background(), "token", model.BookingRequest{NumberOfTickets: 0, EventID: 5})

	assert.ErrorIs(t, err, model.ErrTooFewTickets)
}

func TestCatalogBook_ExcessTicketsNeverReachesAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventAPI(ctrl)
	admin := mocks.NewMockAdminAPI(ctrl)

	listing := []model.Event{testutil.NewEvent().WithID(5).WithAvailable(2).Build()}
	events.EXPECT().AvailableEvents(gomock.Any()).Return(listing, nil)

	svc := newTestCatalog(events, admin)
	_, err := svc.Book(context.Background(), "token", model.BookingRequest{NumberOfTickets: 3, EventID: 5})

	assert.ErrorIs(t, err, model.ErrTooManyTickets)
}

func TestCatalogBook_UnknownEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventAPI(ctrl)
	admin := mocks.NewMockAdminAPI(ctrl)

	events.EXPECT().AvailableEvents(gomock.Any()).Return(nil, nil)

	svc := newTestCatalog(events, admin)
	_, err := svc.Book(context.Background(), "token", model.BookingRequest{NumberOfTickets: 1, EventID: 404})

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCatalogBook_AvailabilityFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventAPI(ctrl)
	admin := mocks.NewMockAdminAPI(ctrl)

	events.EXPECT().AvailableEvents(gomock.Any()).Return(nil, errors.New("timeout"))

	svc := newTestCatalog(events, admin)
	_, err := svc.Book(context.Background(), "token", model.BookingRequest{NumberOfTickets: 1, EventID: 5})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "check availability")
}

func TestCatalogCreateEvent_ValidationShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventAPI(ctrl)
	admin := mocks.NewMockAdminAPI(ctrl)
	// No CreateEvent expectation: invalid forms never reach the API.

	svc := newTestCatalog(events, admin)
	_, err := svc.CreateEvent(context.Background(), "token", model.CreateEventRequest{})

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "title")
	assert.Contains(t, validationErr.Fields, "venue")
}

func TestCatalogAdminPassthroughs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventAPI(ctrl)
	admin := mocks.NewMockAdminAPI(ctrl)
	svc := newTestCatalog(events, admin)
	ctx := context.Background()

	admin.EXPECT().ListEvents(ctx, "token").Return([]model.Event{{ID: 1}}, nil)
	listing, err := svc.AllEvents(ctx, "token")
	require.NoError(t, err)
	assert.Len(t, listing, 1)

	admin.EXPECT().DeleteEvent(ctx, "token", int64(1)).Return(nil)
	assert.NoError(t, svc.DeleteEvent(ctx, "token", 1))

	admin.EXPECT().ListBookings(ctx, "token").Return([]model.Booking{{ID: 2}}, nil)
	bookings, err := svc.AllBookings(ctx, "token")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestNewCatalogService_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() { NewCatalogService(CatalogServiceOptions{}) })
}
