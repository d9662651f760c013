package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/database/testutil"
	"github.com/bolajio/portfolio-api/internal/models"
)

func newBookingFixture(t *testing.T, opts ...BookingOption) (*BookingService, *stubMailer, *gorm.DB) {
	t.Helper()
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	mailer := &stubMailer{}
	svc, err := NewBookingService(db, mailer, opts...)
	require.NoError(t, err)
	return svc, mailer, db
}

func TestBookingAvailabilityValidation(t *testing.T) {
	svc, _, _ := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.CreateAvailability(ctx, CreateAvailabilityInput{DayOfWeek: "Funday", StartTime: "09:00", EndTime: "17:00"})
	requireAppCode(t, err, "BAD_REQUEST")

	_, err = svc.CreateAvailability(ctx, CreateAvailabilityInput{DayOfWeek: "Monday", StartTime: "9am", EndTime: "17:00"})
	requireAppCode(t, err, "BAD_REQUEST")

	_, err = svc.CreateAvailability(ctx, CreateAvailabilityInput{DayOfWeek: "Monday", StartTime: "17:00", EndTime: "09:00"})
	requireAppCode(t, err, "BAD_REQUEST")

	window, err := svc.CreateAvailability(ctx, CreateAvailabilityInput{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "17:00"})
	require.NoError(t, err)

	windows, err := svc.ListAvailability(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 1)

	require.NoError(t, svc.DeleteAvailability(ctx, window.ID))
	err = svc.DeleteAvailability(ctx, window.ID)
	requireAppCode(t, err, "NOT_FOUND")
}

func TestBookingCreateNotifiesAndStoresPending(t *testing.T) {
	svc, mailer, db := newBookingFixture(t, WithBookingRecipient("owner@example.com"))
	ctx := context.Background()

	meeting := time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)
	booking, err := svc.CreateBooking(ctx, CreateBookingInput{
		ClientName:      "Ada",
		ClientEmail:     "Ada@Example.com",
		MeetingTime:     meeting,
		MeetingDuration: 30,
		Notes:           "Discuss project",
	})
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusPending, booking.Status)
	require.Equal(t, "ada@example.com", booking.ClientEmail)

	messages := mailer.sent()
	require.Len(t, messages, 2)
	require.Equal(t, []string{"owner@example.com"}, messages[0].To)
	require.Equal(t, []string{"ada@example.com"}, messages[1].To)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestBookingSurvivesMailFailure(t *testing.T) {
	svc, mailer, db := newBookingFixture(t, WithBookingRecipient("owner@example.com"))
	mailer.err = errors.New("smtp down")

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		ClientName:      "Ada",
		ClientEmail:     "ada@example.com",
		MeetingTime:     time.Now().Add(24 * time.Hour),
		MeetingDuration: 30,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestBookingInputValidation(t *testing.T) {
	svc, _, _ := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, CreateBookingInput{
		ClientName: "", ClientEmail: "a@example.com", MeetingTime: time.Now(), MeetingDuration: 30,
	})
	requireAppCode(t, err, "BAD_REQUEST")

	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		ClientName: "Ada", ClientEmail: "a@example.com", MeetingDuration: 30,
	})
	requireAppCode(t, err, "BAD_REQUEST")

	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		ClientName: "Ada", ClientEmail: "a@example.com", MeetingTime: time.Now(), MeetingDuration: 0,
	})
	requireAppCode(t, err, "BAD_REQUEST")
}

func TestBookingStatusTransitions(t *testing.T) {
	svc, _, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, CreateBookingInput{
		ClientName:      "Ada",
		ClientEmail:     "ada@example.com",
		MeetingTime:     time.Now().Add(24 * time.Hour),
		MeetingDuration: 45,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateBookingStatus(ctx, booking.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusConfirmed, updated.Status)

	_, err = svc.UpdateBookingStatus(ctx, booking.ID, "Rescheduled")
	requireAppCode(t, err, "BAD_REQUEST")

	_, err = svc.UpdateBookingStatus(ctx, "missing", models.BookingStatusCancelled)
	requireAppCode(t, err, "NOT_FOUND")
}
