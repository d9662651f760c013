package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/models"
	appErrors "github.com/bolajio/portfolio-api/pkg/errors"
	"github.com/bolajio/portfolio-api/pkg/logger"
	"github.com/bolajio/portfolio-api/pkg/mail"
	"github.com/bolajio/portfolio-api/pkg/metrics"
)

var weekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

// BookingOption customises the BookingService.
type BookingOption func(*BookingService)

// WithBookingRecipient sets the inbox notified of new bookings.
func WithBookingRecipient(email string) BookingOption {
	return func(s *BookingService) {
		s.recipient = email
	}
}

// BookingService manages availability windows and meeting requests.
type BookingService struct {
	db        *gorm.DB
	mailer    mail.Mailer
	recipient string
}

// NewBookingService constructs a BookingService.
func NewBookingService(db *gorm.DB, mailer mail.Mailer, opts ...BookingOption) (*BookingService, error) {
	if db == nil {
		return nil, errors.New("booking service: db is required")
	}

	service := &BookingService{db: db, mailer: mailer}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

// ListAvailability returns the weekly windows clients can book within.
func (s *BookingService) ListAvailability(ctx context.Context) ([]models.Availability, error) {
	var windows []models.Availability
	if err := s.db.WithContext(ctx).
		Order("day_of_week ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, fmt.Errorf("booking service: list availability: %w", err)
	}
	return windows, nil
}

// CreateAvailabilityInput captures a weekly availability window.
type CreateAvailabilityInput struct {
	DayOfWeek string `json:"day_of_week" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// CreateAvailability stores a new window after validating its shape.
func (s *BookingService) CreateAvailability(ctx context.Context, input CreateAvailabilityInput) (*models.Availability, error) {
	day := strings.TrimSpace(input.DayOfWeek)
	if !weekdays[day] {
		return nil, appErrors.NewBadRequest("day_of_week must be a weekday name")
	}
	if !isClockTime(input.StartTime) || !isClockTime(input.EndTime) {
		return nil, appErrors.NewBadRequest("start_time and end_time must be HH:MM")
	}
	if input.StartTime >= input.EndTime {
		return nil, appErrors.NewBadRequest("start_time must be before end_time")
	}

	window := models.Availability{
		DayOfWeek: day,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}
	if err := s.db.WithContext(ctx).Create(&window).Error; err != nil {
		return nil, fmt.Errorf("booking service: create availability: %w", err)
	}
	return &window, nil
}

// DeleteAvailability removes a window.
func (s *BookingService) DeleteAvailability(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Availability{})
	if result.Error != nil {
		return fmt.Errorf("booking service: delete availability: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFound("Availability window not found")
	}
	return nil
}

// isClockTime reports whether s looks like a 24h HH:MM value.
func isClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil && len(s) == 5
}

// CreateBookingInput captures a client meeting request.
type CreateBookingInput struct {
	ClientName      string    `json:"client_name" validate:"required"`
	ClientEmail     string    `json:"client_email" validate:"required,email"`
	MeetingTime     time.Time `json:"meeting_time" validate:"required"`
	MeetingDuration int       `json:"meeting_duration" validate:"required,gt=0"`
	Notes           string    `json:"notes"`
}

// CreateBooking records a meeting request and notifies both sides by email.
// The booking stands even when a notification fails.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	name := strings.TrimSpace(input.ClientName)
	email := strings.TrimSpace(strings.ToLower(input.ClientEmail))
	if name == "" || email == "" {
		return nil, appErrors.NewBadRequest("client name and email are required")
	}
	if input.MeetingTime.IsZero() {
		return nil, appErrors.NewBadRequest("meeting_time is required")
	}
	if input.MeetingDuration <= 0 {
		return nil, appErrors.NewBadRequest("meeting_duration must be positive")
	}

	booking := models.Booking{
		ClientName:      name,
		ClientEmail:     email,
		MeetingTime:     input.MeetingTime.UTC(),
		MeetingDuration: input.MeetingDuration,
		Notes:           input.Notes,
		Status:          models.BookingStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("booking service: create booking: %w", err)
	}

	metrics.BookingsReceived.Inc()
	s.sendBookingMail(ctx, booking)

	return &booking, nil
}

func (s *BookingService) sendBookingMail(ctx context.Context, booking models.Booking) {
	if s.mailer == nil {
		return
	}
	log := logger.WithModule("booking")
	when := booking.MeetingTime.Format("Mon, 02 Jan 2006 15:04 MST")

	if s.recipient != "" {
		notice := mail.Message{
			To:      []string{s.recipient},
			Subject: fmt.Sprintf("New Booking Request from %s", booking.ClientName),
			Body: fmt.Sprintf(
				"New booking request.\n\nClient: %s\nEmail: %s\nTime: %s\nDuration: %d minutes\nNotes: %s\n",
				booking.ClientName, booking.ClientEmail, when, booking.MeetingDuration, booking.Notes,
			),
		}
		if err := s.mailer.Send(ctx, notice); err != nil {
			log.Warn("booking notification to owner failed", zap.Error(err))
		}
	}

	receipt := mail.Message{
		To:      []string{booking.ClientEmail},
		Subject: "Booking Request Received",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour booking request for %s (%d minutes) has been received. You'll get a confirmation soon.\n",
			booking.ClientName, when, booking.MeetingDuration,
		),
	}
	if err := s.mailer.Send(ctx, receipt); err != nil {
		log.Warn("booking confirmation to client failed", zap.Error(err))
	}
}

// ListBookings returns all bookings for the admin panel, soonest first.
func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).
		Order("meeting_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("booking service: list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus moves a booking into a new state.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
	default:
		return nil, appErrors.NewBadRequest("status must be Pending, Confirmed or Cancelled")
	}

	var booking models.Booking
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Booking not found")
		}
		return nil, fmt.Errorf("booking service: find booking: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&booking).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("booking service: update status: %w", err)
	}
	booking.Status = status
	return &booking, nil
}
