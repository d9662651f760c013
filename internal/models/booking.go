package models

import "time"

// Booking states. A booking starts Pending and is confirmed or cancelled out
// of band by the admin.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// Availability declares a weekly window during which meetings can be booked.
// Times are stored as HH:MM strings with no timezone.
type Availability struct {
	BaseModel

	DayOfWeek string `gorm:"size:10;not null" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
}

// Booking is a client meeting request.
type Booking struct {
	BaseModel

	ClientName      string    `gorm:"not null" json:"client_name"`
	ClientEmail     string    `gorm:"not null" json:"client_email"`
	MeetingTime     time.Time `gorm:"not null" json:"meeting_time"`
	MeetingDuration int       `gorm:"not null" json:"meeting_duration"`
	Notes           string    `gorm:"type:text" json:"notes"`
	Status          string    `gorm:"size:20;default:Pending" json:"status"`
}
