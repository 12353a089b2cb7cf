package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is one appointment slot taken by a customer. Dates are stored as
// YYYY-MM-DD strings and times as 24-hour HH:MM:SS strings so that slot
// comparison and stats grouping work on exact values. A partial unique index
// on (barber_id, booking_date, booking_time) for non-cancelled rows enforces
// the one-booking-per-slot invariant at the database level.
type Booking struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	BarberID      uint          `json:"barber_id" gorm:"not null;index"`
	ServiceID     uint          `json:"service_id" gorm:"not null"`
	BookingDate   string        `json:"booking_date" gorm:"type:varchar(10);not null;index"`
	BookingTime   string        `json:"booking_time" gorm:"type:varchar(8);not null"`
	CustomerName  string        `json:"customer_name" gorm:"type:varchar(100);not null"`
	CustomerEmail string        `json:"customer_email" gorm:"type:varchar(255);not null"`
	CustomerPhone string        `json:"customer_phone" gorm:"type:varchar(30)"`
	Status        BookingStatus `json:"status" gorm:"type:varchar(20);default:'confirmed';check:status IN ('confirmed','pending','cancelled','completed')"`
	Notes         *string       `json:"notes" gorm:"size:1000"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	Barber  Barber  `json:"barber,omitempty" gorm:"foreignKey:BarberID"`
	Service Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

func (Booking) TableName() string {
	return "bookings"
}

// CreateBookingRequest is the public booking-form payload. Time arrives in the
// 12-hour display format ("2:00 PM") and is normalized before storage.
type CreateBookingRequest struct {
	BarberID      uint   `json:"barber_id" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
}

// StaffBookingRequest is the calendar payload used by staff to create or
// update a booking directly. Time is already in 24-hour HH:MM:SS form.
type StaffBookingRequest struct {
	BarberID      uint    `json:"barber_id" binding:"required"`
	ServiceID     uint    `json:"service_id" binding:"required"`
	BookingDate   string  `json:"booking_date" binding:"required"`
	BookingTime   string  `json:"booking_time" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes"`
}
