package services

import (
	"log"

	"github.com/shev-k/mikes-cut/config"
)

// BookingConfirmation carries the details rendered into the confirmation
// email. BookingTime keeps the customer-facing 12-hour format.
type BookingConfirmation struct {
	CustomerEmail string
	CustomerName  string
	BarberName    string
	ServiceName   string
	BookingDate   string
	BookingTime   string
	Price         float64
}

// Mailer sends booking notifications. Sending is disabled in the current
// deployment: every send logs and reports success without transmitting
// anything, and callers must treat failures as best-effort either way.
type Mailer struct {
	enabled bool
	from    string
}

// NewMailer creates a mailer from the loaded configuration
func NewMailer() *Mailer {
	return &Mailer{
		enabled: config.AppConfig.Mail.Enabled,
		from:    config.AppConfig.Mail.FromAddress,
	}
}

// SendBookingConfirmation delivers the booking confirmation to the customer.
func (m *Mailer) SendBookingConfirmation(c BookingConfirmation) error {
	if !m.enabled {
		log.Println("📧 Email sending is DISABLED. Mocking success for booking confirmation.")
		return nil
	}

	// No delivery provider is wired up yet; log the rendered summary so the
	// enabled path is observable. TODO: plug in the transactional email
	// provider once an account exists for the shop domain.
	log.Printf("📧 Booking confirmation from %s to %s: %s with %s on %s at %s ($%.2f)",
		m.from, c.CustomerEmail, c.ServiceName, c.BarberName, c.BookingDate, c.BookingTime, c.Price)
	return nil
}

// SendBookingReminder delivers a day-before reminder. Same mock behavior as
// confirmations.
func (m *Mailer) SendBookingReminder(c BookingConfirmation) error {
	if !m.enabled {
		log.Println("📧 Email sending is DISABLED. Mocking success for reminder.")
		return nil
	}

	log.Printf("📧 Booking reminder from %s to %s: %s at %s on %s",
		m.from, c.CustomerEmail, c.ServiceName, c.BookingTime, c.BookingDate)
	return nil
}
