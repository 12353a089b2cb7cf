package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/shev-k/mikes-cut/models"
	"github.com/shev-k/mikes-cut/utils"
)

// ErrSlotTaken signals that the requested (barber, date, time) slot already
// has a non-cancelled booking.
var ErrSlotTaken = errors.New("slot already booked")

// BookingService handles the appointment flow: availability lookups and
// booking creation for both the public form and the staff calendar.
type BookingService struct {
	db     *gorm.DB
	mailer *Mailer
}

// NewBookingService creates a new booking service
func NewBookingService(db *gorm.DB, mailer *Mailer) *BookingService {
	return &BookingService{db: db, mailer: mailer}
}

// GetBarbers returns all barbers ordered by name. On a query failure the
// error is logged and an empty list returned so the booking page still renders.
func (s *BookingService) GetBarbers() []models.Barber {
	var barbers []models.Barber
	if err := s.db.Order("name").Find(&barbers).Error; err != nil {
		log.Printf("❌ Failed to fetch barbers: %v", err)
		return []models.Barber{}
	}
	return barbers
}

// GetServices returns all services ordered by price, cheapest first.
func (s *BookingService) GetServices() []models.Service {
	var services []models.Service
	if err := s.db.Order("price").Find(&services).Error; err != nil {
		log.Printf("❌ Failed to fetch services: %v", err)
		return []models.Service{}
	}
	return services
}

// UnavailableSlots returns the booked times for a barber on a date, excluding
// cancelled bookings. The wizard uses this to disable conflicting choices.
func (s *BookingService) UnavailableSlots(barberID uint, date string) ([]string, error) {
	var times []string
	err := s.db.Model(&models.Booking{}).
		Where("barber_id = ? AND booking_date = ? AND status <> ?", barberID, date, models.BookingStatusCancelled).
		Pluck("booking_time", &times).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailable slots: %w", err)
	}
	return times, nil
}

// Create handles the public booking form: normalizes the display time, checks
// the slot, inserts the booking and fires the confirmation email. The
// availability pre-check gives a friendly error; the unique index on active
// slots is the authoritative conflict signal, so a concurrent submission that
// slips past the check still fails cleanly instead of double-booking.
func (s *BookingService) Create(req models.CreateBookingRequest) (*models.Booking, error) {
	bookingTime, err := utils.To24HourTime(req.Time)
	if err != nil {
		return nil, err
	}

	taken, err := s.slotTaken(req.BarberID, req.Date, bookingTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	booking := models.Booking{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		BookingDate:   req.Date,
		BookingTime:   bookingTime,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Status:        models.BookingStatusConfirmed,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.sendConfirmation(&booking, req.Time)

	return &booking, nil
}

// sendConfirmation emails the customer. Failures are logged and never fail
// the booking.
func (s *BookingService) sendConfirmation(booking *models.Booking, displayTime string) {
	var barber models.Barber
	var service models.Service
	if err := s.db.First(&barber, booking.BarberID).Error; err != nil {
		log.Printf("⚠️ Missing barber %d for confirmation email: %v", booking.BarberID, err)
		return
	}
	if err := s.db.First(&service, booking.ServiceID).Error; err != nil {
		log.Printf("⚠️ Missing service %d for confirmation email: %v", booking.ServiceID, err)
		return
	}

	err := s.mailer.SendBookingConfirmation(BookingConfirmation{
		CustomerEmail: booking.CustomerEmail,
		CustomerName:  booking.CustomerName,
		BarberName:    barber.Name,
		ServiceName:   service.Name,
		BookingDate:   booking.BookingDate,
		BookingTime:   displayTime, // original 12h format for the email
		Price:         service.Price,
	})
	if err != nil {
		log.Printf("❌ Failed to send confirmation email: %v", err)
	}
}

// ListAll returns every booking with barber and service details, newest date
// first, earliest time first within a date. Used by the staff calendar.
func (s *BookingService) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Barber").Preload("Service").
		Order("booking_date DESC").Order("booking_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// ListForBarber returns a single barber's non-cancelled bookings, newest
// first. Staff barber accounts only ever see their own rows.
func (s *BookingService) ListForBarber(barberID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Service").
		Where("barber_id = ? AND status <> ?", barberID, models.BookingStatusCancelled).
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch barber bookings: %w", err)
	}
	return bookings, nil
}

// StaffCreate creates a booking from the staff calendar. Times arrive already
// in 24-hour form; the slot constraint still applies.
func (s *BookingService) StaffCreate(req models.StaffBookingRequest) (*models.Booking, error) {
	status := models.BookingStatus(req.Status)
	if status == "" {
		status = models.BookingStatusConfirmed
	}

	booking := models.Booking{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		BookingDate:   req.BookingDate,
		BookingTime:   req.BookingTime,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Status:        status,
		Notes:         req.Notes,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, nil
}

// Update rewrites a booking's fields from the staff calendar.
func (s *BookingService) Update(id uint, req models.StaffBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		return nil, fmt.Errorf("booking %d not found: %w", id, err)
	}

	status := models.BookingStatus(req.Status)
	if status == "" {
		status = models.BookingStatusConfirmed
	}

	booking.BarberID = req.BarberID
	booking.ServiceID = req.ServiceID
	booking.BookingDate = req.BookingDate
	booking.BookingTime = req.BookingTime
	booking.CustomerName = req.CustomerName
	booking.CustomerEmail = req.CustomerEmail
	booking.CustomerPhone = req.CustomerPhone
	booking.Status = status
	booking.Notes = req.Notes

	if err := s.db.Save(&booking).Error; err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return &booking, nil
}

// Delete removes a booking permanently (explicit admin delete).
func (s *BookingService) Delete(id uint) error {
	result := s.db.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("booking %d not found", id)
	}
	return nil
}

func (s *BookingService) slotTaken(barberID uint, date, bookingTime string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("barber_id = ? AND booking_date = ? AND booking_time = ? AND status <> ?",
			barberID, date, bookingTime, models.BookingStatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// isSlotConflict reports whether an insert failed on the active-slot unique
// index.
func isSlotConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
