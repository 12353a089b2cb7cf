package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shev-k/mikes-cut/database"
	"github.com/shev-k/mikes-cut/models"
	"github.com/shev-k/mikes-cut/services"
	ws "github.com/shev-k/mikes-cut/websocket"
)

// slotTakenMessage is the user-facing text shown when a slot conflict is hit,
// either by the availability pre-check or by the database constraint.
const slotTakenMessage = "This time slot is already booked. Please choose another time."

var dashboardHub *ws.Hub

// InitDashboardHub wires the live dashboard feed into the booking handlers
func InitDashboardHub(hub *ws.Hub) {
	dashboardHub = hub
}

func bookingService() *services.BookingService {
	return services.NewBookingService(database.GetDB(), services.NewMailer())
}

// RegisterBookingRoutes registers the public booking flow endpoints
func RegisterBookingRoutes(router *gin.RouterGroup) {
	router.GET("/barbers", GetBarbers)
	router.GET("/services", GetServices)
	router.GET("/bookings/unavailable", GetUnavailableSlots)
	router.POST("/bookings", CreateBooking)
}

// RegisterStaffBookingRoutes registers the staff calendar endpoints
func RegisterStaffBookingRoutes(router *gin.RouterGroup) {
	router.GET("/bookings", GetAllBookings)
	router.POST("/bookings", StaffCreateBooking)
	router.PUT("/bookings/:id", UpdateBooking)
	router.DELETE("/bookings/:id", DeleteBooking)
}

// GetBarbers returns all barbers for the booking wizard, ordered by name
func GetBarbers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookingService().GetBarbers(),
	})
}

// GetServices returns all services ordered by price
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookingService().GetServices(),
	})
}

// GetUnavailableSlots returns booked times for a barber on a date so the
// wizard can disable them
func GetUnavailableSlots(c *gin.Context) {
	barberID, err := strconv.Atoi(c.Query("barber_id"))
	if err != nil || barberID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barber_id"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	times, err := bookingService().UnavailableSlots(uint(barberID), date)
	if err != nil {
		log.Printf("❌ Failed to fetch unavailable slots: %v", err)
		// Same degradation as the rest of the read path: the wizard gets an
		// empty set rather than an error page.
		times = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    times,
	})
}

// CreateBooking handles the public booking form submission
func CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	booking, err := bookingService().Create(req)
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": slotTakenMessage})
			return
		}
		log.Printf("❌ Failed to create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create booking"})
		return
	}

	notifyDashboards(booking)

	log.Printf("✅ Booking created: %s with barber %d on %s at %s",
		booking.CustomerName, booking.BarberID, booking.BookingDate, booking.BookingTime)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    booking,
	})
}

// GetAllBookings returns every booking for the staff calendar
func GetAllBookings(c *gin.Context) {
	bookings, err := bookingService().ListAll()
	if err != nil {
		log.Printf("❌ Failed to fetch bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
	})
}

// StaffCreateBooking creates a booking directly from the staff calendar
func StaffCreateBooking(c *gin.Context) {
	var req models.StaffBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	booking, err := bookingService().StaffCreate(req)
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": slotTakenMessage})
			return
		}
		log.Printf("❌ Failed to create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	notifyDashboards(booking)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"data":    booking,
	})
}

// UpdateBooking rewrites a booking from the staff calendar
func UpdateBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req models.StaffBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	booking, err := bookingService().Update(uint(id), req)
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": slotTakenMessage})
			return
		}
		log.Printf("❌ Failed to update booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated successfully",
		"data":    booking,
	})
}

// DeleteBooking removes a booking (explicit admin delete)
func DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := bookingService().Delete(uint(id)); err != nil {
		log.Printf("❌ Failed to delete booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking deleted successfully",
	})
}

func notifyDashboards(booking *models.Booking) {
	if dashboardHub != nil {
		dashboardHub.NotifyBookingCreated(booking)
	}
}
