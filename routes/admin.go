package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shev-k/mikes-cut/database"
	"github.com/shev-k/mikes-cut/models"
	"github.com/shev-k/mikes-cut/services"
	"github.com/shev-k/mikes-cut/utils"
)

func statsService() *services.StatsService {
	return services.NewStatsService(database.DB)
}

// RegisterAdminRoutes registers the admin dashboard and management endpoints
func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/stats", GetDashboardStats)

	router.POST("/barbers", CreateBarber)
	router.PUT("/barbers/:id", UpdateBarber)
	router.DELETE("/barbers/:id", DeleteBarber)
	router.PUT("/barbers/:id/commission", UpdateBarberCommission)
	router.GET("/barbers/:id/stats", GetBarberStatsByID)

	router.POST("/services", CreateService)
	router.PUT("/services/:id", UpdateService)
	router.DELETE("/services/:id", DeleteService)
}

// RegisterStaffStatsRoutes registers the barber's own dashboard endpoint
func RegisterStaffStatsRoutes(router *gin.RouterGroup) {
	router.GET("/stats", GetMyBarberStats)
}

// GetDashboardStats returns the admin revenue report for a month. Month and
// year come from query params; absent or out-of-range values fall back to the
// current month.
func GetDashboardStats(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	stats, err := statsService().AdminStats(month, year)
	if err != nil {
		log.Printf("❌ Failed to compute dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// GetBarberStatsByID returns one barber's performance stats for the admin view
func GetBarberStatsByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barber ID"})
		return
	}

	stats, err := statsService().BarberStats(uint(id))
	if err != nil {
		log.Printf("❌ Failed to compute barber stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// GetMyBarberStats returns the logged-in barber's own dashboard. Accounts
// without a linked barber profile get 403 rather than someone else's numbers.
func GetMyBarberStats(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	if user.Role == models.RoleBarber {
		if user.BarberID == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "No barber profile linked to this account"})
			return
		}

		stats, err := statsService().BarberStats(*user.BarberID)
		if err != nil {
			log.Printf("❌ Failed to compute barber stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    stats,
		})
		return
	}

	// Admins land on the full report instead.
	GetDashboardStats(c)
}

// CreateBarber adds a staff member to the roster
func CreateBarber(c *gin.Context) {
	var req models.BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	barber := models.Barber{
		Name:           req.Name,
		Slug:           slug,
		Title:          req.Title,
		Bio:            req.Bio,
		ImageURL:       req.ImageURL,
		CommissionRate: req.CommissionRate,
	}

	if err := database.DB.Create(&barber).Error; err != nil {
		log.Printf("❌ Failed to create barber: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create barber"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    barber,
	})
}

// UpdateBarber updates a barber's profile
func UpdateBarber(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barber ID"})
		return
	}

	var req models.BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var barber models.Barber
	if err := database.DB.First(&barber, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barber not found"})
		return
	}

	barber.Name = req.Name
	if req.Slug != "" {
		barber.Slug = req.Slug
	}
	barber.Title = req.Title
	barber.Bio = req.Bio
	barber.ImageURL = req.ImageURL
	if req.CommissionRate != nil {
		barber.CommissionRate = req.CommissionRate
	}

	if err := database.DB.Save(&barber).Error; err != nil {
		log.Printf("❌ Failed to update barber: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update barber"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    barber,
	})
}

// UpdateBarberCommission changes only the commission percentage
func UpdateBarberCommission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barber ID"})
		return
	}

	var req struct {
		CommissionRate float64 `json:"commission_rate" binding:"min=0,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Commission rate must be between 0 and 100"})
		return
	}

	result := database.DB.Model(&models.Barber{}).
		Where("id = ?", id).
		Update("commission_rate", req.CommissionRate)
	if result.Error != nil {
		log.Printf("❌ Failed to update commission: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update commission"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barber not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Commission rate updated",
	})
}

// DeleteBarber soft-deletes a barber. Their past bookings keep the barber_id
// for historical reports.
func DeleteBarber(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barber ID"})
		return
	}

	result := database.DB.Delete(&models.Barber{}, id)
	if result.Error != nil {
		log.Printf("❌ Failed to delete barber: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete barber"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barber not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Barber deleted",
	})
}

// CreateService adds a bookable service
func CreateService(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	service := models.Service{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	}

	if err := database.DB.Create(&service).Error; err != nil {
		log.Printf("❌ Failed to create service: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    service,
	})
}

// UpdateService updates a service's details. Price changes only affect future
// revenue numbers since stats read the service's current price.
func UpdateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	service.Name = req.Name
	if req.Slug != "" {
		service.Slug = req.Slug
	}
	service.Description = req.Description
	service.Price = req.Price
	service.Duration = req.Duration

	if err := database.DB.Save(&service).Error; err != nil {
		log.Printf("❌ Failed to update service: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    service,
	})
}

// DeleteService soft-deletes a service
func DeleteService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	result := database.DB.Delete(&models.Service{}, id)
	if result.Error != nil {
		log.Printf("❌ Failed to delete service: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service deleted",
	})
}
