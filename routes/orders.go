package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shev-k/mikes-cut/config"
	"github.com/shev-k/mikes-cut/database"
	"github.com/shev-k/mikes-cut/models"
	"github.com/shev-k/mikes-cut/services"
)

func orderService() *services.OrderService {
	return services.NewOrderService(database.DB)
}

// RegisterOrderRoutes registers the public checkout endpoint
func RegisterOrderRoutes(router *gin.RouterGroup) {
	router.POST("/orders", CreateOrder)
}

// RegisterStaffOrderRoutes registers staff order management
func RegisterStaffOrderRoutes(router *gin.RouterGroup) {
	router.GET("/orders", GetAllOrders)
	router.PUT("/orders/:id/status", UpdateOrderStatus)
}

// CreateOrder handles shop checkout. The cart cookie is cleared on success so
// the shopper starts fresh.
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := orderService().Checkout(req)
	if err != nil {
		log.Printf("❌ Checkout failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not place order. Please check your cart and try again."})
		return
	}

	c.SetCookie(config.AppConfig.Shop.CartCookieName, "", -1, "/", "", false, true)

	log.Printf("✅ Order %s placed by %s (%.2f)", order.OrderNumber, order.CustomerName, order.TotalAmount)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data":    order,
	})
}

// GetAllOrders returns every order with items for the staff dashboard
func GetAllOrders(c *gin.Context) {
	orders, err := orderService().ListAll()
	if err != nil {
		log.Printf("❌ Failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// UpdateOrderStatus moves an order through its lifecycle
func UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := orderService().UpdateStatus(uint(id), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
	})
}
