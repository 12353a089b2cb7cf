package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shev-k/mikes-cut/cart"
	"github.com/shev-k/mikes-cut/config"
	"github.com/shev-k/mikes-cut/database"
	"github.com/shev-k/mikes-cut/models"
)

const cartCookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// RegisterCartRoutes registers the session cart endpoints. The cart lives in
// a cookie on the shopper's browser; every handler decodes it, mutates it,
// and writes it back. Nothing touches the database until checkout.
func RegisterCartRoutes(router *gin.RouterGroup) {
	router.GET("/cart", GetCart)
	router.POST("/cart/items", AddCartItem)
	router.PUT("/cart/items/:productId", UpdateCartItem)
	router.DELETE("/cart/items/:productId", RemoveCartItem)
	router.DELETE("/cart", ClearCart)
}

func loadCart(c *gin.Context) *cart.Cart {
	encoded, err := c.Cookie(config.AppConfig.Shop.CartCookieName)
	if err != nil {
		return cart.New()
	}
	return cart.Decode(encoded)
}

func saveCart(c *gin.Context, shopCart *cart.Cart) {
	encoded, err := shopCart.Encode()
	if err != nil {
		log.Printf("❌ Failed to encode cart: %v", err)
		return
	}
	c.SetCookie(config.AppConfig.Shop.CartCookieName, encoded, cartCookieMaxAge, "/", "", false, true)
}

func cartPayload(shopCart *cart.Cart) gin.H {
	return gin.H{
		"items":      shopCart.Items,
		"total":      shopCart.Total(),
		"item_count": shopCart.ItemCount(),
	}
}

// GetCart returns the session's cart
func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cartPayload(loadCart(c)),
	})
}

// AddCartItem puts one unit of a product in the cart, merging by product
func AddCartItem(c *gin.Context) {
	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Name/price/image come from the catalog, not the client.
	var product models.Product
	if err := database.DB.First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	shopCart := loadCart(c)
	shopCart.Add(product.ID, product.Name, product.Price, product.ImageURL)
	saveCart(c, shopCart)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Added to cart",
		"data":    cartPayload(shopCart),
	})
}

// UpdateCartItem sets a line's quantity; below 1 removes the line
func UpdateCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	shopCart := loadCart(c)
	shopCart.UpdateQuantity(uint(productID), req.Quantity)
	saveCart(c, shopCart)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cartPayload(shopCart),
	})
}

// RemoveCartItem drops a product from the cart
func RemoveCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	shopCart := loadCart(c)
	shopCart.Remove(uint(productID))
	saveCart(c, shopCart)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Removed from cart",
		"data":    cartPayload(shopCart),
	})
}

// ClearCart empties the session's cart
func ClearCart(c *gin.Context) {
	shopCart := cart.New()
	saveCart(c, shopCart)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cartPayload(shopCart),
	})
}
