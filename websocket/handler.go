package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/shev-k/mikes-cut/database"
	"github.com/shev-k/mikes-cut/models"
	"github.com/shev-k/mikes-cut/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced at the HTTP layer
	},
}

// Client is one connected dashboard session.
type Client struct {
	Hub    *Hub
	UserID uint
	Conn   *websocket.Conn
	Send   chan *Event
}

// DashboardHandler upgrades staff connections onto the live booking feed.
type DashboardHandler struct {
	hub *Hub
}

// NewDashboardHandler creates a handler bound to the given hub
func NewDashboardHandler(hub *Hub) *DashboardHandler {
	return &DashboardHandler{hub: hub}
}

// HandleDashboard authenticates the token query parameter (browsers cannot
// set headers on WebSocket upgrades), requires a staff account, and wires the
// connection into the hub.
func (h *DashboardHandler) HandleDashboard(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	claims, err := utils.VerifyToken(tokenString)
	if err != nil {
		log.Printf("❌ Dashboard WebSocket token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if user.Role != models.RoleAdmin && user.Role != models.RoleBarber {
		c.JSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Dashboard WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		Hub:    h.hub,
		UserID: user.ID,
		Conn:   conn,
		Send:   make(chan *Event, 16),
	}
	h.hub.Register <- client

	go client.writePump()
	client.readPump()
}

// readPump consumes client messages; only pings are expected.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	for {
		var msg map[string]interface{}
		if err := c.Conn.ReadJSON(&msg); err != nil {
			return
		}

		if msgType, ok := msg["type"].(string); ok && msgType == "ping" {
			c.Send <- &Event{Type: "pong", Timestamp: time.Now().UTC()}
		}
	}
}

// writePump delivers hub events to the connection.
func (c *Client) writePump() {
	defer c.Conn.Close()

	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			log.Printf("❌ Failed to send dashboard event to user %d: %v", c.UserID, err)
			return
		}
	}
}
