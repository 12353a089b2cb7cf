package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatuses is used when staff update an order's status.
var ValidOrderStatuses = map[OrderStatus]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusShipped:    true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
}

// Order is a shop checkout. The order and its items are written in a single
// transaction; an order header never exists without its lines.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	OrderNumber     string      `json:"order_number" gorm:"type:varchar(36);uniqueIndex;not null"`
	CustomerName    string      `json:"customer_name" gorm:"type:varchar(100);not null"`
	CustomerEmail   string      `json:"customer_email" gorm:"type:varchar(255);not null"`
	CustomerPhone   string      `json:"customer_phone" gorm:"type:varchar(30)"`
	CustomerAddress string      `json:"customer_address" gorm:"type:varchar(500);not null"`
	TotalAmount     float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending','processing','shipped','delivered','cancelled')"`
	PaymentMethod   string      `json:"payment_method" gorm:"type:varchar(30);default:'cash_on_delivery'"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one order line. PriceAtTime freezes the product price at
// checkout so later catalog edits don't change past orders.
type OrderItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrderID     uint      `json:"order_id" gorm:"not null;index"`
	ProductID   uint      `json:"product_id" gorm:"not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	PriceAtTime float64   `json:"price_at_time" gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time `json:"created_at"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1"`
}

// OrderItemRequest is one checkout line.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}
