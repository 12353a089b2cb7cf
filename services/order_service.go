package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shev-k/mikes-cut/models"
)

// OrderService handles shop checkout and order management.
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates a new order service
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Checkout creates an order and its items in a single transaction. The total
// is computed from the catalog prices at checkout time, and the header is
// never committed without its lines.
func (s *OrderService) Checkout(req models.CreateOrderRequest) (*models.Order, error) {
	order := &models.Order{
		OrderNumber:     uuid.New().String(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Status:          models.OrderStatusPending,
		PaymentMethod:   "cash_on_delivery",
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, line := range req.Items {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				return fmt.Errorf("product %d not found: %w", line.ProductID, err)
			}

			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				Quantity:    line.Quantity,
				PriceAtTime: product.Price,
			})
			total += product.Price * float64(line.Quantity)
		}

		order.TotalAmount = total

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListAll returns all orders with their items and product details, newest
// first. Used by the staff order-management view.
func (s *OrderService) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order through its lifecycle. Only the status field is
// ever mutated after checkout.
func (s *OrderService) UpdateStatus(id uint, status models.OrderStatus) error {
	if !models.ValidOrderStatuses[status] {
		return fmt.Errorf("invalid order status: %s", status)
	}

	result := s.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order %d not found", id)
	}
	return nil
}
