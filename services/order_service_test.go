package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shev-k/mikes-cut/models"
	"github.com/shev-k/mikes-cut/services"
)

func seedCatalog(t *testing.T, db *gorm.DB) (models.Product, models.Product) {
	t.Helper()

	category := models.Category{Name: "Pomades & Wax", Slug: "pomades-wax"}
	require.NoError(t, db.Create(&category).Error)

	pomade := models.Product{Name: "Matte Clay Pomade", CategoryID: category.ID, Price: 18}
	oil := models.Product{Name: "Beard Oil", CategoryID: category.ID, Price: 22}
	require.NoError(t, db.Create(&pomade).Error)
	require.NoError(t, db.Create(&oil).Error)

	return pomade, oil
}

func TestCheckout_ComputesTotalFromCatalog(t *testing.T) {
	db := openTestDB(t)
	pomade, oil := seedCatalog(t, db)

	order, err := services.NewOrderService(db).Checkout(models.CreateOrderRequest{
		CustomerName:    "Alex Reed",
		CustomerEmail:   "alex@example.com",
		CustomerAddress: "12 Main St",
		Items: []models.OrderItemRequest{
			{ProductID: pomade.ID, Quantity: 2},
			{ProductID: oil.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 58.0, order.TotalAmount, 0.001) // 2*18 + 22

	require.Len(t, order.Items, 2)
	assert.InDelta(t, 18.0, order.Items[0].PriceAtTime, 0.001)
	assert.InDelta(t, 22.0, order.Items[1].PriceAtTime, 0.001)
}

func TestCheckout_UnknownProductRollsBack(t *testing.T) {
	db := openTestDB(t)
	pomade, _ := seedCatalog(t, db)

	_, err := services.NewOrderService(db).Checkout(models.CreateOrderRequest{
		CustomerName:    "Alex Reed",
		CustomerEmail:   "alex@example.com",
		CustomerAddress: "12 Main St",
		Items: []models.OrderItemRequest{
			{ProductID: pomade.ID, Quantity: 1},
			{ProductID: 9999, Quantity: 1},
		},
	})
	require.Error(t, err)

	// The header must not survive the failed line.
	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCheckout_PriceFrozenAtOrderTime(t *testing.T) {
	db := openTestDB(t)
	pomade, _ := seedCatalog(t, db)

	svc := services.NewOrderService(db)
	order, err := svc.Checkout(models.CreateOrderRequest{
		CustomerName:    "Alex Reed",
		CustomerEmail:   "alex@example.com",
		CustomerAddress: "12 Main St",
		Items:           []models.OrderItemRequest{{ProductID: pomade.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// A later price change leaves the past order untouched.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", pomade.ID).Update("price", 99).Error)

	fetched, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, order.OrderNumber, fetched[0].OrderNumber)
	assert.InDelta(t, 18.0, fetched[0].Items[0].PriceAtTime, 0.001)
	assert.InDelta(t, 18.0, fetched[0].TotalAmount, 0.001)
}

func TestUpdateStatus(t *testing.T) {
	db := openTestDB(t)
	pomade, _ := seedCatalog(t, db)

	svc := services.NewOrderService(db)
	order, err := svc.Checkout(models.CreateOrderRequest{
		CustomerName:    "Alex Reed",
		CustomerEmail:   "alex@example.com",
		CustomerAddress: "12 Main St",
		Items:           []models.OrderItemRequest{{ProductID: pomade.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(order.ID, models.OrderStatusShipped))

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, reloaded.Status)

	assert.Error(t, svc.UpdateStatus(order.ID, "lost"))
	assert.Error(t, svc.UpdateStatus(9999, models.OrderStatusShipped))
}
