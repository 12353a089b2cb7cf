// Package cart implements the shop cart as an explicitly-scoped store. The
// cart is owned by the browser session: it round-trips through a cookie as
// JSON and only reaches the database at checkout. Handlers decode a cart,
// mutate it, and encode it back; nothing here is shared mutable state.
package cart

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Item is one product line in the cart.
type Item struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// Cart is the session's list of items.
type Cart struct {
	Items []Item `json:"items"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Add puts a product in the cart, merging with an existing line by product id.
func (c *Cart) Add(productID uint, name string, price float64, imageURL string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID: productID,
		Name:      name,
		Price:     price,
		ImageURL:  imageURL,
		Quantity:  1,
	})
}

// Remove drops a product line entirely.
func (c *Cart) Remove(productID uint) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// UpdateQuantity sets a line's quantity; anything below 1 removes the line.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Encode serializes the cart for cookie storage.
func (c *Cart) Encode() (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode cart: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// Decode rehydrates a cart from its cookie form. A corrupt value yields an
// empty cart rather than an error surfacing to the shopper.
func Decode(encoded string) *Cart {
	c := New()
	if encoded == "" {
		return c
	}
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return New()
	}
	if err := json.Unmarshal(raw, c); err != nil {
		return New()
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return c
}
