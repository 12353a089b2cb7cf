package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shev-k/mikes-cut/cart"
)

func TestAddMergesByProduct(t *testing.T) {
	c := cart.New()
	c.Add(1, "Pomade", 18, "")
	c.Add(1, "Pomade", 18, "")
	c.Add(2, "Beard Oil", 22, "")

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 3, c.ItemCount())
	assert.InDelta(t, 58.0, c.Total(), 0.001)
}

func TestUpdateQuantityBelowOneRemoves(t *testing.T) {
	c := cart.New()
	c.Add(1, "Pomade", 18, "")
	c.Add(2, "Beard Oil", 22, "")

	c.UpdateQuantity(1, 0)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, uint(2), c.Items[0].ProductID)

	c.UpdateQuantity(2, -3)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total())
}

func TestTotalIndependentOfOperationOrder(t *testing.T) {
	// Two different op sequences arriving at the same line items must agree
	// on the total.
	a := cart.New()
	a.Add(1, "Pomade", 18, "")
	a.Add(2, "Beard Oil", 22, "")
	a.UpdateQuantity(1, 3)

	b := cart.New()
	b.Add(2, "Beard Oil", 22, "")
	b.Add(1, "Pomade", 18, "")
	b.Add(1, "Pomade", 18, "")
	b.Add(1, "Pomade", 18, "")

	assert.InDelta(t, a.Total(), b.Total(), 0.001)
	assert.Equal(t, a.ItemCount(), b.ItemCount())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := cart.New()
	c.Add(1, "Pomade", 18.50, "https://example.com/pomade.jpg")
	c.Add(2, "Beard Oil", 22, "")
	c.UpdateQuantity(2, 4)

	encoded, err := c.Encode()
	assert.NoError(t, err)

	decoded := cart.Decode(encoded)
	assert.Equal(t, c.Items, decoded.Items)
	assert.InDelta(t, c.Total(), decoded.Total(), 0.001)
}

func TestDecodeCorruptYieldsEmptyCart(t *testing.T) {
	for _, raw := range []string{"", "not-base64!!", "aGVsbG8="} {
		c := cart.Decode(raw)
		assert.NotNil(t, c)
		assert.Empty(t, c.Items)
	}
}
