package generator

import (
	"math/rand/v2"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

// OrderItems generates order lines in two passes: first one item per
// order so no order ends up empty, then random order/product pairs
// until the item count reaches target. When the order count already
// exceeds target the coverage pass alone decides the final count.
//
// The returned map holds the accumulated subtotal per order id and is
// the single source for payment amounts.
func OrderItems(rng *rand.Rand, target int, orders []models.Order, products []models.Product) ([]models.OrderItem, map[int]float64) {
	items := make([]models.OrderItem, 0, max(target, len(orders)))
	totals := make(map[int]float64, len(orders))
	for _, order := range orders {
		totals[order.ID] = 0
	}

	add := func(orderID int, product models.Product, quantity int) {
		subtotal := product.Price * float64(quantity)
		items = append(items, models.OrderItem{
			ID:        len(items) + 1,
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  quantity,
			Subtotal:  subtotal,
		})
		totals[orderID] += subtotal
	}

	// Coverage pass: every order gets one line.
	for _, order := range orders {
		add(order.ID, pick(rng, products), 1+rng.IntN(4))
	}

	// Fill pass up to the requested volume.
	for len(items) < target {
		add(pick(rng, orders).ID, pick(rng, products), 1+rng.IntN(5))
	}

	return items, totals
}
