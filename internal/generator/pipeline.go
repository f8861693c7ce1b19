// Package generator synthesizes a referentially consistent e-commerce
// dataset. Every generator is a pure function over an injected random
// source: entities are referenced only after they exist, and the same
// seed reproduces the same dataset byte for byte.
package generator

import (
	"context"
	"math/rand/v2"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/logging"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

// Counts configures how many of each entity a run produces. OrderItems
// is a target: the coverage pass may exceed it when there are more
// orders than requested items.
type Counts struct {
	Customers  int
	Products   int
	Orders     int
	OrderItems int
	Reviews    int
}

// Dataset is the immutable result of one generation run.
type Dataset struct {
	Customers   []models.Customer
	Products    []models.Product
	Orders      []models.Order
	OrderItems  []models.OrderItem
	OrderTotals map[int]float64
	Payments    []models.Payment
	Reviews     []models.Review
}

// Generate runs the six passes in dependency order: customers and
// products first, then orders, order items (which accumulate the
// per-order totals), payments, and reviews.
func Generate(ctx context.Context, rng *rand.Rand, counts Counts) Dataset {
	l := logging.FromContext(ctx).With("component", "generator")

	customers := Customers(rng, counts.Customers)
	l.Info("generated_customers", "count", len(customers))

	products := Products(rng, counts.Products)
	l.Info("generated_products", "count", len(products))

	orders := Orders(rng, counts.Orders, customers)
	l.Info("generated_orders", "count", len(orders))

	items, totals := OrderItems(rng, counts.OrderItems, orders, products)
	l.Info("generated_order_items", "count", len(items))

	payments := Payments(rng, orders, totals)
	l.Info("generated_payments", "count", len(payments))

	reviews := Reviews(rng, counts.Reviews, products, orders)
	l.Info("generated_reviews", "count", len(reviews))

	return Dataset{
		Customers:   customers,
		Products:    products,
		Orders:      orders,
		OrderItems:  items,
		OrderTotals: totals,
		Payments:    payments,
		Reviews:     reviews,
	}
}
