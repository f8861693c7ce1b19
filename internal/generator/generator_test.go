package generator

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/catalog"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

func TestCustomers_FieldsAndWindow(t *testing.T) {
	t.Parallel()

	customers := Customers(newTestRand(10), 50)
	require.Len(t, customers, 50)

	for i, c := range customers {
		assert.Equal(t, i+1, c.ID)
		assert.Contains(t, catalog.Cities, c.City)

		parts := strings.SplitN(c.Name, " ", 2)
		require.Len(t, parts, 2)
		assert.Contains(t, catalog.FirstNames, parts[0])
		assert.Contains(t, catalog.LastNames, parts[1])

		wantEmail := fmt.Sprintf("%s.%s%d@example.com",
			strings.ToLower(parts[0]), strings.ToLower(parts[1]), c.ID)
		assert.Equal(t, wantEmail, c.Email)

		assert.False(t, c.JoinedDate.Before(joinWindowStart))
		assert.False(t, c.JoinedDate.After(joinWindowEnd))
	}
}

func TestProducts_PriceAndVocabulary(t *testing.T) {
	t.Parallel()

	products := Products(newTestRand(11), 40)
	require.Len(t, products, 40)

	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.Contains(t, catalog.Categories, p.Category)
		assert.Contains(t, catalog.ProductNames[p.Category], p.Name)
		assert.GreaterOrEqual(t, p.Price, 10.0)
		assert.LessOrEqual(t, p.Price, 500.0)
	}
}

func TestOrders_DateRespectsJoinDate(t *testing.T) {
	t.Parallel()

	rng := newTestRand(12)
	customers := Customers(rng, 20)
	orders := Orders(rng, 100, customers)
	require.Len(t, orders, 100)

	byID := make(map[int]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	for i, o := range orders {
		assert.Equal(t, i+1, o.ID)
		customer, ok := byID[o.CustomerID]
		require.True(t, ok, "order %d references unknown customer %d", o.ID, o.CustomerID)
		assert.False(t, o.OrderDate.Before(customer.JoinedDate))
		assert.False(t, o.OrderDate.After(orderWindowEnd))
	}
}

func TestOrders_JoinDateAfterWindowEnd(t *testing.T) {
	t.Parallel()

	late := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	customers := []models.Customer{{ID: 1, JoinedDate: late}}

	orders := Orders(newTestRand(13), 10, customers)
	for _, o := range orders {
		assert.Equal(t, late, o.OrderDate)
	}
}

func TestOrderItems_CoverageAndTotals(t *testing.T) {
	t.Parallel()

	rng := newTestRand(14)
	customers := Customers(rng, 5)
	products := Products(rng, 8)
	orders := Orders(rng, 12, customers)

	items, totals := OrderItems(rng, 30, orders, products)
	require.GreaterOrEqual(t, len(items), 30)

	productByID := make(map[int]models.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	covered := map[int]int{}
	wantTotals := map[int]float64{}
	for i, it := range items {
		assert.Equal(t, i+1, it.ID)
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 5)

		product, ok := productByID[it.ProductID]
		require.True(t, ok)
		assert.InDelta(t, product.Price*float64(it.Quantity), it.Subtotal, 1e-9)

		covered[it.OrderID]++
		wantTotals[it.OrderID] += it.Subtotal
	}

	for _, o := range orders {
		assert.GreaterOrEqual(t, covered[o.ID], 1, "order %d has no items", o.ID)
		assert.InDelta(t, wantTotals[o.ID], totals[o.ID], 1e-9)
	}
}

func TestOrderItems_CoverageExceedsTarget(t *testing.T) {
	t.Parallel()

	rng := newTestRand(15)
	customers := Customers(rng, 3)
	products := Products(rng, 4)
	orders := Orders(rng, 10, customers)

	// Target below order count: the coverage pass alone decides.
	items, _ := OrderItems(rng, 4, orders, products)
	assert.Len(t, items, 10)
}

func TestPayments_AmountsMatchTotals(t *testing.T) {
	t.Parallel()

	rng := newTestRand(16)
	customers := Customers(rng, 5)
	products := Products(rng, 6)
	orders := Orders(rng, 15, customers)
	_, totals := OrderItems(rng, 40, orders, products)

	payments := Payments(rng, orders, totals)
	require.Len(t, payments, len(orders))

	for i, p := range payments {
		assert.Equal(t, orders[i].ID, p.ID)
		assert.Equal(t, p.ID, p.OrderID)
		assert.InDelta(t, round2(totals[p.OrderID]), p.Amount, 1e-9)
		assert.Contains(t, catalog.PaymentMethods, p.Method)
		assert.Contains(t, catalog.PaymentStatuses, p.Status)
	}
}

func TestPayments_ZeroTotalFallback(t *testing.T) {
	t.Parallel()

	orders := []models.Order{{ID: 1, CustomerID: 1}}
	totals := map[int]float64{1: 0}

	payments := Payments(newTestRand(17), orders, totals)
	require.Len(t, payments, 1)
	assert.GreaterOrEqual(t, payments[0].Amount, 20.0)
	assert.LessOrEqual(t, payments[0].Amount, 200.0)
}

func TestReviews_WindowAndRating(t *testing.T) {
	t.Parallel()

	rng := newTestRand(18)
	customers := Customers(rng, 5)
	products := Products(rng, 6)
	orders := Orders(rng, 10, customers)

	reviews := Reviews(rng, 60, products, orders)
	require.Len(t, reviews, 60)

	orderByID := make(map[int]models.Order, len(orders))
	for _, o := range orders {
		orderByID[o.ID] = o
	}

	for i, r := range reviews {
		assert.Equal(t, i+1, r.ID)
		order, ok := orderByID[r.OrderID]
		require.True(t, ok)
		assert.Equal(t, order.CustomerID, r.CustomerID)
		assert.False(t, r.ReviewDate.Before(order.OrderDate))
		assert.False(t, r.ReviewDate.After(order.OrderDate.AddDate(0, 0, reviewWindowDays)))
		assert.Contains(t, []int{1, 2, 3, 4, 5}, r.Rating)
		assert.Contains(t, catalog.ReviewPhrases, r.ReviewText)
	}
}

func TestGenerate_Scenario(t *testing.T) {
	t.Parallel()

	counts := Counts{Customers: 5, Products: 3, Orders: 10, OrderItems: 15, Reviews: 10}
	ds := Generate(context.Background(), newTestRand(42), counts)

	require.Len(t, ds.Customers, 5)
	require.Len(t, ds.Products, 3)
	require.Len(t, ds.Orders, 10)
	require.Len(t, ds.OrderItems, 15)
	require.Len(t, ds.Payments, 10)
	require.Len(t, ds.Reviews, 10)

	for _, o := range ds.Orders {
		assert.GreaterOrEqual(t, o.CustomerID, 1)
		assert.LessOrEqual(t, o.CustomerID, 5)
	}
	for i, p := range ds.Payments {
		assert.Equal(t, ds.Orders[i].ID, p.ID)
		assert.Equal(t, p.ID, p.OrderID)
	}
}

func TestGenerate_DeterministicUnderFixedSeed(t *testing.T) {
	t.Parallel()

	counts := Counts{Customers: 20, Products: 10, Orders: 30, OrderItems: 60, Reviews: 25}
	ctx := context.Background()

	first := Generate(ctx, newTestRand(42), counts)
	second := Generate(ctx, newTestRand(42), counts)

	assert.Equal(t, first, second)

	third := Generate(ctx, newTestRand(43), counts)
	assert.NotEqual(t, first, third)
}
