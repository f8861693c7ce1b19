package generator

import (
	"math/rand/v2"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

// Orders generates n orders with ids 1..n, each against a uniformly
// chosen customer. Customers are drawn with replacement, so a customer
// may hold any number of orders including zero. The order date never
// precedes the customer's join date; a join date past the order window
// end yields that single day.
func Orders(rng *rand.Rand, n int, customers []models.Customer) []models.Order {
	orders := make([]models.Order, 0, n)
	for id := 1; id <= n; id++ {
		customer := pick(rng, customers)
		orders = append(orders, models.Order{
			ID:         id,
			CustomerID: customer.ID,
			OrderDate:  randomDate(rng, customer.JoinedDate, orderWindowEnd),
		})
	}
	return orders
}
