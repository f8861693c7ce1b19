package generator

import (
	"math/rand/v2"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/catalog"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

var paymentStatusWeights = []float64{0.8, 0.1, 0.05, 0.05}

// Payments generates exactly one payment per order with the payment id
// equal to the order id. The amount is the order's accumulated item
// subtotal rounded to cents; a total that rounds to zero is replaced
// with a random plausible amount so no payment is ever empty.
func Payments(rng *rand.Rand, orders []models.Order, totals map[int]float64) []models.Payment {
	payments := make([]models.Payment, 0, len(orders))
	for _, order := range orders {
		amount := round2(totals[order.ID])
		if amount == 0 {
			amount = randomAmount(rng, 20, 200)
		}
		payments = append(payments, models.Payment{
			ID:      order.ID,
			OrderID: order.ID,
			Amount:  amount,
			Method:  pick(rng, catalog.PaymentMethods),
			Status:  weighted(rng, catalog.PaymentStatuses, paymentStatusWeights),
		})
	}
	return payments
}
