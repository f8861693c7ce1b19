package generator

import (
	"math/rand/v2"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/catalog"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

const reviewWindowDays = 60

var (
	ratingValues  = []int{5, 4, 3, 2, 1}
	ratingWeights = []float64{0.45, 0.30, 0.15, 0.07, 0.03}
)

// Reviews generates n reviews with ids 1..n. Each review attaches to a
// uniformly chosen order and inherits that order's customer; the
// reviewed product is drawn independently of what the order actually
// contained. Review dates land within 60 days of the order date and
// ratings skew positive.
func Reviews(rng *rand.Rand, n int, products []models.Product, orders []models.Order) []models.Review {
	reviews := make([]models.Review, 0, n)
	for id := 1; id <= n; id++ {
		order := pick(rng, orders)
		product := pick(rng, products)
		reviews = append(reviews, models.Review{
			ID:         id,
			CustomerID: order.CustomerID,
			ProductID:  product.ID,
			OrderID:    order.ID,
			Rating:     weighted(rng, ratingValues, ratingWeights),
			ReviewText: pick(rng, catalog.ReviewPhrases),
			ReviewDate: randomDate(rng, order.OrderDate, order.OrderDate.AddDate(0, 0, reviewWindowDays)),
		})
	}
	return reviews
}
