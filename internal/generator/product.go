package generator

import (
	"math/rand/v2"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/catalog"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

// Products generates n products with ids 1..n. The same name/category
// pair may appear more than once under different ids and prices.
func Products(rng *rand.Rand, n int) []models.Product {
	products := make([]models.Product, 0, n)
	for id := 1; id <= n; id++ {
		category := pick(rng, catalog.Categories)
		products = append(products, models.Product{
			ID:       id,
			Name:     pick(rng, catalog.ProductNames[category]),
			Category: category,
			Price:    randomAmount(rng, 10, 500),
		})
	}
	return products
}
