package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/catalog"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

// Customers generates n customers with ids 1..n. Names and cities come
// from the fixed vocabularies; the id suffix keeps emails unique even
// when the same name pair is drawn twice.
func Customers(rng *rand.Rand, n int) []models.Customer {
	customers := make([]models.Customer, 0, n)
	for id := 1; id <= n; id++ {
		first := pick(rng, catalog.FirstNames)
		last := pick(rng, catalog.LastNames)
		customers = append(customers, models.Customer{
			ID:         id,
			Name:       first + " " + last,
			Email:      fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), id),
			City:       pick(rng, catalog.Cities),
			JoinedDate: randomDate(rng, joinWindowStart, joinWindowEnd),
		})
	}
	return customers
}
