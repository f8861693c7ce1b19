// Package loader reads the generated flat files back through their
// column projections and materializes them as relational tables. It is
// a mechanical pass-through: any parse, I/O or database error aborts
// the whole run.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/csvio"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/logging"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/store"
)

// readRecords reads a CSV file, verifies its header against the
// expected column projection and returns the data rows.
func readRecords(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	if !slices.Equal(records[0], columns) {
		return nil, fmt.Errorf("%s: header %v does not match columns %v", path, records[0], columns)
	}
	return records[1:], nil
}

func parseInt(path, column, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: column %s: %w", path, column, err)
	}
	return v, nil
}

func parseFloat(path, column, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: column %s: %w", path, column, err)
	}
	return v, nil
}

func parseDate(path, column, value string) (time.Time, error) {
	t, err := time.Parse(csvio.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: column %s: %w", path, column, err)
	}
	return t, nil
}

func ReadCustomers(path string) ([]models.Customer, error) {
	records, err := readRecords(path, csvio.CustomerColumns)
	if err != nil {
		return nil, err
	}
	customers := make([]models.Customer, 0, len(records))
	for _, rec := range records {
		id, err := parseInt(path, "id", rec[0])
		if err != nil {
			return nil, err
		}
		joined, err := parseDate(path, "joined_date", rec[4])
		if err != nil {
			return nil, err
		}
		customers = append(customers, models.Customer{
			ID: id, Name: rec[1], Email: rec[2], City: rec[3], JoinedDate: joined,
		})
	}
	return customers, nil
}

func ReadProducts(path string) ([]models.Product, error) {
	records, err := readRecords(path, csvio.ProductColumns)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		id, err := parseInt(path, "id", rec[0])
		if err != nil {
			return nil, err
		}
		price, err := parseFloat(path, "price", rec[3])
		if err != nil {
			return nil, err
		}
		products = append(products, models.Product{
			ID: id, Name: rec[1], Category: rec[2], Price: price,
		})
	}
	return products, nil
}

func ReadOrders(path string) ([]models.Order, error) {
	records, err := readRecords(path, csvio.OrderColumns)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		id, err := parseInt(path, "id", rec[0])
		if err != nil {
			return nil, err
		}
		customerID, err := parseInt(path, "customer_id", rec[1])
		if err != nil {
			return nil, err
		}
		orderDate, err := parseDate(path, "order_date", rec[2])
		if err != nil {
			return nil, err
		}
		orders = append(orders, models.Order{
			ID: id, CustomerID: customerID, OrderDate: orderDate,
		})
	}
	return orders, nil
}

func ReadOrderItems(path string) ([]models.OrderItem, error) {
	records, err := readRecords(path, csvio.OrderItemColumns)
	if err != nil {
		return nil, err
	}
	items := make([]models.OrderItem, 0, len(records))
	for _, rec := range records {
		id, err := parseInt(path, "id", rec[0])
		if err != nil {
			return nil, err
		}
		orderID, err := parseInt(path, "order_id", rec[1])
		if err != nil {
			return nil, err
		}
		productID, err := parseInt(path, "product_id", rec[2])
		if err != nil {
			return nil, err
		}
		quantity, err := parseInt(path, "quantity", rec[3])
		if err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			ID: id, OrderID: orderID, ProductID: productID, Quantity: quantity,
		})
	}
	return items, nil
}

func ReadReviews(path string) ([]models.Review, error) {
	records, err := readRecords(path, csvio.ReviewColumns)
	if err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0, len(records))
	for _, rec := range records {
		id, err := parseInt(path, "id", rec[0])
		if err != nil {
			return nil, err
		}
		customerID, err := parseInt(path, "customer_id", rec[1])
		if err != nil {
			return nil, err
		}
		productID, err := parseInt(path, "product_id", rec[2])
		if err != nil {
			return nil, err
		}
		orderID, err := parseInt(path, "order_id", rec[3])
		if err != nil {
			return nil, err
		}
		rating, err := parseInt(path, "rating", rec[4])
		if err != nil {
			return nil, err
		}
		reviewDate, err := parseDate(path, "review_date", rec[6])
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, models.Review{
			ID: id, CustomerID: customerID, ProductID: productID, OrderID: orderID,
			Rating: rating, ReviewText: rec[5], ReviewDate: reviewDate,
		})
	}
	return reviews, nil
}

// Load materializes the dataset directory into the store. Five of the
// six entity files are loaded; payments stay flat-file only.
func Load(ctx context.Context, db *gorm.DB, dir string) error {
	l := logging.FromContext(ctx).With("component", "loader")

	customers, err := ReadCustomers(filepath.Join(dir, csvio.CustomersFile))
	if err != nil {
		return err
	}
	if err := store.Replace(ctx, db, "customers", &models.Customer{}, customers); err != nil {
		return err
	}
	l.Info("loaded_table", "table", "customers", "rows", len(customers))

	products, err := ReadProducts(filepath.Join(dir, csvio.ProductsFile))
	if err != nil {
		return err
	}
	if err := store.Replace(ctx, db, "products", &models.Product{}, products); err != nil {
		return err
	}
	l.Info("loaded_table", "table", "products", "rows", len(products))

	orders, err := ReadOrders(filepath.Join(dir, csvio.OrdersFile))
	if err != nil {
		return err
	}
	if err := store.Replace(ctx, db, "orders", &models.Order{}, orders); err != nil {
		return err
	}
	l.Info("loaded_table", "table", "orders", "rows", len(orders))

	items, err := ReadOrderItems(filepath.Join(dir, csvio.OrderItemsFile))
	if err != nil {
		return err
	}
	if err := store.Replace(ctx, db, "order_items", &models.OrderItem{}, items); err != nil {
		return err
	}
	l.Info("loaded_table", "table", "order_items", "rows", len(items))

	reviews, err := ReadReviews(filepath.Join(dir, csvio.ReviewsFile))
	if err != nil {
		return err
	}
	if err := store.Replace(ctx, db, "reviews", &models.Review{}, reviews); err != nil {
		return err
	}
	l.Info("loaded_table", "table", "reviews", "rows", len(reviews))

	return nil
}
