// Package csvio serializes generated entities to delimited flat files.
// Each entity type gets one UTF-8 CSV with a header row; the exported
// columns are a fixed projection of the in-memory record.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/generator"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

const DateLayout = "2006-01-02"

// File names within the dataset directory.
const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	PaymentsFile   = "payments.csv"
	ReviewsFile    = "reviews.csv"
)

// Exported column sets, in file order. The loader checks incoming
// headers against these.
var (
	CustomerColumns  = []string{"id", "name", "email", "city", "joined_date"}
	ProductColumns   = []string{"id", "name", "category", "price"}
	OrderColumns     = []string{"id", "customer_id", "order_date"}
	OrderItemColumns = []string{"id", "order_id", "product_id", "quantity"}
	PaymentColumns   = []string{"id", "order_id", "amount", "payment_method", "status"}
	ReviewColumns    = []string{"id", "customer_id", "product_id", "order_id", "rating", "review_text", "review_date"}
)

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func writeFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row of %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

func WriteCustomers(path string, customers []models.Customer) error {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			strconv.Itoa(c.ID), c.Name, c.Email, c.City, formatDate(c.JoinedDate),
		})
	}
	return writeFile(path, CustomerColumns, rows)
}

func WriteProducts(path string, products []models.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Name, p.Category, formatAmount(p.Price),
		})
	}
	return writeFile(path, ProductColumns, rows)
}

func WriteOrders(path string, orders []models.Order) error {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.Itoa(o.ID), strconv.Itoa(o.CustomerID), formatDate(o.OrderDate),
		})
	}
	return writeFile(path, OrderColumns, rows)
}

// WriteOrderItems exports order lines without the derived subtotal
// column; downstream consumers recompute it from quantity and price.
func WriteOrderItems(path string, items []models.OrderItem) error {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(it.ID), strconv.Itoa(it.OrderID), strconv.Itoa(it.ProductID), strconv.Itoa(it.Quantity),
		})
	}
	return writeFile(path, OrderItemColumns, rows)
}

func WritePayments(path string, payments []models.Payment) error {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), strconv.Itoa(p.OrderID), formatAmount(p.Amount), p.Method, p.Status,
		})
	}
	return writeFile(path, PaymentColumns, rows)
}

func WriteReviews(path string, reviews []models.Review) error {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			strconv.Itoa(r.ID), strconv.Itoa(r.CustomerID), strconv.Itoa(r.ProductID),
			strconv.Itoa(r.OrderID), strconv.Itoa(r.Rating), r.ReviewText, formatDate(r.ReviewDate),
		})
	}
	return writeFile(path, ReviewColumns, rows)
}

// WriteAll creates dir if needed and writes all six entity files,
// aborting on the first failure. Partial output is not resumable.
func WriteAll(dir string, ds generator.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}
	if err := WriteCustomers(filepath.Join(dir, CustomersFile), ds.Customers); err != nil {
		return err
	}
	if err := WriteProducts(filepath.Join(dir, ProductsFile), ds.Products); err != nil {
		return err
	}
	if err := WriteOrders(filepath.Join(dir, OrdersFile), ds.Orders); err != nil {
		return err
	}
	if err := WriteOrderItems(filepath.Join(dir, OrderItemsFile), ds.OrderItems); err != nil {
		return err
	}
	if err := WritePayments(filepath.Join(dir, PaymentsFile), ds.Payments); err != nil {
		return err
	}
	return WriteReviews(filepath.Join(dir, ReviewsFile), ds.Reviews)
}
