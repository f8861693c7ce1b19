package models

import (
	"time"
)

// Customer of the synthetic shop. Emails carry the customer id as a
// suffix, which keeps them unique without any bookkeeping.
type Customer struct {
	ID         int       `gorm:"primaryKey"       json:"id"`
	Name       string    `gorm:"not null"         json:"name"`
	Email      string    `gorm:"unique;not null"  json:"email"`
	City       string    `gorm:"not null"         json:"city"`
	JoinedDate time.Time `gorm:"not null"         json:"joined_date"`
}

type Product struct {
	ID       int     `gorm:"primaryKey"  json:"id"`
	Name     string  `gorm:"not null"    json:"name"`
	Category string  `gorm:"not null"    json:"category"`
	Price    float64 `gorm:"not null"    json:"price"`
}

type Order struct {
	ID         int       `gorm:"primaryKey"      json:"id"`
	CustomerID int       `gorm:"index;not null"  json:"customer_id"`
	OrderDate  time.Time `gorm:"not null"        json:"order_date"`
}

// OrderItem holds one order line. Subtotal is derived from the product
// price at generation time and feeds the payment amounts; it is not
// part of the exported column set.
type OrderItem struct {
	ID        int     `gorm:"primaryKey"                  json:"id"`
	OrderID   int     `gorm:"index;not null"              json:"order_id"`
	ProductID int     `gorm:"not null"                    json:"product_id"`
	Quantity  int     `gorm:"default:1;check:quantity>0"  json:"quantity"`
	Subtotal  float64 `gorm:"-"                           json:"subtotal"`
}

// Payment is 1:1 with its order; the payment id equals the order id.
type Payment struct {
	ID      int     `gorm:"primaryKey"      json:"id"`
	OrderID int     `gorm:"index;not null"  json:"order_id"`
	Amount  float64 `gorm:"not null"        json:"amount"`
	Method  string  `gorm:"not null"        json:"payment_method"`
	Status  string  `gorm:"not null"        json:"status"`
}

type Review struct {
	ID         int       `gorm:"primaryKey"      json:"id"`
	CustomerID int       `gorm:"index;not null"  json:"customer_id"`
	ProductID  int       `gorm:"index;not null"  json:"product_id"`
	OrderID    int       `gorm:"index;not null"  json:"order_id"`
	Rating     int       `gorm:"not null"        json:"rating"`
	ReviewText string    `gorm:"not null"        json:"review_text"`
	ReviewDate time.Time `gorm:"not null"        json:"review_date"`
}
