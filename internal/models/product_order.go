package models

import "time"

// OrderStatusPending is the initial state of every order inquiry.
const OrderStatusPending = "Pending"

// ProductOrder records a customer inquiry for a product.
type ProductOrder struct {
	BaseModel

	CustomerName  string `gorm:"not null" json:"customer_name"`
	CustomerEmail string `gorm:"not null" json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	ProductID string   `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product `json:"-"`

	OrderDate time.Time `gorm:"index;not null" json:"order_date"`
	Status    string    `gorm:"default:Pending" json:"status"`
}
