package domain

import "time"

// Order and User are owned by other services; only their aggregates are read here.
type Order struct {
	OrderID          string    `gorm:"column:id;primaryKey" dynamodbav:"order_id" json:"id"`
	PricePaidInCents int64     `gorm:"column:price_paid_in_cents;not null" dynamodbav:"price_paid_in_cents" json:"price_paid_in_cents"`
	UserID           string    `gorm:"column:user_id;index" dynamodbav:"user_id" json:"user_id"`
	ProductID        string    `gorm:"column:product_id;index" dynamodbav:"product_id" json:"product_id"`
	CreatedAt        time.Time `gorm:"column:created_at" dynamodbav:"created_at" json:"created_at"`
}

func (Order) TableName() string { return "orders" }

type User struct {
	UserID    string    `gorm:"column:id;primaryKey" dynamodbav:"user_id" json:"id"`
	Email     string    `gorm:"column:email;uniqueIndex" dynamodbav:"email" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" dynamodbav:"created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }

type OrderAggregate struct {
	SumCents int64
	Count    int64
}
