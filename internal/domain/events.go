package domain

import "time"

type ProductCreatedEvent struct {
	EventID      string    `json:"event_id"`
	ProductID    string    `json:"product_id"`
	Name         string    `json:"name"`
	PriceInCents int64     `json:"price_in_cents"`
	ImagePath    string    `json:"image_path"`
	Timestamp    time.Time `json:"timestamp"`
	RequestID    string    `json:"request_id,omitempty"`
}
