package model

import "time"

// Product is a catalog item shown on the storefront.
// This is a pure domain model with no database-specific dependencies or tags.
// Price is an opaque display string (e.g. "350", "₹350 / kg") and is never
// interpreted numerically by the server.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Category  string    `json:"category"`
	Desc      string    `json:"desc"`
	ImageURL  string    `json:"image_url"`
	ImageRef  string    `json:"image_ref"`
	CreatedAt time.Time `json:"created_at"`
}
