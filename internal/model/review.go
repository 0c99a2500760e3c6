package model

import "time"

// Review is a general customer testimonial. Reviews are append-only and not
// tied to any particular product.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
