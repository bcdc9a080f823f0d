package entity

import (
	"fmt"
	"time"
)

const (
	CarStatusAvailable = "available"
	CarStatusSold      = "sold"
)

type Car struct {
	ID          string    `json:"id" firestore:"id"`
	Brand       string    `json:"brand" firestore:"brand"`
	Model       string    `json:"model" firestore:"model"`
	Year        int       `json:"year" firestore:"year"`
	Mileage     int       `json:"mileage" firestore:"mileage"`
	Color       string    `json:"color" firestore:"color"`
	Price       float64   `json:"price" firestore:"price"`
	PhotoURL    string    `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// Label is the human-readable listing name used in chat and notifications,
// e.g. "Toyota Camry (2021)".
func (c *Car) Label() string {
	return fmt.Sprintf("%s %s (%d)", c.Brand, c.Model, c.Year)
}
