package entity

import (
	"time"
)

// ViewHistory records that a user looked at a car. One record per user+car;
// repeat views refresh ViewedAt.
type ViewHistory struct {
	ID       string    `json:"id" firestore:"id"`
	UserID   string    `json:"user_id" firestore:"userId"`
	CarID    string    `json:"car_id" firestore:"carId"`
	ViewedAt time.Time `json:"viewed_at" firestore:"viewedAt"`
}

type ViewHistoryWithCar struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	CarID    string    `json:"car_id"`
	Car      *Car      `json:"car"`
	ViewedAt time.Time `json:"viewed_at"`
}
