package entity

import (
	"time"
)

type Favorite struct {
	ID      string    `json:"id" firestore:"id"`
	UserID  string    `json:"user_id" firestore:"userId"`
	CarID   string    `json:"car_id" firestore:"carId"`
	AddedAt time.Time `json:"added_at" firestore:"addedAt"`
}

type FavoriteWithCar struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	CarID   string    `json:"car_id"`
	Car     *Car      `json:"car"`
	AddedAt time.Time `json:"added_at"`
}
