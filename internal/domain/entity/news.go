package entity

import (
	"time"
)

type News struct {
	ID        string    `json:"id" firestore:"id"`
	Title     string    `json:"title" firestore:"title"`
	Content   string    `json:"content" firestore:"content"`
	ImageURL  string    `json:"image_url,omitempty" firestore:"imageURL,omitempty"`
	IsActive  bool      `json:"is_active" firestore:"isActive"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
