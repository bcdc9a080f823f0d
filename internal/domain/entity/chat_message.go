package entity

import (
	"time"
)

// ChatMessage is one persisted message in a per-car chat room. AdminID is
// the staff account the message was addressed to, resolved at send time;
// empty when no staff account exists yet.
type ChatMessage struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	AdminID   string    `json:"admin_id,omitempty" firestore:"adminId,omitempty"`
	CarID     string    `json:"car_id" firestore:"carId"`
	Message   string    `json:"message" firestore:"message"`
	IsRead    bool      `json:"is_read" firestore:"isRead"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
