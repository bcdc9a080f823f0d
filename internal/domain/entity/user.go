package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type User struct {
	ID        string `json:"id" firestore:"id"`
	Email     string `json:"email" firestore:"email"`
	Username  string `json:"username" firestore:"username"`
	FirstName string `json:"first_name,omitempty" firestore:"firstName,omitempty"`
	LastName  string `json:"last_name,omitempty" firestore:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role      string `json:"role" firestore:"role"`
	Status    string `json:"status" firestore:"status"`

	AvatarURL      string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`
	TelegramChatID string `json:"telegram_chat_id,omitempty" firestore:"telegramChatId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsStaff reports whether the user can see the admin dashboard and manage
// cars, orders and news.
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff || u.Role == RoleAdmin
}
