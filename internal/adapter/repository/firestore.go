package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names.
const (
	usersCollection        = "users"
	carsCollection         = "cars"
	ordersCollection       = "orders"
	chatMessagesCollection = "chat_messages"
	favoritesCollection    = "favorites"
	viewHistoryCollection  = "view_history"
	newsCollection         = "news"
)

// IsNotFound reports whether err is a Firestore missing-document error.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
