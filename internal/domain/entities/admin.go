package entities

import "time"

// Admin is a back-office user able to authenticate against the API.
//
// Storage model (DynamoDB):
//   - PK: username (there is a single workshop; usernames are unique)
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
