package admin

import "time"

// AdminUser is a back-office account. Password holds the bcrypt hash and is
// never serialized.
type AdminUser struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
