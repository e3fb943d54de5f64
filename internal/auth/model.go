package auth

import (
	"time"

	"github.com/uptrace/bun"
)

// Admin is a back-office account. Passwords are stored as bcrypt hashes and
// never serialized.
type Admin struct {
	bun.BaseModel `bun:"table:admins,alias:a"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	Email     string    `bun:"email,unique,notnull" json:"email"`
	Password  string    `bun:"password,notnull" json:"-"`
	Name      string    `bun:"name" json:"name"`
	Role      string    `bun:"role" json:"role"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the response for successful authentication
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Admin   *Admin `json:"admin"`
}
