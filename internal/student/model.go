package student

import (
	"time"

	"github.com/uptrace/bun"
)

type Student struct {
	bun.BaseModel `bun:"table:students,alias:s"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email" json:"email"`
	Phone     string    `bun:"phone" json:"phone"`
	LineID    string    `bun:"line_id" json:"line_id"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// CreateRequest is the request body for creating a student; id and
// created_at are never client-assignable.
type CreateRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	LineID string `json:"line_id"`
}
