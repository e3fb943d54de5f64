package coach

import (
	"time"

	"github.com/uptrace/bun"
)

// Coach is a staff member who teaches classes. The is_active flag is stored
// as 0/1, matching the wire format the dashboard expects.
type Coach struct {
	bun.BaseModel `bun:"table:coaches,alias:co"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email" json:"email"`
	Phone     string    `bun:"phone" json:"phone"`
	LineID    string    `bun:"line_id" json:"line_id"`
	IsActive  int       `bun:"is_active,nullzero,notnull,default:1" json:"is_active"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// CreateRequest is the request body for creating a coach. is_active arrives
// as a JSON boolean (absent means active) and is coerced to 0/1 at this
// boundary; id and created_at are never client-assignable.
type CreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LineID   string `json:"line_id"`
	IsActive *bool  `json:"is_active"`
}
