package payment

import (
	"time"

	"github.com/uptrace/bun"
)

// Payment is one recorded payment by a student, optionally tied to a class.
// paid_at is an opaque date string, stored as the caller sent it.
type Payment struct {
	bun.BaseModel `bun:"table:payments,alias:p"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	StudentID int       `bun:"student_id,notnull" json:"student_id"`
	ClassID   *int      `bun:"class_id" json:"class_id"`
	Amount    float64   `bun:"amount,notnull" json:"amount"`
	PaidAt    string    `bun:"paid_at,notnull" json:"paid_at"`
	Channel   string    `bun:"channel,notnull" json:"channel"`
	Note      string    `bun:"note" json:"note"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`

	// joined from classes on list queries
	ClassName string `bun:"class_name,scanonly" json:"class_name,omitempty"`
}

// CreateRequest is the request body for recording a payment.
type CreateRequest struct {
	ClassID *int    `json:"class_id"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	PaidAt  string  `json:"paid_at" validate:"required"`
	Channel string  `json:"channel" validate:"required"`
	Note    string  `json:"note"`
}
