package leave

import (
	"time"

	"github.com/uptrace/bun"
)

// Leave request lifecycle: pending until a coach decides, then terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

const (
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

type LeaveRequest struct {
	bun.BaseModel `bun:"table:leave_requests,alias:lr"`

	ID            int       `bun:"id,pk,autoincrement" json:"id"`
	StudentID     int       `bun:"student_id,notnull" json:"student_id"`
	ClassID       int       `bun:"class_id,notnull" json:"class_id"`
	Type          string    `bun:"type,notnull" json:"type"`
	LessonDate    string    `bun:"lesson_date,notnull" json:"lesson_date"`
	NewLessonDate string    `bun:"new_lesson_date" json:"new_lesson_date"`
	Status        string    `bun:"status,nullzero,notnull,default:'pending'" json:"status"`
	ReasonStudent string    `bun:"reason_student" json:"reason_student"`
	ReasonCoach   *string   `bun:"reason_coach" json:"reason_coach"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`

	// joined on list queries
	StudentName string `bun:"student_name,scanonly" json:"student_name,omitempty"`
	ClassName   string `bun:"class_name,scanonly" json:"class_name,omitempty"`
}

// CreateRequest is the request body for filing a leave request.
type CreateRequest struct {
	StudentID     int    `json:"student_id" validate:"required,gt=0"`
	ClassID       int    `json:"class_id" validate:"required,gt=0"`
	Type          string `json:"type" validate:"required"`
	LessonDate    string `json:"lesson_date" validate:"required"`
	NewLessonDate string `json:"new_lesson_date"`
	ReasonStudent string `json:"reason_student"`
}

// DecisionRequest is the coach-side accept/reject action.
type DecisionRequest struct {
	Decision    string  `json:"decision" validate:"required,oneof=accept reject"`
	ReasonCoach *string `json:"reason_coach"`
}
