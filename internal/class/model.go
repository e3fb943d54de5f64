package class

import (
	"time"

	"github.com/uptrace/bun"
)

// Class is a course offering taught by a coach. The three rule flags are
// stored as 0/1 like the other boolean columns.
type Class struct {
	bun.BaseModel `bun:"table:classes,alias:c"`

	ID              int       `bun:"id,pk,autoincrement" json:"id"`
	CoachID         int       `bun:"coach_id,notnull" json:"coach_id"`
	Name            string    `bun:"name,notnull" json:"name"`
	Location        string    `bun:"location" json:"location"`
	ScheduleText    string    `bun:"schedule_text" json:"schedule_text"`
	Capacity        int       `bun:"capacity" json:"capacity"`
	TermPrice       float64   `bun:"term_price" json:"term_price"`
	TermClasses     int       `bun:"term_classes" json:"term_classes"`
	DropinPrice     float64   `bun:"dropin_price" json:"dropin_price"`
	RuleNoLeave     int       `bun:"rule_no_leave" json:"rule_no_leave"`
	RuleAllowDelay  int       `bun:"rule_allow_delay" json:"rule_allow_delay"`
	RuleAllowDropin int       `bun:"rule_allow_dropin" json:"rule_allow_dropin"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`

	// joined from coaches on list queries
	CoachName string `bun:"coach_name,scanonly" json:"coach_name,omitempty"`
}

// CreateRequest is the request body for creating a class. Rule flags arrive
// as JSON booleans and are coerced to 0/1 at this boundary.
type CreateRequest struct {
	CoachID         int     `json:"coach_id" validate:"required,gt=0"`
	Name            string  `json:"name" validate:"required"`
	Location        string  `json:"location"`
	ScheduleText    string  `json:"schedule_text"`
	Capacity        int     `json:"capacity"`
	TermPrice       float64 `json:"term_price"`
	TermClasses     int     `json:"term_classes"`
	DropinPrice     float64 `json:"dropin_price"`
	RuleNoLeave     bool    `json:"rule_no_leave"`
	RuleAllowDelay  bool    `json:"rule_allow_delay"`
	RuleAllowDropin bool    `json:"rule_allow_dropin"`
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
