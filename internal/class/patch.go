package class

import (
	"strings"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/sqlpatch"
)

// Patch carries the optional fields of a partial class update.
type Patch struct {
	CoachID         *int     `json:"coach_id"`
	Name            *string  `json:"name"`
	Location        *string  `json:"location"`
	ScheduleText    *string  `json:"schedule_text"`
	Capacity        *int     `json:"capacity"`
	TermPrice       *float64 `json:"term_price"`
	TermClasses     *int     `json:"term_classes"`
	DropinPrice     *float64 `json:"dropin_price"`
	RuleNoLeave     *bool    `json:"rule_no_leave"`
	RuleAllowDelay  *bool    `json:"rule_allow_delay"`
	RuleAllowDropin *bool    `json:"rule_allow_dropin"`
}

func (p *Patch) Build() *sqlpatch.Patch {
	patch := &sqlpatch.Patch{}
	if p.CoachID != nil {
		patch.Set("coach_id", *p.CoachID)
	}
	if p.Name != nil {
		patch.Set("name", strings.TrimSpace(*p.Name))
	}
	if p.Location != nil {
		patch.Set("location", strings.TrimSpace(*p.Location))
	}
	if p.ScheduleText != nil {
		patch.Set("schedule_text", strings.TrimSpace(*p.ScheduleText))
	}
	if p.Capacity != nil {
		patch.Set("capacity", *p.Capacity)
	}
	if p.TermPrice != nil {
		patch.Set("term_price", *p.TermPrice)
	}
	if p.TermClasses != nil {
		patch.Set("term_classes", *p.TermClasses)
	}
	if p.DropinPrice != nil {
		patch.Set("dropin_price", *p.DropinPrice)
	}
	if p.RuleNoLeave != nil {
		patch.SetBool("rule_no_leave", *p.RuleNoLeave)
	}
	if p.RuleAllowDelay != nil {
		patch.SetBool("rule_allow_delay", *p.RuleAllowDelay)
	}
	if p.RuleAllowDropin != nil {
		patch.SetBool("rule_allow_dropin", *p.RuleAllowDropin)
	}
	return patch
}
