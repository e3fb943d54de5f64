package coach

import (
	"strings"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/sqlpatch"
)

// Patch carries the optional fields of a partial coach update. Absent fields
// stay untouched in storage.
type Patch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LineID   *string `json:"line_id"`
	IsActive *bool   `json:"is_active"`
}

// Build compiles the patch into SET assignments. Column names are fixed
// here and never taken from the request.
func (p *Patch) Build() *sqlpatch.Patch {
	patch := &sqlpatch.Patch{}
	if p.Name != nil {
		patch.Set("name", strings.TrimSpace(*p.Name))
	}
	if p.Email != nil {
		patch.Set("email", strings.TrimSpace(*p.Email))
	}
	if p.Phone != nil {
		patch.Set("phone", strings.TrimSpace(*p.Phone))
	}
	if p.LineID != nil {
		patch.Set("line_id", strings.TrimSpace(*p.LineID))
	}
	if p.IsActive != nil {
		patch.SetBool("is_active", *p.IsActive)
	}
	return patch
}
