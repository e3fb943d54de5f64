package sqlpatch

import "github.com/uptrace/bun"

// Patch accumulates SET assignments for a partial row update. Column names
// must come from the calling package's fixed field list, never from request
// input — that is the injection-safety invariant of this package.
type Patch struct {
	assignments []Assignment
}

type Assignment struct {
	Column string
	Value  interface{}
}

// Set records a column assignment.
func (p *Patch) Set(column string, value interface{}) {
	p.assignments = append(p.assignments, Assignment{Column: column, Value: value})
}

// SetBool records a boolean assignment coerced to integer 0/1, matching how
// the flag columns are stored.
func (p *Patch) SetBool(column string, value bool) {
	v := 0
	if value {
		v = 1
	}
	p.Set(column, v)
}

func (p *Patch) Len() int {
	return len(p.assignments)
}

// Assignments exposes the recorded assignments in insertion order.
func (p *Patch) Assignments() []Assignment {
	return p.assignments
}

// Apply adds the recorded assignments to a bun update query. Callers must
// check Len before applying; an empty patch is a validation error, not a
// no-op statement.
func (p *Patch) Apply(q *bun.UpdateQuery) *bun.UpdateQuery {
	for _, a := range p.assignments {
		q = q.Set("? = ?", bun.Ident(a.Column), a.Value)
	}
	return q
}
