package overview

import (
	"context"
	"time"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/class"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/coach"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/leave"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/payment"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/student"

	"github.com/uptrace/bun"
)

type Repository interface {
	CountCoaches(ctx context.Context) (int, error)
	CountStudents(ctx context.Context) (int, error)
	CountClasses(ctx context.Context) (int, error)
	CountPendingLeaves(ctx context.Context) (int, error)
	SumPayments(ctx context.Context) (float64, error)
}

type repository struct {
	db      *bun.DB
	metrics *metrics.Metrics
}

func NewRepository(db *bun.DB, m *metrics.Metrics) Repository {
	return &repository{
		db:      db,
		metrics: m,
	}
}

func (r *repository) CountCoaches(ctx context.Context) (int, error) {
	start := time.Now()
	count, err := r.db.NewSelect().Model((*coach.Coach)(nil)).Count(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "coaches", time.Since(start), err)

	return count, err
}

func (r *repository) CountStudents(ctx context.Context) (int, error) {
	start := time.Now()
	count, err := r.db.NewSelect().Model((*student.Student)(nil)).Count(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "students", time.Since(start), err)

	return count, err
}

func (r *repository) CountClasses(ctx context.Context) (int, error) {
	start := time.Now()
	count, err := r.db.NewSelect().Model((*class.Class)(nil)).Count(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "classes", time.Since(start), err)

	return count, err
}

func (r *repository) CountPendingLeaves(ctx context.Context) (int, error) {
	start := time.Now()
	count, err := r.db.NewSelect().
		Model((*leave.LeaveRequest)(nil)).
		Where("lr.status = ?", leave.StatusPending).
		Count(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "leave_requests", time.Since(start), err)

	return count, err
}

func (r *repository) SumPayments(ctx context.Context) (float64, error) {
	start := time.Now()
	var total float64
	err := r.db.NewSelect().
		Model((*payment.Payment)(nil)).
		ColumnExpr("COALESCE(SUM(p.amount), 0)").
		Scan(ctx, &total)

	r.metrics.Database.RecordQuery(ctx, "select", "payments", time.Since(start), err)

	return total, err
}
