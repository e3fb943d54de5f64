package leave

import (
	"context"
	"time"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/apperr"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, req *LeaveRequest) (*LeaveRequest, error)
	GetByStatus(ctx context.Context, status string) ([]LeaveRequest, error)
	Decide(ctx context.Context, id int, status string, reasonCoach *string) error
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

func (r *repository) Create(ctx context.Context, req *LeaveRequest) (*LeaveRequest, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(req).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "leave_requests", time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return req, nil
}

// GetByStatus lists leave requests in one status with student and class
// names joined in, newest first.
func (r *repository) GetByStatus(ctx context.Context, status string) ([]LeaveRequest, error) {
	start := time.Now()
	var requests []LeaveRequest
	err := r.db.NewSelect().
		Model(&requests).
		ColumnExpr("lr.*").
		ColumnExpr("s.name AS student_name").
		ColumnExpr("c.name AS class_name").
		Join("LEFT JOIN students AS s ON s.id = lr.student_id").
		Join("LEFT JOIN classes AS c ON c.id = lr.class_id").
		Where("lr.status = ?", status).
		Order("lr.id DESC").
		Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "leave_requests", time.Since(start), err)

	return requests, err
}

// Decide moves a pending request to its terminal status. The status guard
// in the WHERE clause is what makes the pending->terminal transition the
// only one possible; a decided request matches zero rows.
func (r *repository) Decide(ctx context.Context, id int, status string, reasonCoach *string) error {
	start := time.Now()
	result, err := r.db.NewUpdate().
		Model((*LeaveRequest)(nil)).
		Set("status = ?", status).
		Set("reason_coach = ?", reasonCoach).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Where("status = ?", StatusPending).
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "leave_requests", time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("leave request not found or already decided")
	}
	return nil
}
