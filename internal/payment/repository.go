package payment

import (
	"context"
	"time"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) (*Payment, error)
	GetByStudent(ctx context.Context, studentID int) ([]Payment, error)
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

func (r *repository) Create(ctx context.Context, payment *Payment) (*Payment, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(payment).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "payments", time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return payment, nil
}

// GetByStudent lists a student's payments newest first, with the class name
// joined in when the payment is tied to a class.
func (r *repository) GetByStudent(ctx context.Context, studentID int) ([]Payment, error) {
	start := time.Now()
	var payments []Payment
	err := r.db.NewSelect().
		Model(&payments).
		ColumnExpr("p.*").
		ColumnExpr("c.name AS class_name").
		Join("LEFT JOIN classes AS c ON c.id = p.class_id").
		Where("p.student_id = ?", studentID).
		Order("p.id DESC").
		Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "payments", time.Since(start), err)

	return payments, err
}
