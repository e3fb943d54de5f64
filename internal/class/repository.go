package class

import (
	"context"
	"time"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/apperr"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/sqlpatch"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, cls *Class) (*Class, error)
	GetAll(ctx context.Context) ([]Class, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, id int, patch *sqlpatch.Patch) error
	Delete(ctx context.Context, id int) error
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

func (r *repository) Create(ctx context.Context, cls *Class) (*Class, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(cls).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "classes", time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return cls, nil
}

// GetAll lists classes with the owning coach's name joined in.
func (r *repository) GetAll(ctx context.Context) ([]Class, error) {
	start := time.Now()
	var classes []Class
	err := r.db.NewSelect().
		Model(&classes).
		ColumnExpr("c.*").
		ColumnExpr("co.name AS coach_name").
		Join("LEFT JOIN coaches AS co ON co.id = c.coach_id").
		Order("c.id ASC").
		Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "classes", time.Since(start), err)

	return classes, err
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	start := time.Now()
	exists, err := r.db.NewSelect().Model((*Class)(nil)).Where("c.id = ?", id).Exists(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "classes", time.Since(start), err)

	return exists, err
}

func (r *repository) Update(ctx context.Context, id int, patch *sqlpatch.Patch) error {
	start := time.Now()
	q := r.db.NewUpdate().Model((*Class)(nil)).Where("id = ?", id)
	result, err := patch.Apply(q).Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "classes", time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("class not found")
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	result, err := r.db.NewDelete().Model((*Class)(nil)).Where("id = ?", id).Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "classes", time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("class not found")
	}
	return nil
}
