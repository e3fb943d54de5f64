package coach

import (
	"context"
	"time"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/apperr"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/sqlpatch"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, coach *Coach) (*Coach, error)
	GetAll(ctx context.Context) ([]Coach, error)
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

func (r *repository) Create(ctx context.Context, coach *Coach) (*Coach, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(coach).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "coaches", time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return coach, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Coach, error) {
	start := time.Now()
	var coaches []Coach
	err := r.db.NewSelect().Model(&coaches).Order("id ASC").Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "coaches", time.Since(start), err)

	return coaches, err
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	start := time.Now()
	exists, err := r.db.NewSelect().Model((*Coach)(nil)).Where("id = ?", id).Exists(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "coaches", time.Since(start), err)

	return exists, err
}

func (r *repository) Update(ctx context.Context, id int, patch *sqlpatch.Patch) error {
	start := time.Now()
	q := r.db.NewUpdate().Model((*Coach)(nil)).Where("id = ?", id)
	result, err := patch.Apply(q).Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "coaches", time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("coach not found")
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	result, err := r.db.NewDelete().Model((*Coach)(nil)).Where("id = ?", id).Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "coaches", time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("coach not found")
	}
	return nil
}
