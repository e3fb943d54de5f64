package auth

import (
	"context"
	"time"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) (*Admin, error)
	Count(ctx context.Context) (int, error)
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

func (r *repository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	start := time.Now()
	admin := new(Admin)
	err := r.db.NewSelect().
		Model(admin).
		Where("email = ?", email).
		Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "admins", time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *repository) Create(ctx context.Context, admin *Admin) (*Admin, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(admin).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "admins", time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	start := time.Now()
	count, err := r.db.NewSelect().Model((*Admin)(nil)).Count(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "admins", time.Since(start), err)

	return count, err
}
