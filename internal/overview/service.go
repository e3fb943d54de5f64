package overview

import (
	"context"
	"log/slog"
)

// Overview is the dashboard summary. Fields are approximate by design: the
// five queries run outside a transaction and each degrades to zero on its
// own failure instead of failing the whole response.
type Overview struct {
	Coaches       int     `json:"coaches"`
	Students      int     `json:"students"`
	Classes       int     `json:"classes"`
	PendingLeaves int     `json:"pendingLeaves"`
	TotalPayments float64 `json:"totalPayments"`
}

type Service interface {
	Summary(ctx context.Context) *Overview
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) Summary(ctx context.Context) *Overview {
	result := &Overview{}

	if count, err := s.repo.CountCoaches(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to count coaches", "error", err)
	} else {
		result.Coaches = count
	}

	if count, err := s.repo.CountStudents(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to count students", "error", err)
	} else {
		result.Students = count
	}

	if count, err := s.repo.CountClasses(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to count classes", "error", err)
	} else {
		result.Classes = count
	}

	if count, err := s.repo.CountPendingLeaves(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to count pending leaves", "error", err)
	} else {
		result.PendingLeaves = count
	}

	if total, err := s.repo.SumPayments(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to sum payments", "error", err)
	} else {
		result.TotalPayments = total
	}

	return result
}
