package student

import (
	"context"
	"strings"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/apperr"
)

type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Student, error)
	List(ctx context.Context) ([]Student, error)
	Update(ctx context.Context, id int, patch *Patch) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, req *CreateRequest) (*Student, error) {
	student := &Student{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Phone:  strings.TrimSpace(req.Phone),
		LineID: strings.TrimSpace(req.LineID),
	}
	return s.repo.Create(ctx, student)
}

func (s *service) List(ctx context.Context) ([]Student, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Update(ctx context.Context, id int, patch *Patch) error {
	if id <= 0 {
		return apperr.Invalid("invalid student id")
	}
	compiled := patch.Build()
	if compiled.Len() == 0 {
		return apperr.Invalid("no fields to update")
	}
	return s.repo.Update(ctx, id, compiled)
}

func (s *service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.Invalid("invalid student id")
	}
	return s.repo.Delete(ctx, id)
}
