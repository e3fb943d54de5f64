package class

import (
	"context"
	"strings"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/apperr"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/coach"
)

type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Class, error)
	List(ctx context.Context) ([]Class, error)
	Update(ctx context.Context, id int, patch *Patch) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo      Repository
	coachRepo coach.Repository
}

func NewService(repo Repository, coachRepo coach.Repository) Service {
	return &service{
		repo:      repo,
		coachRepo: coachRepo,
	}
}

func (s *service) Create(ctx context.Context, req *CreateRequest) (*Class, error) {
	exists, err := s.coachRepo.Exists(ctx, req.CoachID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.Invalid("coach_id does not reference an existing coach")
	}

	cls := &Class{
		CoachID:         req.CoachID,
		Name:            strings.TrimSpace(req.Name),
		Location:        strings.TrimSpace(req.Location),
		ScheduleText:    strings.TrimSpace(req.ScheduleText),
		Capacity:        req.Capacity,
		TermPrice:       req.TermPrice,
		TermClasses:     req.TermClasses,
		DropinPrice:     req.DropinPrice,
		RuleNoLeave:     boolToInt(req.RuleNoLeave),
		RuleAllowDelay:  boolToInt(req.RuleAllowDelay),
		RuleAllowDropin: boolToInt(req.RuleAllowDropin),
	}
	return s.repo.Create(ctx, cls)
}

func (s *service) List(ctx context.Context) ([]Class, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Update(ctx context.Context, id int, patch *Patch) error {
	if id <= 0 {
		return apperr.Invalid("invalid class id")
	}
	if patch.CoachID != nil {
		exists, err := s.coachRepo.Exists(ctx, *patch.CoachID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.Invalid("coach_id does not reference an existing coach")
		}
	}
	compiled := patch.Build()
	if compiled.Len() == 0 {
		return apperr.Invalid("no fields to update")
	}
	return s.repo.Update(ctx, id, compiled)
}

func (s *service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.Invalid("invalid class id")
	}
	return s.repo.Delete(ctx, id)
}
