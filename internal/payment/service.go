package payment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/apperr"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/class"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/events"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/student"
)

type Service interface {
	Create(ctx context.Context, studentID int, req *CreateRequest) (*Payment, error)
	ListByStudent(ctx context.Context, studentID int) ([]Payment, error)
}

type service struct {
	repo        Repository
	studentRepo student.Repository
	classRepo   class.Repository
	producer    *events.Producer
	logger      *slog.Logger
}

func NewService(repo Repository, studentRepo student.Repository, classRepo class.Repository, producer *events.Producer, logger *slog.Logger) Service {
	return &service{
		repo:        repo,
		studentRepo: studentRepo,
		classRepo:   classRepo,
		producer:    producer,
		logger:      logger,
	}
}

func (s *service) Create(ctx context.Context, studentID int, req *CreateRequest) (*Payment, error) {
	if studentID <= 0 {
		return nil, apperr.Invalid("invalid student id")
	}

	exists, err := s.studentRepo.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("student not found")
	}

	if req.ClassID != nil {
		exists, err := s.classRepo.Exists(ctx, *req.ClassID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.Invalid("class_id does not reference an existing class")
		}
	}

	payment := &Payment{
		StudentID: studentID,
		ClassID:   req.ClassID,
		Amount:    req.Amount,
		PaidAt:    strings.TrimSpace(req.PaidAt),
		Channel:   strings.TrimSpace(req.Channel),
		Note:      strings.TrimSpace(req.Note),
	}
	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	// event publishing is best effort; the payment row is already committed
	if err := s.producer.Publish(ctx, events.SubjectPaymentRecorded, events.PaymentRecorded{
		PaymentID: created.ID,
		StudentID: created.StudentID,
		Amount:    created.Amount,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish payment event", "error", err)
	}

	return created, nil
}

func (s *service) ListByStudent(ctx context.Context, studentID int) ([]Payment, error) {
	if studentID <= 0 {
		return nil, apperr.Invalid("invalid student id")
	}
	return s.repo.GetByStudent(ctx, studentID)
}
