package leave

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
	Create(ctx context.Context, req *CreateRequest) (*LeaveRequest, error)
	ListByStatus(ctx context.Context, status string) ([]LeaveRequest, error)
	Decide(ctx context.Context, id int, req *DecisionRequest) error
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

func (s *service) Create(ctx context.Context, req *CreateRequest) (*LeaveRequest, error) {
	exists, err := s.studentRepo.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.Invalid("student_id does not reference an existing student")
	}

	exists, err = s.classRepo.Exists(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.Invalid("class_id does not reference an existing class")
	}

	request := &LeaveRequest{
		StudentID:     req.StudentID,
		ClassID:       req.ClassID,
		Type:          strings.TrimSpace(req.Type),
		LessonDate:    strings.TrimSpace(req.LessonDate),
		NewLessonDate: strings.TrimSpace(req.NewLessonDate),
		ReasonStudent: strings.TrimSpace(req.ReasonStudent),
	}
	return s.repo.Create(ctx, request)
}

// ListByStatus defaults to the pending queue, the one the dashboard acts on.
func (s *service) ListByStatus(ctx context.Context, status string) ([]LeaveRequest, error) {
	if status == "" {
		status = StatusPending
	}
	switch status {
	case StatusPending, StatusAccepted, StatusRejected:
	default:
		return nil, apperr.Invalid("invalid status filter")
	}
	return s.repo.GetByStatus(ctx, status)
}

func (s *service) Decide(ctx context.Context, id int, req *DecisionRequest) error {
	if id <= 0 {
		return apperr.Invalid("invalid leave request id")
	}

	var status string
	switch req.Decision {
	case DecisionAccept:
		status = StatusAccepted
	case DecisionReject:
		status = StatusRejected
	default:
		return apperr.Invalid("decision must be accept or reject")
	}

	if err := s.repo.Decide(ctx, id, status, req.ReasonCoach); err != nil {
		return err
	}

	// event publishing is best effort; the decision is already committed
	if err := s.producer.Publish(ctx, events.SubjectLeaveDecided, events.LeaveDecided{
		LeaveRequestID: id,
		Status:         status,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish leave decision event", "error", err)
	}

	return nil
}
